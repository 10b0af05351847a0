package rendering

import (
	"errors"
	"log/slog"

	"github.com/fosdem/shaderdemo/lib/log"
	"github.com/fosdem/shaderdemo/lib/metrics"
	rc "github.com/fosdem/shaderdemo/lib/rendering/renderconsts"
	"github.com/fosdem/shaderdemo/lib/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// NotSupportedMessage is shown when no GL context could be obtained.
const NotSupportedMessage = "Failed. Your device may not support OpenGL."

const DefaultPointerScale = 512

var (
	ErrContextUnavailable = errors.New("no OpenGL context available")
	ErrAlreadySetUp       = errors.New("renderer is already set up, close it first")
)

type Options struct {
	// Status receives the pointer coordinates, or the error log when
	// the pipeline could not be built.
	Status TextSink
	// Notice receives NotSupportedMessage if no context is available.
	Notice TextSink

	PointerScale float64
	// Background defaults to opaque black.
	Background *utils.Colour

	// OnRender is called after every draw.
	OnRender func()
}

// Renderer owns the GL context and everything built on it: one program,
// one vertex buffer and the locations resolved from the program.
type Renderer struct {
	gl     GL
	kind   ContextKind
	status TextSink
	log    *slog.Logger

	pointerScale float64
	background   utils.Colour
	onRender     func()

	viewportWidth  int32
	viewportHeight int32

	program uint32
	buffer  *Buffer
	uMouse  int32
	aPos    uint32
	mouse   mgl32.Vec2

	teardown teardownList
	ready    bool
}

// Init gets a context from the surface, trying the standard kind first
// and then the legacy one. If neither is available, the notice is set
// and ErrContextUnavailable returned; nothing else has happened then.
func Init(surface Surface, opts Options) (*Renderer, error) {
	logger := log.Module("rendering")

	var gl GL
	var kind ContextKind
	for _, kind = range []ContextKind{ContextStandard, ContextLegacy} {
		var err error
		gl, err = surface.RequestContext(kind)
		if err == nil {
			break
		}
		logger.Warn("could not get "+kind.String()+" context", "err", err)
	}
	if gl == nil {
		metrics.SetupFailures.WithLabelValues(metrics.StageContext).Inc()
		if opts.Notice != nil {
			opts.Notice.SetText(NotSupportedMessage)
		}
		return nil, ErrContextUnavailable
	}

	r := &Renderer{
		gl:           gl,
		kind:         kind,
		status:       opts.Status,
		log:          logger,
		pointerScale: opts.PointerScale,
		background:   utils.Black,
		onRender:     opts.OnRender,
	}
	if r.pointerScale == 0 {
		r.pointerScale = DefaultPointerScale
	}
	if opts.Background != nil {
		r.background = *opts.Background
	}

	gl.ClearColor(r.background.R, r.background.G, r.background.B, r.background.A)
	gl.Clear(rc.ColorBufferBit)

	width, height := surface.ClientSize()
	r.Resize(width, height)

	surface.SetPointerMoveHandler(r.PointerMove)

	r.log.Info("got a " + kind.String() + " context")
	return r, nil
}

func (r *Renderer) ContextKind() ContextKind {
	return r.kind
}

// Ready reports whether the pipeline is set up and drawable.
func (r *Renderer) Ready() bool {
	return r.ready
}

// Resize records new viewport dimensions, used from the next Render on.
func (r *Renderer) Resize(width, height int) {
	r.viewportWidth = int32(width)
	r.viewportHeight = int32(height)
}

func (r *Renderer) Viewport() (width, height int32) {
	return r.viewportWidth, r.viewportHeight
}

// Buffer returns the vertex buffer, or nil when not set up.
func (r *Renderer) Buffer() *Buffer {
	return r.buffer
}

// Mouse returns the value last pushed into u_mouse.
func (r *Renderer) Mouse() mgl32.Vec2 {
	return r.mouse
}

// Close releases every GL object the pipeline acquired, in reverse
// order of acquisition. The renderer can be set up again afterwards.
func (r *Renderer) Close() {
	r.release()
}

func (r *Renderer) release() {
	r.ready = false
	r.teardown.release()
	r.program = 0
	r.buffer = nil
	r.uMouse = -1
}

func (r *Renderer) setStatus(text string) {
	if r.status != nil {
		r.status.SetText(text)
	}
}
