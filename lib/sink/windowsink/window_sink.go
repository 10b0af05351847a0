package windowsink

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/fosdem/shaderdemo/lib/config"
	"github.com/fosdem/shaderdemo/lib/log"
	"github.com/fosdem/shaderdemo/lib/rendering"
	"github.com/fosdem/shaderdemo/lib/rendering/glcore"
	"github.com/go-gl/glfw/v3.3/glfw"
	gopointer "github.com/mattn/go-pointer"
)

// WindowSink is a GLFW window acting as the drawing surface. All methods
// must be called from the main thread.
type WindowSink struct {
	Window *glfw.Window

	cfg     *config.WindowCfg
	log     *slog.Logger
	self    unsafe.Pointer
	context *glcore.Context

	glfwReady bool

	pointerMove func(x, y float64)
	resize      func(width, height int)
}

var _ rendering.Surface = (*WindowSink)(nil)

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{
		cfg: cfg,
		log: log.Module("window"),
	}
}

func (w *WindowSink) ClientSize() (int, int) {
	if w.Window == nil {
		return w.cfg.Width, w.cfg.Height
	}
	return w.Window.GetFramebufferSize()
}

// RequestContext opens the window with a context of the given kind and
// makes it current.
func (w *WindowSink) RequestContext(kind rendering.ContextKind) (rendering.GL, error) {
	if w.Window != nil {
		return nil, fmt.Errorf("window already has a context")
	}
	if !w.glfwReady {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize glfw: %w", err)
		}
		w.glfwReady = true
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, boolHint(w.cfg.Resizable))
	switch kind {
	case rendering.ContextStandard:
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	case rendering.ContextLegacy:
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}

	w.log.Debug("Initializing " + kind.String() + " window")
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()

	ctx, err := glcore.New(kind)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	vendor, renderer, version := ctx.Version()
	w.log.Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version))

	w.Window = window
	w.context = ctx
	w.self = gopointer.Save(w)
	window.SetUserPointer(w.self)
	window.SetCursorPosCallback(cursorPosCallback)
	window.SetFramebufferSizeCallback(framebufferSizeCallback)

	return ctx, nil
}

func (w *WindowSink) SetPointerMoveHandler(handler func(x, y float64)) {
	w.pointerMove = handler
}

// SetResizeHandler is called with the new drawable size when the window is resized.
func (w *WindowSink) SetResizeHandler(handler func(width, height int)) {
	w.resize = handler
}

// SetText shows the status text in the window title.
func (w *WindowSink) SetText(text string) {
	if w.Window == nil {
		return
	}
	title := w.cfg.Title
	if text != "" {
		title = fmt.Sprintf("%s [%s]", title, strings.Join(strings.Fields(text), " "))
	}
	w.Window.SetTitle(title)
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window == nil || w.Window.ShouldClose()
}

func (w *WindowSink) RequestClose() {
	if w.Window != nil {
		w.Window.SetShouldClose(true)
	}
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) Close() {
	if w.Window != nil {
		w.context.Release()
		w.Window.Destroy()
		gopointer.Unref(w.self)
		w.Window = nil
	}
	if w.glfwReady {
		glfw.Terminate()
		w.glfwReady = false
	}
}

func sinkOf(window *glfw.Window) *WindowSink {
	return gopointer.Restore(window.GetUserPointer()).(*WindowSink)
}

func cursorPosCallback(window *glfw.Window, x, y float64) {
	w := sinkOf(window)
	if w.pointerMove != nil {
		w.pointerMove(x, y)
	}
}

func framebufferSizeCallback(window *glfw.Window, width, height int) {
	w := sinkOf(window)
	w.log.Debug(fmt.Sprintf("Resized to %dx%d", width, height))
	if w.resize != nil {
		w.resize(width, height)
	}
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
