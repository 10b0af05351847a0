package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/fosdem/shaderdemo/lib/api"
	"github.com/fosdem/shaderdemo/lib/config"
	"github.com/fosdem/shaderdemo/lib/kbdctl"
	"github.com/fosdem/shaderdemo/lib/log"
	"github.com/fosdem/shaderdemo/lib/metrics"
	"github.com/fosdem/shaderdemo/lib/rendering"
	"github.com/fosdem/shaderdemo/lib/rendering/shaders"
	"github.com/fosdem/shaderdemo/lib/sink/windowsink"
	"github.com/fosdem/shaderdemo/lib/stats"
	"github.com/fosdem/shaderdemo/lib/status"
	"github.com/fosdem/shaderdemo/lib/utils"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	ErrQueueFull     = errors.New("input queue is full")
	ErrReloadPending = errors.New("a reload is already pending")
)

const pointerQueueSize = 64

// Demo runs the window, the renderer and everything feeding them. Only
// Run's goroutine touches GL; the Queue methods hand work over to it.
type Demo struct {
	cfg      *config.Config
	log      *slog.Logger
	board    *status.Board
	stats    *stats.Stats
	window   *windowsink.WindowSink
	renderer *rendering.Renderer

	pointers chan [2]float64
	reloads  chan struct{}
	quit     atomic.Bool
	dirty    bool

	// wake interrupts the event wait of the main loop
	wake func()
}

func New(cfg *config.Config) *Demo {
	return &Demo{
		cfg:      cfg,
		log:      log.Module("demo"),
		board:    status.New(),
		stats:    stats.New(),
		pointers: make(chan [2]float64, pointerQueueSize),
		reloads:  make(chan struct{}, 1),
		wake:     glfw.PostEmptyEvent,
	}
}

func MakeWindowAndRun(cfg *config.Config) error {
	return New(cfg).Run()
}

func (d *Demo) QueuePointerMove(x, y float64) error {
	select {
	case d.pointers <- [2]float64{x, y}:
		d.wake()
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Demo) QueueReload() error {
	select {
	case d.reloads <- struct{}{}:
		d.wake()
		return nil
	default:
		return ErrReloadPending
	}
}

func (d *Demo) Reload() {
	err := d.QueueReload()
	if err != nil {
		d.log.Info("not reloading", "err", err)
	}
}

func (d *Demo) Quit() {
	d.quit.Store(true)
	d.wake()
}

// Run must be called from the main thread. It returns once the window
// is closed or quitting was requested.
func (d *Demo) Run() error {
	background, err := utils.ColourParse(d.cfg.BackgroundColour)
	if err != nil {
		return err
	}

	d.window = windowsink.New(d.cfg.Window)
	defer d.window.Close()

	d.board.AddListener(d.showStatus)

	d.renderer, err = rendering.Init(&countingSurface{WindowSink: d.window, onMove: d.pointerMoved}, rendering.Options{
		Status:       d.board.Sink(status.KindStatus),
		Notice:       d.board.Sink(status.KindNotice),
		PointerScale: d.cfg.PointerScale,
		Background:   &background,
		OnRender:     d.rendered,
	})
	if err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}
	defer d.renderer.Close()

	d.window.SetResizeHandler(func(width, height int) {
		d.renderer.Resize(width, height)
		d.renderer.Render()
	})
	kbdctl.SetupShortcutKeys(d.window.Window, d)

	theApi := api.ServeInBackground(d.cfg.Api, d.board, d.stats, d)
	if theApi != nil {
		defer func() {
			err := theApi.Close()
			if err != nil {
				d.log.Warn("could not stop web server", "err", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if d.cfg.Shaders.Watch {
		files := []string{string(d.cfg.Shaders.Vertex), string(d.cfg.Shaders.Fragment)}
		err := shaders.Watch(ctx, files, d.Reload)
		if err != nil {
			d.log.Error("shader files will not be reloaded on change", "err", err)
		}
	}

	d.setup()

	for !d.quit.Load() && !d.window.ShouldClose() {
		if d.dirty {
			d.window.SwapBuffers()
			d.stats.Presented()
			d.dirty = false
		}
		kbdctl.Wait()
		d.drain()
	}
	d.log.Info("shutting down")
	return nil
}

// drain handles everything queued from other goroutines.
func (d *Demo) drain() {
	select {
	case <-d.reloads:
		d.reload()
	default:
	}

	for {
		select {
		case p := <-d.pointers:
			d.renderer.PointerMove(p[0], p[1])
			d.pointerMoved()
		default:
			return
		}
	}
}

func (d *Demo) setup() {
	kind := d.renderer.ContextKind()
	defer func() {
		d.stats.SetPipeline(kind.String(), d.renderer.Ready())
	}()

	shaderer, err := shaders.NewShaderer(d.cfg.Shaders, kind)
	if err != nil {
		metrics.SetupFailures.WithLabelValues(metrics.StageSource).Inc()
		d.board.Set(status.KindStatus, err.Error())
		d.log.Error("could not load shaders", "err", err)
		return
	}

	err = d.renderer.Setup(shaderer)
	if err != nil {
		d.log.Error("shader pipeline is unusable until the next reload", "err", err)
		return
	}
}

func (d *Demo) reload() {
	d.log.Info("rebuilding shader pipeline")
	metrics.Reloads.Inc()
	d.stats.Reloaded()
	d.renderer.Close()
	d.setup()
}

func (d *Demo) rendered() {
	d.dirty = true
	d.stats.Rendered()
}

func (d *Demo) pointerMoved() {
	m := d.renderer.Mouse()
	d.stats.PointerMoved(m.X(), m.Y())
}

func (d *Demo) showStatus(ev status.Event) {
	switch ev.Kind {
	case status.KindNotice:
		d.log.Error(ev.Text)
	case status.KindStatus:
		d.log.Debug("status: " + ev.Text)
		d.window.SetText(ev.Text)
	}
}

// countingSurface counts pointer moves coming from the window.
type countingSurface struct {
	*windowsink.WindowSink
	onMove func()
}

func (s *countingSurface) SetPointerMoveHandler(handler func(x, y float64)) {
	s.WindowSink.SetPointerMoveHandler(func(x, y float64) {
		metrics.PointerMoves.WithLabelValues(metrics.OriginWindow).Inc()
		handler(x, y)
		if s.onMove != nil {
			s.onMove()
		}
	})
}
