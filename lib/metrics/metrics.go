package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Renders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shaderdemo_renders_total",
		Help: "Total number of draw calls issued for the quad",
	})
	PointerMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shaderdemo_pointer_moves_total",
		Help: "Total number of pointer-move events handled, by origin",
	}, []string{"origin"})
	SetupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shaderdemo_setup_failures_total",
		Help: "Total number of failed pipeline setups, by stage that failed",
	}, []string{"stage"})
	Reloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shaderdemo_shader_reloads_total",
		Help: "Total number of shader pipeline rebuilds",
	})
	Mouse = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "shaderdemo_mouse_uniform",
		Help: "Last value pushed into the u_mouse uniform",
	}, []string{"axis"})
)

const (
	OriginWindow = "window"
	OriginApi    = "api"

	StageContext = "context"
	StageSource  = "source"
	StageCompile = "compile"
	StageLink    = "link"
)

func init() {
	for _, o := range []string{OriginWindow, OriginApi} {
		PointerMoves.WithLabelValues(o).Add(0)
	}
	for _, s := range []string{StageContext, StageSource, StageCompile, StageLink} {
		SetupFailures.WithLabelValues(s).Add(0)
	}
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
