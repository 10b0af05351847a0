//go:generate go tool swag init -g api.go -o docs --outputTypes go

// Package api serves the HTTP control surface of shaderdemo.
//
//	@title			shaderdemo API
//	@version		1.0
//	@description	Status, stats and remote pointer input for the shader demo.
//	@BasePath		/
package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	_ "github.com/fosdem/shaderdemo/lib/api/docs"
	"github.com/fosdem/shaderdemo/lib/config"
	"github.com/fosdem/shaderdemo/lib/log"
	"github.com/fosdem/shaderdemo/lib/metrics"
	"github.com/fosdem/shaderdemo/lib/stats"
	"github.com/fosdem/shaderdemo/lib/status"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed static/*
var content embed.FS
var contentFS, _ = fs.Sub(content, "static")

// Controller is the part of the running demo the API can poke at. Its
// methods must be safe to call from any goroutine.
type Controller interface {
	QueuePointerMove(x, y float64) error
	QueueReload() error
	Quit()
}

type Api struct {
	srv        http.Server
	mux        *http.ServeMux
	cfg        *config.ApiCfg
	board      *status.Board
	controller Controller
	log        *slog.Logger

	Stats *stats.Stats

	wsMutex   sync.Mutex
	wsClients map[*wsClient]bool
}

func New(cfg *config.ApiCfg, board *status.Board, st *stats.Stats, controller Controller) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.board = board
	a.controller = controller
	a.log = log.Module("api")
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*wsClient]bool)
	a.Stats = st

	board.AddListener(func(ev status.Event) {
		packet, err := json.Marshal(ev)
		if err != nil {
			return
		}
		a.broadcast(packet)
	})

	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/status", a.getStatus)
	a.mux.HandleFunc("POST /api/pointer", a.handlePointer)
	a.mux.HandleFunc("POST /api/reload", a.handleReload)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
	a.mux.Handle("/", http.FileServer(http.FS(contentFS)))
}

func (a *Api) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	a.mux.ServeHTTP(w, req)
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Quit shaderdemo
// @Router		/api/kill [post]
// @Tags		base
// @Success	200	{string}	string	"ok"
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.log.Info("shutting down as per api request")
	a.controller.Quit()
	a.writeOk(w)
}

// @Summary	Get render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Stats
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	a.Stats.Update()
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats)
	if err != nil {
		http.Error(w, fmt.Sprintf("could encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

type StatusResp struct {
	Status string `json:"status" example:"0.5\n-0.25"`
	Notice string `json:"notice,omitempty"`
}

// @Summary	Get the current status text
// @Description	The status is either the normalised pointer position, one coordinate per line, or the shader error log.
// @Router		/api/status [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	StatusResp
func (a *Api) getStatus(w http.ResponseWriter, _ *http.Request) {
	resp := &StatusResp{
		Status: a.board.Get(status.KindStatus),
		Notice: a.board.Get(status.KindNotice),
	}
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode status: %s", err), http.StatusInternalServerError)
		return
	}
}

type PointerReq struct {
	X float64 `json:"x" example:"512"`
	Y float64 `json:"y" example:"256"`
}

// @Summary	Move the pointer
// @Description	Handled exactly like a pointer move over the window at surface-local pixel offset (x, y).
// @Router		/api/pointer [post]
// @Tags		input
// @Accept		json
// @Param		pointerReq	body	PointerReq	true	"Surface-local pointer offset"
// @Success	200	{string}	string	"ok"
// @Failure	400	{string}	string	"Could not decode json request"
// @Failure	503	{string}	string	"Input queue is full"
func (a *Api) handlePointer(w http.ResponseWriter, req *http.Request) {
	var pointerReq PointerReq
	err := json.NewDecoder(req.Body).Decode(&pointerReq)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
		return
	}

	err = a.controller.QueuePointerMove(pointerReq.X, pointerReq.Y)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not move pointer: %s", err), http.StatusServiceUnavailable)
		return
	}
	metrics.PointerMoves.WithLabelValues(metrics.OriginApi).Inc()
	a.writeOk(w)
}

// @Summary	Rebuild the shader pipeline from the configured sources
// @Router		/api/reload [post]
// @Tags		input
// @Success	200	{string}	string	"ok"
// @Failure	503	{string}	string	"A reload is already pending"
func (a *Api) handleReload(w http.ResponseWriter, _ *http.Request) {
	err := a.controller.QueueReload()
	if err != nil {
		http.Error(w, fmt.Sprintf("could not reload: %s", err), http.StatusServiceUnavailable)
		return
	}
	a.writeOk(w)
}

func (a *Api) writeOk(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log.Warn("could not write response", "err", err)
		return
	}
}

// ServeInBackground starts the API if it is configured, returning nil otherwise.
func ServeInBackground(cfg *config.ApiCfg, board *status.Board, st *stats.Stats, controller Controller) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, board, st, controller)

		theApi.log.Info("starting web server on " + cfg.Bind)
		go func() {
			err := theApi.Serve()
			if err != nil && err != http.ErrServerClosed {
				theApi.log.Error("could not start web server", "err", err)
			}
		}()
	}
	return theApi
}

func (a *Api) Close() error {
	return a.srv.Close()
}
