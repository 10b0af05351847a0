package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fosdem/shaderdemo/lib/config"
	"github.com/fosdem/shaderdemo/lib/stats"
	"github.com/fosdem/shaderdemo/lib/status"
	"github.com/gorilla/websocket"
)

type fakeController struct {
	mu       sync.Mutex
	pointers [][2]float64
	reloads  int
	quit     bool
	full     bool
}

func (c *fakeController) QueuePointerMove(x, y float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.full {
		return errors.New("input queue is full")
	}
	c.pointers = append(c.pointers, [2]float64{x, y})
	return nil
}

func (c *fakeController) QueueReload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reloads++
	return nil
}

func (c *fakeController) Quit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quit = true
}

func newTestApi() (*Api, *status.Board, *fakeController) {
	board := status.New()
	ctrl := &fakeController{}
	a := New(&config.ApiCfg{Bind: "127.0.0.1:0"}, board, stats.New(), ctrl)
	return a, board, ctrl
}

func do(a *Api, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestPointer(t *testing.T) {
	a, _, ctrl := newTestApi()

	rec := do(a, "POST", "/api/pointer", `{"x": 512, "y": 0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	if len(ctrl.pointers) != 1 || ctrl.pointers[0] != [2]float64{512, 0} {
		t.Fatalf("pointers %v", ctrl.pointers)
	}

	rec = do(a, "POST", "/api/pointer", `{"x":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("broken json got status %d", rec.Code)
	}

	ctrl.full = true
	rec = do(a, "POST", "/api/pointer", `{"x": 1, "y": 1}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("full queue got status %d", rec.Code)
	}

	rec = do(a, "GET", "/api/pointer", "")
	if rec.Code == http.StatusOK {
		t.Fatal("GET /api/pointer should not be accepted")
	}
}

func TestReloadAndKill(t *testing.T) {
	a, _, ctrl := newTestApi()

	if rec := do(a, "POST", "/api/reload", ""); rec.Code != http.StatusOK {
		t.Fatalf("reload status %d", rec.Code)
	}
	if ctrl.reloads != 1 {
		t.Fatalf("reloads = %d", ctrl.reloads)
	}

	if rec := do(a, "POST", "/api/kill", ""); rec.Code != http.StatusOK {
		t.Fatalf("kill status %d", rec.Code)
	}
	if !ctrl.quit {
		t.Fatal("kill did not quit")
	}
}

func TestStatus(t *testing.T) {
	a, board, _ := newTestApi()
	board.Set(status.KindStatus, "0\n1")

	rec := do(a, "GET", "/api/status", "")
	var resp StatusResp
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "0\n1" || resp.Notice != "" {
		t.Fatalf("unexpected status %+v", resp)
	}
}

func TestStats(t *testing.T) {
	a, _, _ := newTestApi()
	a.Stats.Rendered()

	rec := do(a, "GET", "/api/stats", "")
	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["renders"] != float64(1) {
		t.Fatalf("renders = %v", got["renders"])
	}
}

func TestMetricsAndDocs(t *testing.T) {
	a, _, _ := newTestApi()

	if rec := do(a, "GET", "/metrics", ""); !strings.Contains(rec.Body.String(), "shaderdemo_renders_total") {
		t.Fatal("metrics not served")
	}
	rec := do(a, "GET", "/swagger/doc.json", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/api/pointer") {
		t.Fatalf("swagger doc not served: %d", rec.Code)
	}
	if rec := do(a, "GET", "/", ""); !strings.Contains(rec.Body.String(), "/api/ws") {
		t.Fatal("index page not served")
	}
}

func TestWebsocketStreamsStatus(t *testing.T) {
	a, board, _ := newTestApi()
	board.Set(status.KindStatus, "before")

	srv := httptest.NewServer(a)
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws", nil)
	if err != nil {
		t.Fatalf("dial: %s", err)
	}
	defer ws.Close()

	read := func() status.Event {
		t.Helper()
		_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))
		for {
			_, msg, err := ws.ReadMessage()
			if err != nil {
				t.Fatalf("read: %s", err)
			}
			var ev status.Event
			if err := json.Unmarshal(msg, &ev); err != nil {
				t.Fatal(err)
			}
			if ev.Event == "status" {
				return ev
			}
		}
	}

	if ev := read(); ev.Text != "before" {
		t.Fatalf("first event %+v", ev)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		a.wsMutex.Lock()
		n := len(a.wsClients)
		a.wsMutex.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	board.Set(status.KindStatus, "after")
	if ev := read(); ev.Text != "after" || ev.Kind != status.KindStatus {
		t.Fatalf("second event %+v", ev)
	}
}
