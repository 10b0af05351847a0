package stats

import (
	"encoding/json"
	"sync"
	"time"
)

type Stats struct {
	Renders       uint64     `json:"renders"`
	PointerMoves  uint64     `json:"pointer_moves"`
	Reloads       uint64     `json:"reloads"`
	RendersPerSec uint64     `json:"renders_per_sec"`
	Uptime        float64    `json:"uptime"`
	WsClients     int        `json:"ws_clients"`
	Context       string     `json:"context"`
	Ready         bool       `json:"ready"`
	Mouse         [2]float32 `json:"mouse"`
	// FrameInterval is the time between the last two presented frames, in seconds.
	FrameInterval float64 `json:"frame_interval"`

	mu           sync.Mutex
	frameCounter uint64
	frameTimer   time.Time
	presented    time.Time
	start        time.Time
	now          func() time.Time
}

func New() *Stats {
	s := &Stats{now: time.Now}
	s.start = s.now()
	s.frameTimer = s.start
	return s
}

// Rendered counts one draw.
func (s *Stats) Rendered() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Renders++
	s.frameCounter++
}

func (s *Stats) PointerMoved(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PointerMoves++
	s.Mouse = [2]float32{x, y}
}

// Presented records that a frame reached the screen. The first frame
// has no interval.
func (s *Stats) Presented() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if !s.presented.IsZero() {
		s.FrameInterval = now.Sub(s.presented).Seconds()
	}
	s.presented = now
}

func (s *Stats) Reloaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reloads++
}

func (s *Stats) SetPipeline(context string, ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Context = context
	s.Ready = ready
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WsClients = n
}

func (s *Stats) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.frameTimer) > 1*time.Second {
		s.RendersPerSec = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) MarshalJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	type plain Stats
	return json.Marshal(&struct {
		*plain
		Event string `json:"event"`
	}{plain: (*plain)(s), Event: "stats"})
}
