package status

import (
	"sync"
	"time"
)

type Kind string

const (
	// KindStatus is the running status: pointer coordinates or a GL error log.
	KindStatus Kind = "status"
	// KindNotice is shown instead of everything else when rendering is impossible.
	KindNotice Kind = "notice"
)

type Event struct {
	Event string    `json:"event"`
	Kind  Kind      `json:"kind"`
	Text  string    `json:"text"`
	Time  time.Time `json:"time"`
}

type Listener func(ev Event)

// Board holds the user-visible texts and tells listeners when they change.
// Listeners run on the goroutine that changed the text, so they must not block.
type Board struct {
	mu        sync.Mutex
	texts     map[Kind]string
	listeners []Listener
}

func New() *Board {
	return &Board{texts: make(map[Kind]string)}
}

func (b *Board) AddListener(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

func (b *Board) Set(kind Kind, text string) {
	b.mu.Lock()
	b.texts[kind] = text
	listeners := b.listeners
	b.mu.Unlock()

	ev := Event{Event: "status", Kind: kind, Text: text, Time: time.Now()}
	for _, l := range listeners {
		l(ev)
	}
}

func (b *Board) Get(kind Kind) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.texts[kind]
}

// Snapshot returns the current texts as events, for late subscribers.
func (b *Board) Snapshot() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var events []Event
	for _, kind := range []Kind{KindNotice, KindStatus} {
		if text, ok := b.texts[kind]; ok {
			events = append(events, Event{Event: "status", Kind: kind, Text: text})
		}
	}
	return events
}

// Sink is the TextSink for one kind of text on the board.
type Sink struct {
	board *Board
	kind  Kind
}

func (b *Board) Sink(kind Kind) *Sink {
	return &Sink{board: b, kind: kind}
}

func (s *Sink) SetText(text string) {
	s.board.Set(s.kind, text)
}
