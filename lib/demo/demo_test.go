package demo

import (
	"errors"
	"testing"

	"github.com/fosdem/shaderdemo/lib/config"
)

func newTestDemo() (*Demo, *int) {
	d := New(config.Default())
	wakes := 0
	d.wake = func() { wakes++ }
	return d, &wakes
}

func TestQueuePointerMove(t *testing.T) {
	d, wakes := newTestDemo()

	for i := range pointerQueueSize {
		if err := d.QueuePointerMove(float64(i), 0); err != nil {
			t.Fatalf("move %d: %s", i, err)
		}
	}
	if err := d.QueuePointerMove(0, 0); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
	if *wakes != pointerQueueSize {
		t.Fatalf("woke %d times", *wakes)
	}

	first := <-d.pointers
	if first != [2]float64{0, 0} {
		t.Fatalf("queue is not in order, first is %v", first)
	}
}

func TestQueueReloadCoalesces(t *testing.T) {
	d, _ := newTestDemo()

	if err := d.QueueReload(); err != nil {
		t.Fatal(err)
	}
	if err := d.QueueReload(); !errors.Is(err, ErrReloadPending) {
		t.Fatalf("expected ErrReloadPending, got %v", err)
	}
	d.Reload()
	if len(d.reloads) != 1 {
		t.Fatalf("%d reloads pending", len(d.reloads))
	}
}

func TestQuit(t *testing.T) {
	d, wakes := newTestDemo()
	d.Quit()
	if !d.quit.Load() || *wakes != 1 {
		t.Fatal("Quit did not stop and wake the loop")
	}
}
