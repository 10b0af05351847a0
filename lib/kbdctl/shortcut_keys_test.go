package kbdctl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type recorder struct {
	quits, reloads int
}

func (r *recorder) Quit()   { r.quits++ }
func (r *recorder) Reload() { r.reloads++ }

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name        string
		key         glfw.Key
		action      glfw.Action
		mods        glfw.ModifierKey
		wantQuit    int
		wantReloads int
	}{
		{"ctrl shift q release", glfw.KeyQ, glfw.Release, glfw.ModControl | glfw.ModShift, 1, 0},
		{"ctrl shift q press", glfw.KeyQ, glfw.Press, glfw.ModControl | glfw.ModShift, 0, 0},
		{"plain q", glfw.KeyQ, glfw.Release, 0, 0, 0},
		{"r", glfw.KeyR, glfw.Press, 0, 0, 1},
		{"ctrl r", glfw.KeyR, glfw.Press, glfw.ModControl, 0, 0},
		{"r repeat", glfw.KeyR, glfw.Repeat, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			handleKey(r, tt.key, tt.action, tt.mods)
			if r.quits != tt.wantQuit || r.reloads != tt.wantReloads {
				t.Fatalf("quits=%d reloads=%d, want %d/%d", r.quits, r.reloads, tt.wantQuit, tt.wantReloads)
			}
		})
	}
}
