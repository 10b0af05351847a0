package kbdctl

import (
	"github.com/fosdem/shaderdemo/lib/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Actions are what the shortcut keys trigger.
type Actions interface {
	Quit()
	Reload()
}

func SetupShortcutKeys(window *glfw.Window, actions Actions) {
	window.SetKeyCallback(keyCallback(actions))
}

// Wait blocks until there is at least one window event, or glfw.PostEmptyEvent is called.
func Wait() {
	glfw.WaitEvents()
}

func keyCallback(actions Actions) func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		handleKey(actions, key, action, mods)
	}
}

func handleKey(actions Actions, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	logger := log.Module("kbdctl")
	if action == glfw.Release {
		if key == glfw.KeyQ &&
			mods&glfw.ModControl != 0 &&
			mods&glfw.ModShift != 0 {
			logger.Info("told to quit, exiting")
			actions.Quit()
		}
	}
	if action == glfw.Press && key == glfw.KeyR && mods == 0 {
		logger.Info("reloading shaders")
		actions.Reload()
	}
}
