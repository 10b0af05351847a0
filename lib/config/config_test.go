package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fosdem/shaderdemo/lib/log"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseResolvesRelativeShaderPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "quad.vert", "void main() {}")
	writeFile(t, dir, "mouse.frag", "void main() {}")
	cfgFile := writeFile(t, dir, "demo.yaml", `
window:
  title: test
  width: 640
  height: 480
shaders:
  vertex: quad.vert
  fragment: mouse.frag
  watch: true
api:
  bind: 127.0.0.1:8000
`)

	cfg, err := Parse(cfgFile)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if want := CfgPath(filepath.Join(dir, "quad.vert")); cfg.Shaders.Vertex != want {
		t.Errorf("vertex path = %s, want %s", cfg.Shaders.Vertex, want)
	}
	if want := CfgPath(filepath.Join(dir, "mouse.frag")); cfg.Shaders.Fragment != want {
		t.Errorf("fragment path = %s, want %s", cfg.Shaders.Fragment, want)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window size = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.PointerScale != DefaultPointerScale {
		t.Errorf("pointer scale = %g, want default", cfg.PointerScale)
	}
	if cfg.BackgroundColour != "#000000ff" {
		t.Errorf("background colour = %s", cfg.BackgroundColour)
	}
	if !strings.Contains(cfg.String(), "(watched)") {
		t.Errorf("String() misses watch flag:\n%s", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"half shader pair": "shaders:\n  vertex: /dev/null\n",
		"watch built-in":   "shaders:\n  watch: true\n",
		"missing file":     "shaders:\n  vertex: nope.vert\n  fragment: nope.frag\n",
		"bad colour":       "background_colour: red\n",
		"api without bind": "api:\n  enable_profiler: true\n",
		"negative scale":   "pointer_scale: -1\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfgFile := writeFile(t, dir, "demo.yaml", content)
			if _, err := Parse(cfgFile); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %s", err)
	}
	if cfg.Window.Width != DefaultWidth || cfg.Window.Height != DefaultHeight {
		t.Errorf("default window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Api != nil {
		t.Error("api should be off by default")
	}
}

type failingCloser struct{}

func (failingCloser) Close() error {
	return errors.New("disk on fire")
}

func TestCloseErrorIsLogged(t *testing.T) {
	var out bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(log.NewHandlerTo(&out, false, nil)))
	defer slog.SetDefault(prev)

	closeOrLog(failingCloser{}, "config.yaml")

	got := out.String()
	if !strings.Contains(got, "[config] could not close config.yaml: disk on fire") {
		t.Fatalf("close error not logged, got %q", got)
	}
}
