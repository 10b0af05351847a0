package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/shaderdemo/lib/log"
	"github.com/fosdem/shaderdemo/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultPointerScale = 512
	DefaultWidth        = 1024
	DefaultHeight       = 1024
)

type Config struct {
	Window           *WindowCfg
	Shaders          *ShadersCfg
	PointerScale     float64 `yaml:"pointer_scale"`
	BackgroundColour string  `yaml:"background_colour"`
	LogLevel         string  `yaml:"log_level"`
	Api              *ApiCfg
}

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// ShadersCfg points at GLSL template files. Empty paths select the built-in shaders.
type ShadersCfg struct {
	Vertex   CfgPath
	Fragment CfgPath
	Watch    bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default is the configuration used when no config file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer closeOrLog(f, filename)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func closeOrLog(c io.Closer, name string) {
	err := c.Close()
	if err != nil {
		log.Module("config").Warn("could not close "+name, "err", err)
	}
}

func (c *Config) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Title == "" {
		c.Window.Title = "shaderdemo"
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Shaders == nil {
		c.Shaders = &ShadersCfg{}
	}
	if c.PointerScale == 0 {
		c.PointerScale = DefaultPointerScale
	}
	if c.BackgroundColour == "" {
		c.BackgroundColour = "#000000ff"
	}
}

func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.PointerScale < 0 {
		return fmt.Errorf("pointer_scale must be positive")
	}
	if !utils.ColourValidate(c.BackgroundColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.BackgroundColour)
	}
	err := c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders are invalid: %w", err)
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api.bind must be specified when the api section is present")
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	if (s.Vertex == "") != (s.Fragment == "") {
		return fmt.Errorf("vertex and fragment must either both be set or both be empty")
	}
	if s.Watch && s.Vertex == "" {
		return fmt.Errorf("cannot watch the built-in shaders")
	}
	for _, p := range []CfgPath{s.Vertex, s.Fragment} {
		if p == "" {
			continue
		}
		if err := p.CheckReadable(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s (%dx%d)\n", c.Window.Title, c.Window.Width, c.Window.Height))

	b.WriteString("\nShaders:\n")
	if c.Shaders.Vertex == "" {
		b.WriteString("  built-in\n")
	} else {
		b.WriteString(fmt.Sprintf("  vertex:   %s\n", c.Shaders.Vertex))
		b.WriteString(fmt.Sprintf("  fragment: %s\n", c.Shaders.Fragment))
		if c.Shaders.Watch {
			b.WriteString("  (watched)\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nPointer scale: %g\n", c.PointerScale))
	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi: %s\n", c.Api.Bind))
	}

	return b.String()
}
