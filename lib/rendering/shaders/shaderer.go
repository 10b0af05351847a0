package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/fosdem/shaderdemo/lib/config"
	"github.com/fosdem/shaderdemo/lib/rendering"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	builtinVertex   = "quad.vert"
	builtinFragment = "mouse.frag"
)

// Shaderer renders GLSL templates into shader sources for one kind of context.
type Shaderer struct {
	templates *template.Template
	names     map[rendering.Role]string
	data      *ShaderData
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	Legacy     bool
	Header     string
	VertexIn   string
	VertexOut  string
	FragmentIn string
	FragColour string
}

func NewShaderData(kind rendering.ContextKind) *ShaderData {
	if kind == rendering.ContextLegacy {
		return &ShaderData{
			Legacy:     true,
			Header:     "#version 120",
			VertexIn:   "attribute",
			VertexOut:  "varying",
			FragmentIn: "varying",
			FragColour: "gl_FragColor",
		}
	}
	return &ShaderData{
		Header:     "#version 410 core",
		VertexIn:   "in",
		VertexOut:  "out",
		FragmentIn: "in",
		FragColour: "fragColour",
	}
}

// NewShaderer loads the shader templates named in cfg, or the built-in
// ones when cfg names none.
func NewShaderer(cfg *config.ShadersCfg, kind rendering.ContextKind) (*Shaderer, error) {
	s := &Shaderer{data: NewShaderData(kind)}

	var err error
	if cfg == nil || cfg.Vertex == "" {
		s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")
		s.names = map[rendering.Role]string{
			rendering.VertexRole:   builtinVertex,
			rendering.FragmentRole: builtinFragment,
		}
	} else {
		vertex, fragment := string(cfg.Vertex), string(cfg.Fragment)
		s.templates, err = template.ParseFiles(vertex, fragment)
		s.names = map[rendering.Role]string{
			rendering.VertexRole:   filepath.Base(vertex),
			rendering.FragmentRole: filepath.Base(fragment),
		}
		if filepath.Base(vertex) == filepath.Base(fragment) {
			err = fmt.Errorf("vertex and fragment shader files must have different names")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not load shader templates: %w", err)
	}

	return s, nil
}

func (s *Shaderer) Source(role rendering.Role) (string, error) {
	name, ok := s.names[role]
	if !ok {
		return "", fmt.Errorf("no shader for role %s", role)
	}

	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, s.data)
	if err != nil {
		return "", fmt.Errorf("error while rendering %s shader template: %s", role, err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
