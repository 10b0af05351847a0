package rendering

import (
	rc "github.com/fosdem/shaderdemo/lib/rendering/renderconsts"
)

// GL is the subset of the OpenGL API the renderer drives. Object names
// are plain uint32 handles, 0 meaning "none", as in OpenGL itself.
type GL interface {
	CreateShader(kind rc.ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32
	Uniform2f(location int32, x, y float32)

	CreateBuffer() uint32
	BindBuffer(target rc.Target, buffer uint32)
	BufferData(target rc.Target, data []float32, usage rc.Usage)
	DeleteBuffer(buffer uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask rc.ClearMask)
	VertexAttribPointer(index uint32, size int32, xtype rc.DataType, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode rc.DrawMode, first, count int32)
}

// ContextKind is the flavour of GL context requested from a Surface.
type ContextKind int

const (
	// ContextStandard is an OpenGL 4.1 core profile context.
	ContextStandard ContextKind = iota
	// ContextLegacy is an OpenGL 2.1 context, for drivers without core profile support.
	ContextLegacy
)

func (k ContextKind) String() string {
	switch k {
	case ContextStandard:
		return "standard"
	case ContextLegacy:
		return "legacy"
	}
	return "unknown"
}

// Surface is something that can be drawn into: a window, in practice.
// ClientSize reports the size of the drawable area in pixels, which is
// what the viewport gets set to.
type Surface interface {
	ClientSize() (width, height int)
	RequestContext(kind ContextKind) (GL, error)
	SetPointerMoveHandler(handler func(x, y float64))
}

// TextSink receives user-visible text.
type TextSink interface {
	SetText(text string)
}

// Role tells a vertex shader source from a fragment shader source.
type Role int

const (
	VertexRole Role = iota
	FragmentRole
)

func (r Role) String() string {
	switch r {
	case VertexRole:
		return "vertex"
	case FragmentRole:
		return "fragment"
	}
	return "unknown"
}

func (r Role) ShaderKind() rc.ShaderKind {
	if r == VertexRole {
		return rc.VertexShader
	}
	return rc.FragmentShader
}

// Sources hands out shader source text by role.
type Sources interface {
	Source(role Role) (string, error)
}
