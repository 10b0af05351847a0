// Package glcore binds rendering.GL to the host's OpenGL through go-gl.
package glcore

import (
	"fmt"
	"strings"

	"github.com/fosdem/shaderdemo/lib/rendering"
	rc "github.com/fosdem/shaderdemo/lib/rendering/renderconsts"
	"github.com/go-gl/gl/all-core/gl"
)

type Context struct {
	kind rendering.ContextKind
	vao  uint32
}

var _ rendering.GL = (*Context)(nil)

// New loads the GL function pointers for the context current on this
// thread. A core profile context also gets a vertex array object bound.
func New(kind rendering.ContextKind) (*Context, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	c := &Context{kind: kind}
	if kind == rendering.ContextStandard {
		gl.GenVertexArrays(1, &c.vao)
		gl.BindVertexArray(c.vao)
	}
	return c, nil
}

// Version returns vendor, renderer and version strings of the driver.
func (c *Context) Version() (vendor, renderer, version string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *Context) CreateShader(kind rc.ShaderKind) uint32 {
	return gl.CreateShader(uint32(kind))
}

func (c *Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
	return strings.TrimRight(clog, "\x00")
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
	return strings.TrimRight(logmsg, "\x00")
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (c *Context) CreateBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (c *Context) BindBuffer(target rc.Target, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

const f32 = 4

func (c *Context) BufferData(target rc.Target, data []float32, usage rc.Usage) {
	gl.BufferData(uint32(target), len(data)*f32, gl.Ptr(data), uint32(usage))
}

func (c *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask rc.ClearMask) {
	gl.Clear(uint32(mask))
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype rc.DataType, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, uintptr(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) DrawArrays(mode rc.DrawMode, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

// Release drops the vertex array object, if any.
func (c *Context) Release() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}
