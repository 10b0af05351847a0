package rendering

import (
	"errors"
	"fmt"

	rc "github.com/fosdem/shaderdemo/lib/rendering/renderconsts"
)

// fakeGL records every call and keeps track of which objects are alive.
type fakeGL struct {
	calls []string

	nextID   uint32
	live     map[uint32]string
	attached map[uint32][]uint32
	current  uint32
	uniform  [2]float32
	data     []float32

	failCompile rc.ShaderKind
	compileLog  string
	failLink    bool
	linkLog     string
	noAttrib    bool
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		live:     make(map[uint32]string),
		attached: make(map[uint32][]uint32),
	}
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) create(kind string) uint32 {
	f.nextID++
	f.live[f.nextID] = kind
	return f.nextID
}

func (f *fakeGL) delete(id uint32) {
	delete(f.live, id)
}

func (f *fakeGL) liveOf(kind string) int {
	n := 0
	for _, k := range f.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (f *fakeGL) reset() {
	f.calls = nil
}

func (f *fakeGL) CreateShader(kind rc.ShaderKind) uint32 {
	id := f.create("shader:" + kind.String())
	f.record("CreateShader(%s) = %d", kind, id)
	return id
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.record("ShaderSource(%d)", shader)
}

func (f *fakeGL) CompileShader(shader uint32) {
	f.record("CompileShader(%d)", shader)
}

func (f *fakeGL) ShaderCompiled(shader uint32) bool {
	return f.live[shader] != "shader:"+f.failCompile.String()
}

func (f *fakeGL) ShaderInfoLog(shader uint32) string {
	if !f.ShaderCompiled(shader) {
		return f.compileLog
	}
	return ""
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.record("DeleteShader(%d)", shader)
	f.delete(shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	id := f.create("program")
	f.record("CreateProgram() = %d", id)
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.record("AttachShader(%d, %d)", program, shader)
	f.attached[program] = append(f.attached[program], shader)
}

func (f *fakeGL) DetachShader(program, shader uint32) {
	f.record("DetachShader(%d, %d)", program, shader)
}

func (f *fakeGL) LinkProgram(program uint32) {
	f.record("LinkProgram(%d)", program)
}

func (f *fakeGL) ProgramLinked(program uint32) bool {
	return !f.failLink
}

func (f *fakeGL) ProgramInfoLog(program uint32) string {
	return f.linkLog
}

func (f *fakeGL) UseProgram(program uint32) {
	f.record("UseProgram(%d)", program)
	f.current = program
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.record("DeleteProgram(%d)", program)
	f.delete(program)
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	if name == MouseUniform {
		return 7
	}
	return -1
}

func (f *fakeGL) GetAttribLocation(program uint32, name string) int32 {
	if name == PositionAttribute && !f.noAttrib {
		return 2
	}
	return -1
}

func (f *fakeGL) Uniform2f(location int32, x, y float32) {
	f.record("Uniform2f(%d, %g, %g)", location, x, y)
	f.uniform = [2]float32{x, y}
}

func (f *fakeGL) CreateBuffer() uint32 {
	id := f.create("buffer")
	f.record("CreateBuffer() = %d", id)
	return id
}

func (f *fakeGL) BindBuffer(target rc.Target, buffer uint32) {
	f.record("BindBuffer(%#x, %d)", uint32(target), buffer)
}

func (f *fakeGL) BufferData(target rc.Target, data []float32, usage rc.Usage) {
	f.record("BufferData(%#x, %d floats, %#x)", uint32(target), len(data), uint32(usage))
	f.data = append([]float32(nil), data...)
}

func (f *fakeGL) DeleteBuffer(buffer uint32) {
	f.record("DeleteBuffer(%d)", buffer)
	f.delete(buffer)
}

func (f *fakeGL) Viewport(x, y, width, height int32) {
	f.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (f *fakeGL) ClearColor(r, g, b, a float32) {
	f.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (f *fakeGL) Clear(mask rc.ClearMask) {
	f.record("Clear(%#x)", uint32(mask))
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype rc.DataType, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer(%d, %d, %#x, %t, %d, %d)", index, size, uint32(xtype), normalized, stride, offset)
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray(%d)", index)
}

func (f *fakeGL) DrawArrays(mode rc.DrawMode, first, count int32) {
	f.record("DrawArrays(%#x, %d, %d)", uint32(mode), first, count)
}

type fakeSurface struct {
	width, height int
	gl            *fakeGL
	accept        map[ContextKind]bool
	requested     []ContextKind
	handler       func(x, y float64)
}

func (s *fakeSurface) ClientSize() (int, int) {
	return s.width, s.height
}

func (s *fakeSurface) RequestContext(kind ContextKind) (GL, error) {
	s.requested = append(s.requested, kind)
	if !s.accept[kind] {
		return nil, errors.New("context refused")
	}
	return s.gl, nil
}

func (s *fakeSurface) SetPointerMoveHandler(handler func(x, y float64)) {
	s.handler = handler
}

type textSink struct {
	text string
	sets int
}

func (t *textSink) SetText(text string) {
	t.text = text
	t.sets++
}

type fakeSources map[Role]string

func (s fakeSources) Source(role Role) (string, error) {
	src, ok := s[role]
	if !ok {
		return "", fmt.Errorf("no %s shader", role)
	}
	return src, nil
}

var testSources = fakeSources{
	VertexRole:   "attribute vec3 a_pos;",
	FragmentRole: "uniform vec2 u_mouse;",
}
