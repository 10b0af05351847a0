package rendering

import (
	"fmt"

	"github.com/fosdem/shaderdemo/lib/metrics"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MouseUniform      = "u_mouse"
	PositionAttribute = "a_pos"
)

// CompileError is returned by Setup when a shader stage does not compile.
type CompileError struct {
	Role Role
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader did not compile: %s", e.Role, e.Log)
}

// LinkError is returned by Setup when the program does not link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program did not link: %s", e.Log)
}

// Setup builds the pipeline: both shader stages, the program, the vertex
// buffer, then draws once. On failure everything acquired so far is
// released, the GL log is written to the status text and the renderer
// stays inert until set up again. A pointer position from before a
// rebuild is pushed into the new program.
func (r *Renderer) Setup(src Sources) error {
	if r.ready {
		return ErrAlreadySetUp
	}
	err := r.setup(src)
	if err != nil {
		r.release()
		return err
	}
	r.ready = true
	if r.uMouse >= 0 && r.mouse != (mgl32.Vec2{}) {
		r.gl.Uniform2f(r.uMouse, r.mouse.X(), r.mouse.Y())
	}
	r.Render()
	return nil
}

func (r *Renderer) setup(src Sources) error {
	vertexSource, err := src.Source(VertexRole)
	if err != nil {
		metrics.SetupFailures.WithLabelValues(metrics.StageSource).Inc()
		r.setStatus(err.Error())
		return fmt.Errorf("could not get vertex shader: %w", err)
	}
	fragmentSource, err := src.Source(FragmentRole)
	if err != nil {
		metrics.SetupFailures.WithLabelValues(metrics.StageSource).Inc()
		r.setStatus(err.Error())
		return fmt.Errorf("could not get fragment shader: %w", err)
	}

	vertexShader, err := r.compileShader(VertexRole, vertexSource)
	if err != nil {
		return err
	}
	fragmentShader, err := r.compileShader(FragmentRole, fragmentSource)
	if err != nil {
		return err
	}

	program := r.gl.CreateProgram()
	r.teardown.acquire(func() {
		r.gl.UseProgram(0)
		r.gl.DeleteProgram(program)
	})
	for _, shader := range []uint32{vertexShader, fragmentShader} {
		r.gl.AttachShader(program, shader)
		r.teardown.acquire(func() { r.gl.DetachShader(program, shader) })
	}
	r.gl.LinkProgram(program)

	if !r.gl.ProgramLinked(program) {
		linkLog := r.gl.ProgramInfoLog(program)
		r.log.Error("shader program did not link", "err", linkLog)
		metrics.SetupFailures.WithLabelValues(metrics.StageLink).Inc()
		r.setStatus(linkLog)
		return &LinkError{Log: linkLog}
	}
	r.program = program

	r.uMouse = r.gl.GetUniformLocation(program, MouseUniform)
	if r.uMouse < 0 {
		r.log.Warn(MouseUniform + " is not an active uniform, pointer input will have no effect")
	}
	r.gl.UseProgram(program)

	aPos := r.gl.GetAttribLocation(program, PositionAttribute)
	if aPos < 0 {
		// the attribute got optimised away, nothing sensible can be drawn
		metrics.SetupFailures.WithLabelValues(metrics.StageLink).Inc()
		msg := fmt.Sprintf("%s is not an active attribute", PositionAttribute)
		r.setStatus(msg)
		return &LinkError{Log: msg}
	}
	r.aPos = uint32(aPos)

	r.setupBuffer()
	r.log.Info("shader program linked", "program", program)
	return nil
}

func (r *Renderer) compileShader(role Role, source string) (uint32, error) {
	shader := r.gl.CreateShader(role.ShaderKind())
	r.teardown.acquire(func() { r.gl.DeleteShader(shader) })

	r.gl.ShaderSource(shader, source)
	r.gl.CompileShader(shader)

	infoLog := r.gl.ShaderInfoLog(shader)
	if !r.gl.ShaderCompiled(shader) {
		r.log.Error(role.String()+" shader did not compile", "err", infoLog)
		metrics.SetupFailures.WithLabelValues(metrics.StageCompile).Inc()
		r.setStatus(infoLog)
		return 0, &CompileError{Role: role, Log: infoLog}
	}
	if infoLog != "" {
		r.log.Debug(role.String() + " shader log: " + infoLog)
	}
	return shader, nil
}
