package rendering

import (
	"strconv"

	"github.com/fosdem/shaderdemo/lib/metrics"
	rc "github.com/fosdem/shaderdemo/lib/rendering/renderconsts"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Render draws the quad with the current program and uniform values.
// It does nothing when the pipeline is not set up.
func (r *Renderer) Render() {
	if !r.ready {
		return
	}
	r.gl.Viewport(0, 0, r.viewportWidth, r.viewportHeight)
	r.gl.ClearColor(r.background.R, r.background.G, r.background.B, r.background.A)
	r.gl.Clear(rc.ColorBufferBit)

	r.gl.BindBuffer(rc.ArrayBuffer, r.buffer.ID)
	r.gl.VertexAttribPointer(r.aPos, r.buffer.ItemSize, rc.Float, false, 0, 0)
	r.gl.EnableVertexAttribArray(r.aPos)

	r.gl.DrawArrays(rc.Triangles, 0, r.buffer.NumberOfItems)
	metrics.Renders.Inc()
	if r.onRender != nil {
		r.onRender()
	}
}

// NormalizePointer maps surface-local pixel offsets onto [-1, 1] with y
// pointing up, scale pixels per unit. Out-of-surface offsets are not clamped.
func NormalizePointer(x, y, scale float64) mgl64.Vec2 {
	return mgl64.Vec2{x/scale - 1, 1 - y/scale}
}

// PointerMove pushes the normalised pointer position into u_mouse, shows
// it in the status text and redraws.
func (r *Renderer) PointerMove(x, y float64) {
	if !r.ready {
		return
	}
	p := NormalizePointer(x, y, r.pointerScale)
	r.mouse = mgl32.Vec2{float32(p.X()), float32(p.Y())}

	r.gl.Uniform2f(r.uMouse, r.mouse.X(), r.mouse.Y())
	metrics.Mouse.WithLabelValues("x").Set(p.X())
	metrics.Mouse.WithLabelValues("y").Set(p.Y())

	r.setStatus(FormatPointer(p))
	r.Render()
}

func FormatPointer(p mgl64.Vec2) string {
	return strconv.FormatFloat(p.X(), 'f', -1, 64) + "\n" + strconv.FormatFloat(p.Y(), 'f', -1, 64)
}
