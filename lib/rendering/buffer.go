package rendering

import (
	rc "github.com/fosdem/shaderdemo/lib/rendering/renderconsts"
	"github.com/go-gl/mathgl/mgl32"
)

// quad covers the whole surface in normalised device coordinates.
var quad = [...]mgl32.Vec3{
	{-1, -1, 0},
	{1, -1, 0},
	{-1, 1, 0},

	{1, 1, 0},
	{1, -1, 0},
	{-1, 1, 0},
}

// Buffer is a GL array buffer along with the layout of what is in it.
type Buffer struct {
	ID            uint32
	ItemSize      int32
	NumberOfItems int32
}

func quadVertices() []float32 {
	vertices := make([]float32, 0, len(quad)*3)
	for _, v := range quad {
		vertices = append(vertices, v[:]...)
	}
	return vertices
}

func (r *Renderer) setupBuffer() {
	id := r.gl.CreateBuffer()
	r.teardown.acquire(func() { r.gl.DeleteBuffer(id) })

	r.gl.BindBuffer(rc.ArrayBuffer, id)
	r.gl.BufferData(rc.ArrayBuffer, quadVertices(), rc.StaticDraw)

	r.buffer = &Buffer{
		ID:            id,
		ItemSize:      3,
		NumberOfItems: int32(len(quad)),
	}
}
