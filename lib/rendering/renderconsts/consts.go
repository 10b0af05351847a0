// Package renderconsts holds the GL enum values the renderer needs.
// They are spelled out numerically so that packages using them do not
// need cgo; the glcore binding passes them straight through.
package renderconsts

type ShaderKind uint32

const (
	FragmentShader ShaderKind = 0x8B30
	VertexShader   ShaderKind = 0x8B31
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

type Target uint32

const ArrayBuffer Target = 0x8892

type Usage uint32

const StaticDraw Usage = 0x88E4

type DataType uint32

const Float DataType = 0x1406

type DrawMode uint32

const Triangles DrawMode = 0x0004

type ClearMask uint32

const ColorBufferBit ClearMask = 0x4000
