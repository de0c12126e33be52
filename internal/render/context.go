package render

import "github.com/go-gl/mathgl/mgl32"

type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

type DataType int

const (
	Float DataType = iota
	UnsignedByte
)

type DrawMode int

const (
	Lines DrawMode = iota
	Triangles
)

type TexParam int

const (
	TexWrapS TexParam = iota
	TexWrapT
	TexMinFilter
	TexMagFilter
)

type TexValue int

const (
	ClampToEdge TexValue = iota
	FilterLinear
	FilterNearest
)

// Context is the subset of a GL-style API the renderer needs. Handles are
// opaque non-zero names; locations are negative when not found.
//
// CompileShader and LinkProgram return the driver's info log as the error
// text on failure.
type Context interface {
	CompileShader(stage ShaderStage, source string) (uint32, error)
	LinkProgram(vertex, fragment uint32) (uint32, error)
	UseProgram(program uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	CreateBuffer() uint32
	BufferFloat32(buffer uint32, data []float32)
	BufferUint8(buffer uint32, data []uint8)
	// VertexAttrib binds buffer, enables location and describes its layout.
	// stride and offset are in bytes.
	VertexAttrib(buffer uint32, location int32, size int, kind DataType, normalized bool, stride, offset int)

	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform1i(location int32, v int32)
	Uniform4f(location int32, v [4]float32)

	CreateTexture() uint32
	DeleteTexture(tex uint32)
	// BindTexture makes tex current on the given texture unit.
	BindTexture(unit int, tex uint32)
	TexImage2D(width, height int, rgba []uint8)
	GenerateMipmap()
	TexParameter(param TexParam, value TexValue)

	EnableBlend()
	Clear(r, g, b, a float32)
	DrawArrays(mode DrawMode, first, count int)
}
