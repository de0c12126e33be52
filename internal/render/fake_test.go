package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type drawCall struct {
	mode  DrawMode
	count int
	tex   uint32
	tint  [4]float32
	model mgl32.Mat4
}

type texState struct {
	width, height int
	mipmaps       bool
	params        map[TexParam]TexValue
}

// fakeContext records what a Renderer asks of the GPU.
type fakeContext struct {
	next uint32

	failStage ShaderStage
	failLink  bool
	failComp  bool
	missing   string

	locations map[string]int32

	floatBuffers map[uint32][]float32
	byteBuffers  map[uint32][]uint8
	textures     map[uint32]*texState
	boundTex     uint32
	tint         [4]float32
	model        mgl32.Mat4

	draws   []drawCall
	clears  int
	blended bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		locations:    make(map[string]int32),
		floatBuffers: make(map[uint32][]float32),
		byteBuffers:  make(map[uint32][]uint8),
		textures:     make(map[uint32]*texState),
	}
}

func (f *fakeContext) handle() uint32 {
	f.next++
	return f.next
}

func (f *fakeContext) CompileShader(stage ShaderStage, source string) (uint32, error) {
	if f.failComp && stage == f.failStage {
		return 0, errors.New("0:1(1): error: syntax error")
	}
	return f.handle(), nil
}

func (f *fakeContext) LinkProgram(vertex, fragment uint32) (uint32, error) {
	if f.failLink {
		return 0, errors.New("error: unresolved varying")
	}
	return f.handle(), nil
}

func (f *fakeContext) UseProgram(program uint32) {}

func (f *fakeContext) location(program uint32, name string) int32 {
	if name == f.missing {
		return -1
	}
	key := fmt.Sprintf("%d/%s", program, name)
	loc, ok := f.locations[key]
	if !ok {
		loc = int32(len(f.locations))
		f.locations[key] = loc
	}
	return loc
}

func (f *fakeContext) AttribLocation(program uint32, name string) int32 {
	return f.location(program, name)
}

func (f *fakeContext) UniformLocation(program uint32, name string) int32 {
	return f.location(program, name)
}

func (f *fakeContext) CreateBuffer() uint32 { return f.handle() }

func (f *fakeContext) BufferFloat32(buffer uint32, data []float32) {
	f.floatBuffers[buffer] = append([]float32(nil), data...)
}

func (f *fakeContext) BufferUint8(buffer uint32, data []uint8) {
	f.byteBuffers[buffer] = append([]uint8(nil), data...)
}

func (f *fakeContext) VertexAttrib(buffer uint32, location int32, size int, kind DataType, normalized bool, stride, offset int) {
}

func (f *fakeContext) UniformMatrix4(location int32, m mgl32.Mat4) { f.model = m }
func (f *fakeContext) Uniform1i(location int32, v int32)          {}
func (f *fakeContext) Uniform4f(location int32, v [4]float32)     { f.tint = v }

func (f *fakeContext) CreateTexture() uint32 {
	h := f.handle()
	f.textures[h] = &texState{params: make(map[TexParam]TexValue)}
	return h
}

func (f *fakeContext) DeleteTexture(tex uint32) { delete(f.textures, tex) }

func (f *fakeContext) BindTexture(unit int, tex uint32) { f.boundTex = tex }

func (f *fakeContext) TexImage2D(width, height int, rgba []uint8) {
	t := f.textures[f.boundTex]
	t.width, t.height = width, height
}

func (f *fakeContext) GenerateMipmap() { f.textures[f.boundTex].mipmaps = true }

func (f *fakeContext) TexParameter(param TexParam, value TexValue) {
	f.textures[f.boundTex].params[param] = value
}

func (f *fakeContext) EnableBlend()             { f.blended = true }
func (f *fakeContext) Clear(r, g, b, a float32) { f.clears++ }

func (f *fakeContext) DrawArrays(mode DrawMode, first, count int) {
	f.draws = append(f.draws, drawCall{mode: mode, count: count, tex: f.boundTex, tint: f.tint, model: f.model})
}
