// Package opengl implements render.Context on top of an OpenGL 3.3 core
// context. The caller must create the context and make it current (the GUI
// does this through raylib) before calling New.
package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gravwell/internal/render"
)

type Context struct {
	vao     uint32
	width   int32
	height  int32
	program uint32
}

// New loads the GL function pointers for the current context and creates
// the vertex array object every draw is recorded into.
func New(width, height int) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", render.ErrNoContext, err)
	}

	c := &Context{width: int32(width), height: int32(height)}
	gl.GenVertexArrays(1, &c.vao)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return c, nil
}

// Version reports the driver's GL version string.
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Begin restores the state the renderer expects. Other code sharing the
// context (raylib's own batching) may have changed it since the last frame.
func (c *Context) Begin() {
	gl.Viewport(0, 0, c.width, c.height)
	gl.BindVertexArray(c.vao)
	c.EnableBlend()
}

// End unbinds the renderer's objects so the shared context is left clean.
func (c *Context) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	c.program = 0
}

func (c *Context) Resize(width, height int) {
	c.width = int32(width)
	c.height = int32(height)
}

func (c *Context) CompileShader(stage render.ShaderStage, source string) (uint32, error) {
	var kind uint32
	switch stage {
	case render.VertexShader:
		kind = gl.VERTEX_SHADER
	case render.FragmentShader:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unknown shader stage %d", stage)
	}

	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (c *Context) LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)
	return program, nil
}

func (c *Context) UseProgram(program uint32) {
	if c.program == program {
		return
	}
	gl.UseProgram(program)
	c.program = program
}

func (c *Context) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (c *Context) BufferFloat32(buffer uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
}

func (c *Context) BufferUint8(buffer uint32, data []uint8) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
}

func (c *Context) VertexAttrib(buffer uint32, location int32, size int, kind render.DataType, normalized bool, stride, offset int) {
	xtype := uint32(gl.FLOAT)
	if kind == render.UnsignedByte {
		xtype = gl.UNSIGNED_BYTE
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(uint32(location), int32(size), xtype, normalized, int32(stride), uintptr(offset))
	gl.EnableVertexAttribArray(uint32(location))
}

func (c *Context) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (c *Context) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (c *Context) Uniform4f(location int32, v [4]float32) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (c *Context) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (c *Context) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (c *Context) BindTexture(unit int, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func (c *Context) TexImage2D(width, height int, rgba []uint8) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
}

func (c *Context) GenerateMipmap() {
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (c *Context) TexParameter(param render.TexParam, value render.TexValue) {
	gl.TexParameteri(gl.TEXTURE_2D, texParams[param], texValues[value])
}

var texParams = map[render.TexParam]uint32{
	render.TexWrapS:     gl.TEXTURE_WRAP_S,
	render.TexWrapT:     gl.TEXTURE_WRAP_T,
	render.TexMinFilter: gl.TEXTURE_MIN_FILTER,
	render.TexMagFilter: gl.TEXTURE_MAG_FILTER,
}

var texValues = map[render.TexValue]int32{
	render.ClampToEdge:   gl.CLAMP_TO_EDGE,
	render.FilterLinear:  gl.LINEAR,
	render.FilterNearest: gl.NEAREST,
}

func (c *Context) EnableBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (c *Context) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Context) DrawArrays(mode render.DrawMode, first, count int) {
	glMode := uint32(gl.LINES)
	if mode == render.Triangles {
		glMode = gl.TRIANGLES
	}
	gl.DrawArrays(glMode, int32(first), int32(count))
}

func (c *Context) Cleanup() {
	gl.DeleteVertexArrays(1, &c.vao)
}

var _ render.Context = (*Context)(nil)
