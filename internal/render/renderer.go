package render

import (
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/gravwell/internal/dynamo"
)

// DefaultSelectionTint is blended into selected wells.
var DefaultSelectionTint = dynamo.Color{R: 77, G: 128, B: 255, A: 255}

// Image is a decoded texture: tightly packed RGBA rows, top row first.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

func (img Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidImage, img.Width, img.Height)
	}
	if len(img.Pix) != img.Width*img.Height*4 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidImage, len(img.Pix), img.Width, img.Height)
	}
	return nil
}

type particleProgram struct {
	id       uint32
	position int32
	color    int32
	proj     int32
}

type wellProgram struct {
	id       uint32
	position int32
	texCoord int32
	model    int32
	proj     int32
	sampler  int32
	tint     int32
}

type Renderer struct {
	ctx        Context
	width      uint32
	height     uint32
	projection mgl32.Mat4

	particles particleProgram
	wells     wellProgram

	particleVertexBuffer uint32
	particleColorBuffer  uint32
	wellBuffer           uint32

	textures     map[string]uint32
	wellTexture  string
	selectedTint [4]float32

	vertices []float32
	colors   []uint8
}

// Initialize compiles both programs, resolves every attribute and uniform,
// allocates buffers and seeds the texture cache with the placeholder. Any
// failure leaves no usable Renderer.
func Initialize(ctx Context, width, height uint32) (*Renderer, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}

	r := &Renderer{
		ctx:         ctx,
		width:       width,
		height:      height,
		projection:  Projection(width, height),
		textures:    make(map[string]uint32),
		wellTexture: WellTexture,
	}
	r.SetSelectionTint(DefaultSelectionTint)

	if err := r.initParticleProgram(); err != nil {
		return nil, err
	}
	if err := r.initWellProgram(); err != nil {
		return nil, err
	}

	ctx.EnableBlend()

	r.particleVertexBuffer = ctx.CreateBuffer()
	r.particleColorBuffer = ctx.CreateBuffer()
	r.wellBuffer = ctx.CreateBuffer()
	ctx.BufferFloat32(r.wellBuffer, wellQuad())

	if err := r.AddTexture(PlaceholderTexture, Image{Width: 1, Height: 1, Pix: placeholderPixel}); err != nil {
		return nil, err
	}

	log.Printf("render: initialized %dx%d", width, height)
	return r, nil
}

// Projection maps [0,width] x [0,height], y down, to clip space.
func Projection(width, height uint32) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, 1, -1)
}

// ModelMatrix places a well quad: translate to the well, then spin about Z.
func ModelMatrix(w dynamo.GravityWell) mgl32.Mat4 {
	translate := mgl32.Translate3D(float32(w.Pos.X), float32(w.Pos.Y), 0)
	rotate := mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(w.RotationDeg)))
	return translate.Mul4(rotate)
}

func (r *Renderer) buildProgram(name, vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := r.ctx.CompileShader(VertexShader, vertexSrc)
	if err != nil {
		return 0, &ShaderError{Program: name, Stage: VertexShader.String(), Log: err.Error(), Err: ErrShaderCompile}
	}
	fs, err := r.ctx.CompileShader(FragmentShader, fragmentSrc)
	if err != nil {
		return 0, &ShaderError{Program: name, Stage: FragmentShader.String(), Log: err.Error(), Err: ErrShaderCompile}
	}
	program, err := r.ctx.LinkProgram(vs, fs)
	if err != nil {
		return 0, &ShaderError{Program: name, Log: err.Error(), Err: ErrProgramLink}
	}
	return program, nil
}

type locationLookup struct {
	ctx     Context
	program uint32
	name    string
	err     error
}

func (l *locationLookup) attrib(name string) int32 {
	return l.check(name, l.ctx.AttribLocation(l.program, name))
}

func (l *locationLookup) uniform(name string) int32 {
	return l.check(name, l.ctx.UniformLocation(l.program, name))
}

func (l *locationLookup) check(name string, loc int32) int32 {
	if loc < 0 && l.err == nil {
		l.err = fmt.Errorf("%w: %s in %s program", ErrMissingLocation, name, l.name)
	}
	return loc
}

func (r *Renderer) initParticleProgram() error {
	id, err := r.buildProgram("particle", particleVertexSource, particleFragmentSource)
	if err != nil {
		return err
	}

	l := &locationLookup{ctx: r.ctx, program: id, name: "particle"}
	r.particles = particleProgram{
		id:       id,
		position: l.attrib("a_Position"),
		color:    l.attrib("a_Color"),
		proj:     l.uniform("u_Proj"),
	}
	return l.err
}

func (r *Renderer) initWellProgram() error {
	id, err := r.buildProgram("well", wellVertexSource, wellFragmentSource)
	if err != nil {
		return err
	}

	l := &locationLookup{ctx: r.ctx, program: id, name: "well"}
	r.wells = wellProgram{
		id:       id,
		position: l.attrib("a_Position"),
		texCoord: l.attrib("a_TexCoord"),
		model:    l.uniform("u_Model"),
		proj:     l.uniform("u_Proj"),
		sampler:  l.uniform("u_Sampler"),
		tint:     l.uniform("u_Tint"),
	}
	return l.err
}

func (r *Renderer) Width() uint32  { return r.width }
func (r *Renderer) Height() uint32 { return r.height }

func (r *Renderer) ProjectionMatrix() mgl32.Mat4 { return r.projection }

// SetWellTexture chooses the cached texture used for wells.
func (r *Renderer) SetWellTexture(name string) { r.wellTexture = name }

// SetSelectionTint sets the color averaged into selected wells.
func (r *Renderer) SetSelectionTint(c dynamo.Color) {
	tint := dynamo.White
	tint.Tint(c)
	r.selectedTint = tint.Floats()
}

func (r *Renderer) ClearScreen() {
	r.ctx.Clear(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
}

// RenderParticles repacks the trail segments of particles and draws them as
// one line list of 2*len(particles) vertices.
func (r *Renderer) RenderParticles(particles []dynamo.Particle, trailScale float64) {
	r.pack(particles, trailScale)
	if len(particles) == 0 {
		return
	}

	r.ctx.UseProgram(r.particles.id)
	r.ctx.BufferFloat32(r.particleVertexBuffer, r.vertices)
	r.ctx.VertexAttrib(r.particleVertexBuffer, r.particles.position, 2, Float, false, 0, 0)
	r.ctx.BufferUint8(r.particleColorBuffer, r.colors)
	r.ctx.VertexAttrib(r.particleColorBuffer, r.particles.color, 4, UnsignedByte, true, 0, 0)
	r.ctx.UniformMatrix4(r.particles.proj, r.projection)
	r.ctx.DrawArrays(Lines, 0, 2*len(particles))
}

func (r *Renderer) pack(particles []dynamo.Particle, trailScale float64) {
	r.vertices = r.vertices[:0]
	r.colors = r.colors[:0]

	for i := range particles {
		p := &particles[i]
		from, to := p.Trail(trailScale)
		r.vertices = append(r.vertices,
			float32(from.X), float32(from.Y),
			float32(to.X), float32(to.Y),
		)
		c := p.Color
		r.colors = append(r.colors,
			c.R, c.G, c.B, 255,
			c.R, c.G, c.B, 0,
		)
	}
}

// RenderGravityWells draws one textured quad per well. Selected wells are
// tinted.
func (r *Renderer) RenderGravityWells(wells []dynamo.GravityWell) {
	if len(wells) == 0 {
		return
	}

	r.ctx.UseProgram(r.wells.id)
	r.ctx.VertexAttrib(r.wellBuffer, r.wells.position, 2, Float, false, wellVertexStride, 0)
	r.ctx.VertexAttrib(r.wellBuffer, r.wells.texCoord, 2, Float, false, wellVertexStride, wellTexCoordOffset)
	r.ctx.UniformMatrix4(r.wells.proj, r.projection)

	r.ctx.BindTexture(0, r.Texture(r.wellTexture))
	r.ctx.Uniform1i(r.wells.sampler, 0)

	white := dynamo.White.Floats()
	for i := range wells {
		w := &wells[i]
		r.ctx.UniformMatrix4(r.wells.model, ModelMatrix(*w))
		if w.IsSelected {
			r.ctx.Uniform4f(r.wells.tint, r.selectedTint)
		} else {
			r.ctx.Uniform4f(r.wells.tint, white)
		}
		r.ctx.DrawArrays(Triangles, 0, wellVertexCount)
	}
}

// ResetParticles drops the packed particle arrays. The next frame repacks
// from scratch.
func (r *Renderer) ResetParticles() {
	r.vertices = r.vertices[:0]
	r.colors = r.colors[:0]
}

// ParticleVertices returns the last packed positions, four floats per particle.
func (r *Renderer) ParticleVertices() []float32 { return r.vertices }

// ParticleColors returns the last packed colors, eight bytes per particle.
func (r *Renderer) ParticleColors() []uint8 { return r.colors }

// AddTexture uploads img into a fresh texture under name. A texture already
// cached under name is deleted, so no sampling state carries over.
// Power-of-two images get mipmaps; anything else is clamped to edge and
// filtered linearly.
func (r *Renderer) AddTexture(name string, img Image) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("texture %q: %w", name, err)
	}

	if old, ok := r.textures[name]; ok {
		r.ctx.DeleteTexture(old)
	}
	tex := r.ctx.CreateTexture()
	r.ctx.BindTexture(0, tex)
	r.ctx.TexImage2D(img.Width, img.Height, img.Pix)

	if isPowerOfTwo(img.Width) && isPowerOfTwo(img.Height) {
		r.ctx.GenerateMipmap()
	} else {
		r.ctx.TexParameter(TexWrapS, ClampToEdge)
		r.ctx.TexParameter(TexWrapT, ClampToEdge)
		r.ctx.TexParameter(TexMinFilter, FilterLinear)
	}

	r.textures[name] = tex
	return nil
}

// Texture returns the handle cached under name, or the placeholder.
func (r *Renderer) Texture(name string) uint32 {
	if tex, ok := r.textures[name]; ok {
		return tex
	}
	return r.textures[PlaceholderTexture]
}

func (r *Renderer) HasTexture(name string) bool {
	_, ok := r.textures[name]
	return ok
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NDC maps a canvas point through the projection, for tests and picking.
func (r *Renderer) NDC(x, y float64) (float32, float32) {
	v := r.projection.Mul4x1(mgl32.Vec4{float32(x), float32(y), 0, 1})
	if v[3] == 0 {
		return float32(math.NaN()), float32(math.NaN())
	}
	return v[0] / v[3], v[1] / v[3]
}
