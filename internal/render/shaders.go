package render

import "github.com/san-kum/gravwell/internal/dynamo"

const (
	// PlaceholderTexture is always present and is used for any missing name.
	PlaceholderTexture = "not_found"
	// WellTexture is the default texture name for gravity wells.
	WellTexture = "gravity_well"

	// Two floats per vertex, two vertices per particle.
	FloatsPerParticle = 4
	// Four bytes per vertex, two vertices per particle.
	BytesPerParticle = 8

	// Quad layout: x, y, u, v as float32.
	wellVertexStride   = 4 * 4
	wellTexCoordOffset = 2 * 4
	wellVertexCount    = 6
)

var placeholderPixel = []uint8{0, 0, 255, 255}

var clearColor = [4]float32{0, 0, 0, 1}

const particleVertexSource = `#version 330 core
in vec2 a_Position;
in vec4 a_Color;

uniform mat4 u_Proj;

out vec4 v_Color;

void main() {
    gl_Position = u_Proj * vec4(a_Position, 0.0, 1.0);
    v_Color = a_Color;
}
`

const particleFragmentSource = `#version 330 core
in vec4 v_Color;

out vec4 fragColor;

void main() {
    fragColor = v_Color;
}
`

const wellVertexSource = `#version 330 core
in vec2 a_Position;
in vec2 a_TexCoord;

uniform mat4 u_Model;
uniform mat4 u_Proj;

out vec2 v_TexCoord;

void main() {
    gl_Position = u_Proj * u_Model * vec4(a_Position, 0.0, 1.0);
    v_TexCoord = a_TexCoord;
}
`

const wellFragmentSource = `#version 330 core
in vec2 v_TexCoord;

uniform sampler2D u_Sampler;
uniform vec4 u_Tint;

out vec4 fragColor;

void main() {
    fragColor = texture(u_Sampler, v_TexCoord) * u_Tint;
}
`

// wellQuad returns two triangles covering the well's square, centered on
// the origin.
func wellQuad() []float32 {
	r := float32(dynamo.WellRadius)
	return []float32{
		r, -r, 1, 0,
		-r, -r, 0, 0,
		-r, r, 0, 1,

		r, -r, 1, 0,
		-r, r, 0, 1,
		r, r, 1, 1,
	}
}
