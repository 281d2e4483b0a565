package scene

import "github.com/go-gl/mathgl/mgl32"

var DefaultLightPosition = mgl32.Vec4{0, 100, 100, 1}

// Light mirrors the shader's std140 Light block.
type Light struct {
	Position  mgl32.Vec4
	Color     mgl32.Vec4
	Intensity float32
}

func NewLight() Light {
	return Light{
		Position:  DefaultLightPosition,
		Color:     mgl32.Vec4{1, 1, 1, 1},
		Intensity: 1,
	}
}

func (l Light) Floats() []float32 {
	res := make([]float32, 0, 9)
	res = append(res, l.Position[:]...)
	res = append(res, l.Color[:]...)
	return append(res, l.Intensity)
}

func (l Light) Size() int { return std140Size(len(l.Floats())) }

// Material mirrors the shader's std140 Material block.
type Material struct {
	Diffuse    mgl32.Vec4
	Specular   mgl32.Vec4
	Reflection float32
	Shininess  float32
}

func NewMaterial() Material {
	return Material{
		Diffuse:   mgl32.Vec4{-10, 1, 0, 1},
		Specular:  mgl32.Vec4{1, 1, 1, 1},
		Shininess: 10,
	}
}

func FloorMaterial() Material {
	m := NewMaterial()
	m.Shininess = 50
	m.Specular = mgl32.Vec4{0.5, 0.5, 0.5, 1}
	return m
}

func BillboardMaterial() Material {
	m := NewMaterial()
	m.Specular = mgl32.Vec4{0.5, 0.5, 0.5, 0}
	return m
}

func (m Material) Floats() []float32 {
	res := make([]float32, 0, 10)
	res = append(res, m.Diffuse[:]...)
	res = append(res, m.Specular[:]...)
	return append(res, m.Reflection, m.Shininess)
}

func (m Material) Size() int { return std140Size(len(m.Floats())) }

// std140Size is the byte size of a block of n floats padded to a vec4 boundary.
func std140Size(n int) int {
	const vec4 = 4 * GL_FLOAT32_SIZE
	return (n*GL_FLOAT32_SIZE + vec4 - 1) / vec4 * vec4
}
