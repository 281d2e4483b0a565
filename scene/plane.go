package scene

import "github.com/go-gl/mathgl/mgl32"

const GL_FLOAT32_SIZE = 4

// UnitPlane is a two triangle quad spanning [-1,1] on XZ, facing +Y.
type UnitPlane struct {
	vertices []float32
	normals  []float32
	indices  []uint16
}

func NewUnitPlane() *UnitPlane {
	return &UnitPlane{
		vertices: []float32{
			-1, 0, -1,
			-1, 0, 1,
			1, 0, 1,
			1, 0, -1,
		},
		normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

func (p *UnitPlane) Vertices() []float32 { return p.vertices }
func (p *UnitPlane) Normals() []float32  { return p.normals }
func (p *UnitPlane) Indices() []uint16   { return p.indices }
func (p *UnitPlane) NumIndices() int     { return len(p.indices) }

// TexCoords repeats the texture scale times across the plane.
func (p *UnitPlane) TexCoords(scale float32) []float32 {
	return []float32{
		0, 0,
		0, scale,
		scale, scale,
		scale, 0,
	}
}

func (p *UnitPlane) VertexOffset() int   { return len(p.vertices) * GL_FLOAT32_SIZE }
func (p *UnitPlane) TexCoordOffset() int { return len(p.vertices) / 3 * 2 * GL_FLOAT32_SIZE }
func (p *UnitPlane) IndexOffset() int    { return len(p.indices) * 2 }

// BufferSize is the vertex buffer layout: positions, normals, then texture coordinates.
func (p *UnitPlane) BufferSize() int {
	return 2*p.VertexOffset() + p.TexCoordOffset()
}

// FloorModel scales the unit plane to the requested floor size.
func FloorModel(planeSize int) mgl32.Mat4 {
	s := float32(planeSize) * 2
	return mgl32.Scale3D(s, s, s)
}

// Projection is the viewer's perspective projection for a viewport.
func Projection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(45), float32(width)/float32(height), 0.1, 10000)
}
