package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"texbillboard/common"
)

var DefaultBillboardPosition = mgl32.Vec3{-1, 1.001, -3}

const BillboardScale = 4

// Billboard is a camera-facing sprite that only turns about world Y.
type Billboard struct {
	Position mgl32.Vec3
	Scale    float32
	base     mgl32.Mat4
}

func NewBillboard() *Billboard {
	b := &Billboard{Position: DefaultBillboardPosition, Scale: BillboardScale}
	b.base = mgl32.Scale3D(b.Scale, b.Scale, b.Scale).Mul4(mgl32.Translate3D(b.Position[0], b.Position[1], b.Position[2]))
	return b
}

// Angle is the Y rotation turning the sprite toward the camera, where
// cameraDir is the camera position minus its focus.
func (b *Billboard) Angle(cameraDir mgl32.Vec3) float32 {
	return float32(math.Atan2(float64(b.Position.X()-cameraDir.X()), float64(b.Position.Z()-cameraDir.Z())))
}

// Model stands the unit plane up and turns it toward the camera.
func (b *Billboard) Model(cameraDir mgl32.Vec3) mgl32.Mat4 {
	return b.base.
		Mul4(mgl32.HomogRotate3DY(b.Angle(cameraDir))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))
}

// NormalMatrix is negated so the lit side faces the viewer.
func (b *Billboard) NormalMatrix(model mgl32.Mat4) mgl32.Mat4 {
	return common.NormalMatrix(model).Mul(-1)
}
