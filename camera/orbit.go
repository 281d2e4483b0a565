package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"texbillboard/common"
)

const (
	MovingInertia = 0.9
	SettleEpsilon = 1e-4
	MinDistance   = 0.5

	panSensitivity   = 50.0
	orbitSensitivity = 5.0
	zoomSensitivity  = 500.0

	panSpeed   = 0.01
	orbitSpeed = 0.02
	zoomSpeed  = 0.3
)

var (
	DefaultPosition = mgl32.Vec3{-4, 5, 15}
	DefaultFocus    = mgl32.Vec3{-4, 2, 0}
	WorldUp         = mgl32.Vec3{0, 1, 0}
)

type Button int

const (
	NoButton Button = iota
	LeftButton
	RightButton
)

// Modifier is the special key held while dragging.
type Modifier int

const (
	NoKey Modifier = iota
	ShiftKey
	// CtrlKey is accepted but currently maps to nothing.
	CtrlKey
)

// Orbit is an eye/focus/up camera driven by decaying pan, orbit and zoom
// velocities. All methods must be called from the render thread.
type Orbit struct {
	position mgl32.Vec3
	focus    mgl32.Vec3
	up       mgl32.Vec3

	pan      mgl32.Vec3
	rotation mgl32.Vec3
	zooming  float32

	button        Button
	modifier      Modifier
	lastMouse     mgl32.Vec2
	zAxisRotation bool
}

func NewOrbit() *Orbit {
	return &Orbit{
		position: DefaultPosition,
		focus:    DefaultFocus,
		up:       WorldUp,
	}
}

func (o *Orbit) Position() mgl32.Vec3 { return o.position }
func (o *Orbit) Focus() mgl32.Vec3    { return o.focus }
func (o *Orbit) Up() mgl32.Vec3       { return o.up }
func (o *Orbit) Button() Button       { return o.button }

// Distance returns the eye-to-focus distance.
func (o *Orbit) Distance() float32 {
	return o.position.Sub(o.focus).Len()
}

func (o *Orbit) SetModifier(m Modifier) {
	o.modifier = m
}

func (o *Orbit) ZAxisRotation() bool {
	return o.zAxisRotation
}

// EnableZAxisRotation toggles rolling of the up vector. Disabling it snaps
// the up vector back to world up.
func (o *Orbit) EnableZAxisRotation(enabled bool) {
	o.zAxisRotation = enabled
	if !enabled {
		o.up = WorldUp
	}
}

// Press records the held button and the cursor position drags are measured from.
func (o *Orbit) Press(b Button, x, y float32) {
	o.lastMouse = mgl32.Vec2{x, y}
	if b == RightButton {
		o.button = RightButton
	} else {
		o.button = LeftButton
	}
}

// Move feeds a cursor position. It only accumulates velocity while a button is held.
func (o *Orbit) Move(x, y float32) {
	cur := mgl32.Vec2{x, y}
	moved := cur.Sub(o.lastMouse)
	o.lastMouse = cur
	if o.button == NoButton {
		return
	}
	o.Drag(moved.X(), moved.Y(), o.button, o.modifier)
}

// Drag adds a pointer delta to the pan, orbit or zoom velocity.
func (o *Orbit) Drag(dx, dy float32, b Button, m Modifier) {
	switch m {
	case NoKey:
		if b == RightButton {
			o.pan[0] += dx / panSensitivity
			o.pan[1] -= dy / panSensitivity
		} else {
			o.rotation[0] -= dx / orbitSensitivity
			o.rotation[1] -= dy / orbitSensitivity
		}
	case ShiftKey:
		if b == RightButton {
			l := mgl32.Vec2{dx, dy}.Len()
			if l == 0 {
				return
			}
			o.zooming += l * (dx / l) / zoomSensitivity
		} else {
			o.rotation[0] += dx / orbitSensitivity
			o.rotation[2] += dy / orbitSensitivity
		}
	case CtrlKey:
	}
}

func (o *Orbit) Scroll(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	o.zooming += (dx + dy) / zoomSensitivity
}

// Zoom adds directly to the zoom velocity; positive moves away from the focus.
func (o *Orbit) Zoom(delta float32) {
	o.zooming += delta
}

// Release clears the held button. Accumulated velocities keep decaying.
func (o *Orbit) Release() {
	o.button = NoButton
}

// Reset puts the camera back at its default pose. Pending velocities are kept.
func (o *Orbit) Reset() {
	o.position = DefaultPosition
	o.focus = DefaultFocus
	o.up = WorldUp
}

// Settled reports whether every velocity has decayed below its threshold.
func (o *Orbit) Settled() bool {
	return o.pan.LenSqr() < SettleEpsilon &&
		o.rotation.LenSqr() < SettleEpsilon &&
		common.Abs(o.zooming) < SettleEpsilon
}

// Advance runs one frame of pan, orbit and zoom, in that order.
func (o *Orbit) Advance() {
	o.translate()
	o.rotate()
	o.zoom()
}

func (o *Orbit) translate() {
	o.pan = o.pan.Mul(MovingInertia)
	if o.pan.LenSqr() < SettleEpsilon {
		return
	}
	eye := o.focus.Sub(o.position)
	scale := sqrt(eye.Len()) * panSpeed
	v := eye.Cross(WorldUp)
	if scale == 0 || v.LenSqr() == 0 {
		return
	}
	u := v.Cross(eye).Normalize()
	v = v.Normalize()

	offset := v.Mul(o.pan.X()).Add(u.Mul(o.pan.Y())).Mul(scale)
	o.position = o.position.Sub(offset)
	o.focus = o.focus.Sub(offset)
}

func (o *Orbit) rotate() {
	o.rotation = o.rotation.Mul(MovingInertia)
	if o.rotation.LenSqr() < SettleEpsilon {
		return
	}
	eye := o.position.Sub(o.focus)
	scale := sqrt(eye.Len()) * orbitSpeed
	if scale == 0 {
		return
	}
	q := mgl32.QuatRotate(mgl32.DegToRad(o.rotation.Y()*scale), mgl32.Vec3{1, 0, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(o.rotation.X()*scale), mgl32.Vec3{0, 1, 0})).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(o.rotation.Z()*scale), mgl32.Vec3{0, 0, 1}))
	o.position = o.focus.Add(q.Rotate(eye))
	if o.zAxisRotation {
		o.up = q.Rotate(o.up).Normalize()
	}
}

func (o *Orbit) zoom() {
	o.zooming *= MovingInertia
	if common.Abs(o.zooming) < SettleEpsilon {
		return
	}
	eye := o.position.Sub(o.focus)
	l := eye.Len()
	if l == 0 {
		return
	}
	dir := eye.Mul(1 / l)
	l += sqrt(l) * o.zooming * zoomSpeed
	if l < MinDistance {
		l = MinDistance
	}
	o.position = o.focus.Add(dir.Mul(l))
}

// ViewMatrix is the look-at matrix of the current pose.
func (o *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(o.position, o.focus, o.up)
}

func sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
