package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"texbillboard/common"
)

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Error(msg)
	}
}

func closeTo(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) < float64(eps)
}

func vecClose(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if !closeTo(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func isNaN(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) {
			return true
		}
	}
	return false
}

func TestDragMapping(t *testing.T) {
	cases := []struct {
		name     string
		dx, dy   float32
		button   Button
		modifier Modifier
		pan      mgl32.Vec3
		rotation mgl32.Vec3
		zoom     float32
	}{
		{"pan", 10, 20, RightButton, NoKey, mgl32.Vec3{0.2, -0.4, 0}, mgl32.Vec3{}, 0},
		{"orbit", 10, 20, LeftButton, NoKey, mgl32.Vec3{}, mgl32.Vec3{-2, -4, 0}, 0},
		{"shift zoom", 30, 40, RightButton, ShiftKey, mgl32.Vec3{}, mgl32.Vec3{}, 0.06},
		{"shift zoom out", -30, 40, RightButton, ShiftKey, mgl32.Vec3{}, mgl32.Vec3{}, -0.06},
		{"shift orbit", 30, 40, LeftButton, ShiftKey, mgl32.Vec3{}, mgl32.Vec3{6, 0, 8}, 0},
		{"ctrl is inert", 30, 40, LeftButton, CtrlKey, mgl32.Vec3{}, mgl32.Vec3{}, 0},
		{"ctrl right is inert", 30, 40, RightButton, CtrlKey, mgl32.Vec3{}, mgl32.Vec3{}, 0},
		{"shift zoom without motion", 0, 0, RightButton, ShiftKey, mgl32.Vec3{}, mgl32.Vec3{}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := NewOrbit()
			o.Drag(c.dx, c.dy, c.button, c.modifier)
			assertTrue(t, o.pan.ApproxEqual(c.pan), "unexpected pan velocity")
			assertTrue(t, o.rotation.ApproxEqual(c.rotation), "unexpected orbit velocity")
			assertTrue(t, mgl32.FloatEqualThreshold(o.zooming, c.zoom, 1e-6), "unexpected zoom velocity")
		})
	}
}

func TestScroll(t *testing.T) {
	o := NewOrbit()
	o.Scroll(0, 0)
	assertTrue(t, o.zooming == 0, "zero scroll must be ignored")
	o.Scroll(20, -120)
	assertTrue(t, mgl32.FloatEqualThreshold(o.zooming, -0.2, 1e-6), "scroll adds (dx+dy)/500")
}

func TestMoveOnlyWhileHeld(t *testing.T) {
	o := NewOrbit()
	o.Move(100, 100)
	assertTrue(t, o.rotation.LenSqr() == 0 && o.pan.LenSqr() == 0, "move without a held button must not drag")

	o.Press(LeftButton, 100, 100)
	o.Move(110, 100)
	assertTrue(t, o.rotation.ApproxEqual(mgl32.Vec3{-2, 0, 0}), "move drags by the delta from the press point")

	o.Release()
	assertTrue(t, o.Button() == NoButton, "release clears the button")
	o.Move(200, 200)
	assertTrue(t, o.rotation.ApproxEqual(mgl32.Vec3{-2, 0, 0}), "move after release must not drag")
	assertTrue(t, !o.Settled(), "release keeps the velocity")
}

func TestPanMovesAlongRight(t *testing.T) {
	o := NewOrbit()
	eye := o.Focus().Sub(o.Position())
	pos, focus := o.Position(), o.Focus()

	o.Drag(50, 0, RightButton, NoKey)
	o.Advance()

	moved := o.Position().Sub(pos)
	assertTrue(t, vecClose(moved, o.Focus().Sub(focus), 1e-5), "position and focus move together")
	assertTrue(t, closeTo(moved.Dot(eye), 0, 1e-5), "pan offset is perpendicular to the eye vector")
	assertTrue(t, closeTo(moved.Dot(WorldUp), 0, 1e-5), "pan offset is perpendicular to world up")

	want := float32(math.Sqrt(float64(eye.Len()))) * 0.01 * (50 * 0.9 / 50)
	assertTrue(t, mgl32.FloatEqualThreshold(moved.Len(), want, 1e-5), "pan offset magnitude")
	assertTrue(t, moved.X() < 0, "dragging right pulls the camera left")
}

func TestOrbitKeepsDistance(t *testing.T) {
	o := NewOrbit()
	d := o.Distance()
	o.Drag(40, 25, LeftButton, NoKey)
	o.Advance()
	assertTrue(t, !o.Position().ApproxEqual(DefaultPosition), "orbit moves the camera")
	assertTrue(t, o.Focus().ApproxEqual(DefaultFocus), "orbit keeps the focus")
	assertTrue(t, mgl32.FloatEqualThreshold(o.Distance(), d, 1e-4), "orbit keeps the distance")
}

func TestUpStaysWorldUpWithoutZRotation(t *testing.T) {
	o := NewOrbit()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		if i%3 == 0 {
			m := NoKey
			if r.Intn(2) == 0 {
				m = ShiftKey
			}
			o.Drag(r.Float32()*80-40, r.Float32()*80-40, LeftButton, m)
		}
		o.Advance()
		assertTrue(t, o.Up() == WorldUp, "up must stay world up")
	}
}

func TestZAxisRotationRollsUp(t *testing.T) {
	o := NewOrbit()
	assertTrue(t, !o.ZAxisRotation(), "z rotation starts disabled")
	o.EnableZAxisRotation(true)
	assertTrue(t, o.ZAxisRotation(), "z rotation enabled")
	o.Drag(0, 60, LeftButton, ShiftKey)
	for i := 0; i < 10; i++ {
		o.Advance()
		assertTrue(t, mgl32.FloatEqualThreshold(o.Up().Len(), 1, 1e-5), "up stays unit length")
	}
	assertTrue(t, !o.Up().ApproxEqual(WorldUp), "z rotation rolls the up vector")

	o.EnableZAxisRotation(false)
	assertTrue(t, o.Up() == WorldUp, "disabling z rotation restores world up")
}

func TestZoomNeverPassesFloor(t *testing.T) {
	o := NewOrbit()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		switch r.Intn(3) {
		case 0:
			o.Scroll(0, -float32(r.Intn(600)))
		case 1:
			o.Drag(-float32(r.Intn(400)), float32(r.Intn(100)), RightButton, ShiftKey)
		}
		o.Advance()
		assertTrue(t, o.Distance() >= MinDistance-1e-5, "distance dropped below the floor")
	}
}

func TestScrollZoomIsMonotonic(t *testing.T) {
	o := NewOrbit()
	o.Scroll(0, -120)
	start := o.Distance()
	frames := 0
	for !o.Settled() {
		d := o.Distance()
		active := common.Abs(o.zooming*MovingInertia) >= SettleEpsilon
		o.Advance()
		if active {
			assertTrue(t, o.Distance() < d, "distance must shrink while zooming in")
		} else {
			assertTrue(t, o.Distance() == d, "settled zoom must not move the camera")
		}
		frames++
		if frames > 200 {
			t.Fatal("zoom did not settle")
		}
	}
	assertTrue(t, o.Distance() < start, "zoom in moved closer")
	assertTrue(t, o.Distance() > MinDistance, "a single notch stays above the floor")

	d := o.Distance()
	o.Advance()
	assertTrue(t, o.Distance() == d, "settled camera does not move")
}

func TestZoomHoldsAtFloor(t *testing.T) {
	o := NewOrbit()
	for i := 0; i < 30; i++ {
		o.Scroll(0, -120)
	}
	prev := o.Distance()
	reached := false
	for i := 0; i < 200 && !o.Settled(); i++ {
		active := common.Abs(o.zooming*MovingInertia) >= SettleEpsilon
		o.Advance()
		d := o.Distance()
		if !active {
			assertTrue(t, d == prev, "settled zoom must not move the camera")
		} else if reached {
			assertTrue(t, mgl32.FloatEqualThreshold(d, MinDistance, 1e-5), "distance must hold at the floor")
		} else {
			assertTrue(t, d < prev, "distance must shrink until the floor")
		}
		if mgl32.FloatEqualThreshold(d, MinDistance, 1e-5) {
			reached = true
		}
		prev = d
	}
	assertTrue(t, reached, "zoom should reach the floor")
	assertTrue(t, o.Settled(), "zoom should settle")
}

func TestEverythingSettles(t *testing.T) {
	o := NewOrbit()
	o.Drag(5000, -3000, RightButton, NoKey)
	o.Drag(-4000, 2500, LeftButton, NoKey)
	o.Drag(1000, 1000, LeftButton, ShiftKey)
	o.Scroll(0, 4000)
	frames := 0
	for ; frames < 200 && !o.Settled(); frames++ {
		o.Advance()
	}
	assertTrue(t, o.Settled(), "camera did not settle")
	assertTrue(t, frames < 200, "settling took too many frames")

	pos := o.Position()
	o.Advance()
	assertTrue(t, o.Position() == pos, "settled camera must be still")
}

func TestResetRestoresDefaultView(t *testing.T) {
	want := mgl32.LookAtV(DefaultPosition, DefaultFocus, WorldUp)
	o := NewOrbit()
	assertTrue(t, o.ViewMatrix().ApproxEqual(want), "initial view is the default view")

	o.EnableZAxisRotation(true)
	o.Drag(300, 100, RightButton, NoKey)
	o.Drag(-200, 90, LeftButton, ShiftKey)
	o.Scroll(0, 360)
	for i := 0; i < 20; i++ {
		o.Advance()
	}
	assertTrue(t, !o.ViewMatrix().ApproxEqual(want), "view should have moved")

	o.Reset()
	assertTrue(t, o.ViewMatrix().ApproxEqual(want), "reset restores the default view")
	assertTrue(t, !o.Settled(), "reset keeps pending velocities")
}

func TestDegenerateEyeIsInert(t *testing.T) {
	o := NewOrbit()
	o.position = o.focus
	o.Drag(50, 50, RightButton, NoKey)
	o.Drag(50, 50, LeftButton, NoKey)
	o.Advance()
	assertTrue(t, !isNaN(o.Position()) && !isNaN(o.Focus()), "coincident eye and focus must not produce NaN")
	assertTrue(t, o.Position() == o.Focus(), "coincident eye and focus stay put")

	o = NewOrbit()
	o.position = o.focus.Add(mgl32.Vec3{0, 10, 0})
	o.Drag(50, 50, RightButton, NoKey)
	o.Advance()
	assertTrue(t, !isNaN(o.Position()) && !isNaN(o.Focus()), "looking straight down must not produce NaN")
}
