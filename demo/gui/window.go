package gui

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"texbillboard/camera"
)

const (
	PLANE_SIZE_STEP = 5
	// glfw reports wheel notches, the camera expects 1/8 degree steps
	SCROLL_UNITS_PER_NOTCH = 120
	KEY_ZOOM_STEP          = 0.1
)

var helpLines = []string{
	"LMB: rotate  RMB: pan  wheel or +/-: zoom",
	"Shift+RMB: zoom  Shift+LMB: roll",
	"R: reset camera  H: hide panel  Esc: quit",
}

func (ui *Gui) registerEvent() {
	ui.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		ui.renderer.Resize(width, height)
	})
	//鼠标事件
	ui.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			x, y := w.GetCursorPos()
			b := camera.LeftButton
			if button == glfw.MouseButtonRight {
				b = camera.RightButton
			}
			ui.camera.Press(b, float32(x), float32(y))
		case glfw.Release:
			ui.camera.Release()
		}
	})
	ui.window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		ui.camera.Move(float32(x), float32(y))
	})
	//鼠标滚轮或者触摸板，鼠标滚轮只有yoff，表示垂直滚动了多少，触摸板有xoff和yoff。
	ui.window.SetScrollCallback(func(w *glfw.Window, xoff float64, yoff float64) {
		ui.camera.Scroll(float32(xoff*SCROLL_UNITS_PER_NOTCH), float32(yoff*SCROLL_UNITS_PER_NOTCH))
	})
	//键盘事件
	ui.window.SetKeyCallback(ui.onKey)
}

func (ui *Gui) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		ui.camera.SetModifier(camera.NoKey)
		return
	}
	if action == glfw.Repeat && !repeatable(key) {
		return
	}
	r := ui.renderer
	p := ui.cfg.PropsConfig
	switch key {
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		ui.camera.SetModifier(camera.ShiftKey)
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		ui.camera.SetModifier(camera.CtrlKey)
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyR:
		r.ResetCamera()
	case glfw.KeyA:
		r.SetAnisotropic(!p.Anisotropic)
	case glfw.KeyF:
		step := 1
		if mods&glfw.ModShift != 0 {
			step = -1
		}
		r.SetFilterMode(p.FilterMode.Next(step))
	case glfw.KeyT:
		r.SetDepthTest(!p.DepthTest)
	case glfw.KeyZ:
		r.SetZAxisRotation(!ui.camera.ZAxisRotation())
	case glfw.KeyLeftBracket:
		r.SetPlaneSize(p.PlaneSize - PLANE_SIZE_STEP)
	case glfw.KeyRightBracket:
		r.SetPlaneSize(p.PlaneSize + PLANE_SIZE_STEP)
	case glfw.KeyKPAdd, glfw.KeyEqual:
		ui.camera.Zoom(-KEY_ZOOM_STEP)
	case glfw.KeyKPSubtract, glfw.KeyMinus:
		ui.camera.Zoom(KEY_ZOOM_STEP)
	case glfw.KeyH:
		r.ToggleHud()
	default:
		ui.log.Debug("unbound key", zap.Int("key", int(key)))
	}
}

func repeatable(key glfw.Key) bool {
	switch key {
	case glfw.KeyLeftBracket, glfw.KeyRightBracket,
		glfw.KeyKPAdd, glfw.KeyEqual, glfw.KeyKPSubtract, glfw.KeyMinus:
		return true
	}
	return false
}
