package glfont

import (
	"testing"
)

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Error(msg)
	}
}

func TestRender(t *testing.T) {
	f, err := LoadFont(nil, 16)
	assertTrue(t, err == nil, "bundled font loads")

	lines := []string{"Filter: LINEAR_MIPMAP_LINEAR", "Plane size: 30"}
	w, h := f.Measure(lines)
	img, err := f.Render(lines)
	assertTrue(t, err == nil, "render succeeds")
	assertTrue(t, img.Bounds().Dx() == w && img.Bounds().Dy() == h, "image matches the measured size")
	assertTrue(t, h > 2*f.lineHeight(), "two lines plus padding")

	lit := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 128 {
			lit++
		}
	}
	assertTrue(t, lit > 0, "glyphs were drawn")

	wider, _ := f.Measure(append(lines, "a much longer line than the others in this panel"))
	assertTrue(t, wider > w, "width follows the longest line")
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	_, err := LoadFont([]byte("not a font"), 12)
	assertTrue(t, err != nil, "garbage must not parse")
}
