package glfont

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font rasterises lines of text into RGBA images for upload as textures.
type Font struct {
	ttf     *truetype.Font
	size    float64
	spacing float64
	padding int

	Foreground color.Color
	Background color.Color
}

// LoadFont parses TrueType data; nil data selects the bundled Go Regular face.
func LoadFont(ttf []byte, size float64) (*Font, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{
		ttf:        f,
		size:       size,
		spacing:    1.4,
		padding:    8,
		Foreground: color.White,
		Background: color.RGBA{A: 160},
	}, nil
}

func (f *Font) lineHeight() int {
	return int(f.size*f.spacing + 0.5)
}

// Measure returns the pixel size of the image Render would produce.
func (f *Font) Measure(lines []string) (width, height int) {
	face := truetype.NewFace(f.ttf, &truetype.Options{Size: f.size, Hinting: font.HintingFull})
	defer face.Close()
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}
	return width + 2*f.padding, len(lines)*f.lineHeight() + 2*f.padding
}

// Render draws the lines top to bottom on a translucent panel.
func (f *Font) Render(lines []string) (*image.RGBA, error) {
	w, h := f.Measure(lines)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(f.Background), image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f.ttf)
	c.SetFontSize(f.size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(f.Foreground))
	c.SetHinting(font.HintingFull)

	pt := freetype.Pt(f.padding, f.padding+int(c.PointToFixed(f.size)>>6))
	for _, l := range lines {
		if _, err := c.DrawString(l, pt); err != nil {
			return nil, fmt.Errorf("draw %q: %w", l, err)
		}
		pt.Y += c.PointToFixed(f.size * f.spacing)
	}
	return img, nil
}
