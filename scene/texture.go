package scene

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Checkerboard draws a size x size black and white board with cells squares per side.
func Checkerboard(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells <= 0 {
		cells = 1
	}
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	light := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dark := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}

// Sprite draws a blue flower on a transparent background, used when no
// billboard image is configured.
func Sprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	petal := color.RGBA{R: 70, G: 110, B: 220, A: 255}
	heart := color.RGBA{R: 250, G: 210, B: 60, A: 255}
	stem := color.RGBA{R: 40, G: 140, B: 60, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c*0.7
			r := math.Hypot(dx, dy) / c
			a := math.Atan2(dy, dx)
			switch {
			case r < 0.12:
				img.SetRGBA(x, y, heart)
			case r < 0.25+0.15*math.Cos(5*a):
				img.SetRGBA(x, y, petal)
			case math.Abs(float64(x)+0.5-c) < float64(size)/64+1 && float64(y) > c*0.7:
				img.SetRGBA(x, y, stem)
			}
		}
	}
	return img
}

// ToRGBA converts any image to tightly packed RGBA, downscaling it so neither
// side exceeds maxSize.
func ToRGBA(src image.Image, maxSize int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		return dst
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// FlipVertical mirrors rows so the first row ends up at texture coordinate t=0.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		off := (b.Dy() - 1 - y) * dst.Stride
		copy(dst.Pix[off:off+rowLen], src)
	}
	return dst
}
