package canvas

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"texbillboard/demo/config"
)

// EXT_texture_filter_anisotropic, not part of the core profile headers.
const (
	TEXTURE_MAX_ANISOTROPY_EXT     = 0x84FE
	MAX_TEXTURE_MAX_ANISOTROPY_EXT = 0x84FF
)

// filterTable maps each panel filter mode to its GL enum.
var filterTable = [config.NUM_FILTER_MODES]uint32{
	config.FILTER_NEAREST:                gl.NEAREST,
	config.FILTER_LINEAR:                 gl.LINEAR,
	config.FILTER_NEAREST_MIPMAP_NEAREST: gl.NEAREST_MIPMAP_NEAREST,
	config.FILTER_NEAREST_MIPMAP_LINEAR:  gl.NEAREST_MIPMAP_LINEAR,
	config.FILTER_LINEAR_MIPMAP_NEAREST:  gl.LINEAR_MIPMAP_NEAREST,
	config.FILTER_LINEAR_MIPMAP_LINEAR:   gl.LINEAR_MIPMAP_LINEAR,
}

func GLFilter(mode config.FilterMode) uint32 {
	if mode < 0 || mode >= config.NUM_FILTER_MODES {
		return gl.LINEAR
	}
	return filterTable[mode]
}

// SetFilter changes min and mag filtering of a texture.
func SetFilter(texture uint32, mode config.FilterMode) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	setFilter(GLFilter(mode))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func setFilter(filter uint32) {
	minFilter := filter
	if minFilter == 0 {
		minFilter = gl.LINEAR
	}
	// magnification has no mipmap variants
	mag := uint32(gl.LINEAR)
	if minFilter == gl.NEAREST || minFilter == gl.NEAREST_MIPMAP_NEAREST || minFilter == gl.NEAREST_MIPMAP_LINEAR {
		mag = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(minFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(mag))
}

type Anisotropy struct {
	Supported bool
	Max       float32
}

// DetectAnisotropy must run with a current context.
func DetectAnisotropy() Anisotropy {
	a := Anisotropy{Supported: glfw.ExtensionSupported("GL_EXT_texture_filter_anisotropic")}
	if a.Supported {
		gl.GetFloatv(MAX_TEXTURE_MAX_ANISOTROPY_EXT, &a.Max)
	}
	return a
}

// Apply sets the anisotropy level of the bound 2D texture.
func (a Anisotropy) Apply(enabled bool) {
	if !a.Supported {
		return
	}
	level := float32(1)
	if enabled {
		level = a.Max
	}
	gl.TexParameterf(gl.TEXTURE_2D, TEXTURE_MAX_ANISOTROPY_EXT, level)
}
