package canvas

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad draws an RGBA image in window pixels, used for the parameter overlay.
type Quad struct {
	program   uint32
	vao, vbo  uint32
	texture   uint32
	uRect     int32
	uViewport int32

	width, height int
}

func NewQuad() (*Quad, error) {
	q := &Quad{}
	if err := q.initGL(); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *Quad) initGL() error {
	var vertexShader = `
	#version 330 core
	layout (location = 0) in vec2 corner;
	uniform vec4 rect;
	uniform vec2 viewport;
	out vec2 uv;
	void main() {
	  vec2 p = rect.xy + corner * rect.zw;
	  gl_Position = vec4(p.x / viewport.x * 2.0 - 1.0, 1.0 - p.y / viewport.y * 2.0, 0.0, 1.0);
	  uv = corner;
	}` + "\x00"

	var fragShader = `
	#version 330 core
	in vec2 uv;
	uniform sampler2D tex;
	out vec4 color;
	void main() {
	  color = texture(tex, uv);
	}` + "\x00"

	var err error
	q.program, err = NewProgram(vertexShader, fragShader)
	if err != nil {
		return err
	}
	if q.uRect, err = UniformLocation(q.program, "rect"); err != nil {
		return err
	}
	if q.uViewport, err = UniformLocation(q.program, "viewport"); err != nil {
		return err
	}

	corners := []float32{
		0, 0,
		0, 1,
		1, 1,
		0, 0,
		1, 1,
		1, 0,
	}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*GL_FLOAT32_SIZE, gl.Ptr(corners), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*GL_FLOAT32_SIZE, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return nil
}

// SetImage replaces the drawn image.
func (q *Quad) SetImage(img *image.RGBA) error {
	q.width, q.height = img.Rect.Dx(), img.Rect.Dy()
	if q.texture != 0 {
		UpdateTexture(q.texture, img)
		return nil
	}
	var err error
	q.texture, err = NewTexture(img, TextureOptions{
		WrapS:  gl.CLAMP_TO_EDGE,
		WrapT:  gl.CLAMP_TO_EDGE,
		Filter: gl.NEAREST,
	})
	return err
}

// Draw puts the image's top left corner at (x, y) in a viewport of w x h pixels.
func (q *Quad) Draw(x, y, w, h int) {
	if q.texture == 0 {
		return
	}
	depth := gl.IsEnabled(gl.DEPTH_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(q.program)
	gl.Uniform4f(q.uRect, float32(x), float32(y), float32(q.width), float32(q.height))
	gl.Uniform2f(q.uViewport, float32(w), float32(h))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.BLEND)
	if depth {
		gl.Enable(gl.DEPTH_TEST)
	}
}

func (q *Quad) Close() {
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteBuffers(1, &q.vbo)
	if q.texture != 0 {
		gl.DeleteTextures(1, &q.texture)
	}
	gl.DeleteProgram(q.program)
}
