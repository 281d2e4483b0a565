package canvas

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	GL_FLOAT32_SIZE = 4
	GL_UINT16_SIZE  = 2
)

func NewProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader type 0x%x: %v", shaderType, log)
	}

	return shader, nil
}

// UniformLocation looks up a uniform and fails when the linker dropped it.
func UniformLocation(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("cannot bind uniform %s", name)
	}
	return loc, nil
}

// UniformBlockIndex looks up a uniform block and fails when it is missing.
func UniformBlockIndex(program uint32, name string) (uint32, error) {
	idx := gl.GetUniformBlockIndex(program, gl.Str(name+"\x00"))
	if idx == gl.INVALID_INDEX {
		return 0, fmt.Errorf("cannot bind block uniform %s", name)
	}
	return idx, nil
}

func LoadImage(file string) (image.Image, error) {
	imgFile, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", file, err)
	}
	defer imgFile.Close()
	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", file, err)
	}
	return img, nil
}

type TextureOptions struct {
	WrapS, WrapT int32
	Filter       uint32
	Mipmap       bool
}

// NewTexture uploads a tightly packed RGBA image as a 2D texture.
func NewTexture(rgba *image.RGBA, opts TextureOptions) (uint32, error) {
	if rgba.Stride != rgba.Rect.Size().X*4 {
		return 0, fmt.Errorf("unsupported stride")
	}
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.WrapT)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix))
	if opts.Mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	setFilter(opts.Filter)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture, nil
}

// UpdateTexture replaces the whole image of an existing texture.
func UpdateTexture(texture uint32, rgba *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// MakeVao records a float position/normal/uv buffer and a uint16 index buffer.
func MakeVao(vbo, ibo uint32, attribs ...VertexAttrib) uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.Index)
		gl.VertexAttribPointer(a.Index, a.Size, gl.FLOAT, false, 0, gl.PtrOffset(a.Offset))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)

	// release vao before vbo and ibo
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return vao
}

type VertexAttrib struct {
	Index  uint32
	Size   int32
	Offset int
}

// NewBuffer allocates size bytes for target without data.
func NewBuffer(target uint32, size int, usage uint32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(target, buf)
	gl.BufferData(target, size, nil, usage)
	gl.BindBuffer(target, 0)
	return buf
}

func WriteFloats(target, buf uint32, offset int, data []float32) {
	gl.BindBuffer(target, buf)
	gl.BufferSubData(target, offset, len(data)*GL_FLOAT32_SIZE, gl.Ptr(data))
	gl.BindBuffer(target, 0)
}

func NewIndexBuffer(indices []uint16) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*GL_UINT16_SIZE, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return buf
}
