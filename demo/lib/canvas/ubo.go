package canvas

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const SIZE_OF_MAT4 = 16 * GL_FLOAT32_SIZE

// UniformBuffer is a uniform block buffer attached to a fixed binding point.
type UniformBuffer struct {
	id      uint32
	binding uint32
	size    int
}

func NewUniformBuffer(binding uint32, size int) *UniformBuffer {
	return &UniformBuffer{
		id:      NewBuffer(gl.UNIFORM_BUFFER, size, gl.STREAM_DRAW),
		binding: binding,
		size:    size,
	}
}

func (u *UniformBuffer) Write(offset int, data []float32) {
	WriteFloats(gl.UNIFORM_BUFFER, u.id, offset, data)
}

func (u *UniformBuffer) WriteMat4(offset int, m mgl32.Mat4) {
	u.Write(offset, m[:])
}

// Bind connects a program's block to this buffer's binding point.
func (u *UniformBuffer) Bind(program, blockIndex uint32) {
	gl.UniformBlockBinding(program, blockIndex, u.binding)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, u.binding, u.id)
}

func (u *UniformBuffer) Delete() {
	gl.DeleteBuffers(1, &u.id)
}
