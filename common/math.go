package common

import (
	"cmp"

	"github.com/go-gl/mathgl/mgl32"
)

// / Returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// / Clamps the value to the specified range.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// NormalMatrix is the inverse transpose of the upper 3x3 of m, widened back to 4x4.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat4 {
	n := mgl32.Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}.Inv().Transpose()
	return mgl32.Mat4{
		n[0], n[1], n[2], 0,
		n[3], n[4], n[5], 0,
		n[6], n[7], n[8], 0,
		0, 0, 0, 1,
	}
}
