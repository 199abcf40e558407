package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveLH returns a left-handed perspective projection mapping view
// depth [near, far] to clip z/w in [0, 1]. fovY is in radians.
// Column-major layout:
//
//	[w 0 0  0      ]
//	[0 h 0  0      ]
//	[0 0 r  -r*near]
//	[0 0 1  0      ]
//
// with h = cot(fovY/2), w = h/aspect, r = far/(far-near).
func PerspectiveLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	h := float32(1.0 / gomath.Tan(float64(fovY)/2.0))
	w := h / aspect
	r := far / (far - near)

	return mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, 1,
		0, 0, -r * near, 0,
	}
}

// OrthoOffCenterLH returns a left-handed orthographic projection of the box
// [left, right] x [bottom, top] x [near, far], with clip z in [0, 1].
func OrthoOffCenterLH(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return mgl32.Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, fn, 0,
		-(left + right) * rl, -(top + bottom) * tb, -near * fn, 1,
	}
}
