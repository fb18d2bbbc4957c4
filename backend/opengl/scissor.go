package opengl

import "github.com/inkyblackness/imgui-go/v4"

// scissorRect converts a Dear ImGui clip rectangle (min x, min y, max x,
// max y in framebuffer pixels, origin top-left) into a GL scissor box
// (origin bottom-left), clamped to the framebuffer. ok is false when
// nothing of the rectangle is visible.
func scissorRect(clip imgui.Vec4, fbW, fbH float32) (x, y, w, h int32, ok bool) {
	minX := max(clip.X, 0)
	minY := max(clip.Y, 0)
	maxX := min(clip.Z, fbW)
	maxY := min(clip.W, fbH)
	if maxX <= minX || maxY <= minY {
		return 0, 0, 0, 0, false
	}

	return int32(minX), int32(fbH - maxY), int32(maxX - minX), int32(maxY - minY), true
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
