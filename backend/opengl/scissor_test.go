package opengl

import (
	"math"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
)

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name       string
		clip       imgui.Vec4
		x, y, w, h int32
		ok         bool
	}{
		{"inside", imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70}, 10, 530, 100, 50, true},
		{"full", imgui.Vec4{X: 0, Y: 0, Z: 800, W: 600}, 0, 0, 800, 600, true},
		{"clamped", imgui.Vec4{X: -50, Y: -50, Z: 900, W: 700}, 0, 0, 800, 600, true},
		{"empty", imgui.Vec4{X: 10, Y: 10, Z: 10, W: 50}, 0, 0, 0, 0, false},
		{"inverted", imgui.Vec4{X: 100, Y: 100, Z: 50, W: 50}, 0, 0, 0, 0, false},
		{"offscreen", imgui.Vec4{X: 900, Y: 0, Z: 1000, W: 100}, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorRect(tt.clip, 800, 600)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("got (%d, %d, %d, %d), want (%d, %d, %d, %d)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestOrthoMatrix(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)

	// Top-left maps to (-1, 1), bottom-right to (1, -1).
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}
	near := func(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }
	if cx, cy := apply(0, 0); !near(cx, -1) || !near(cy, 1) {
		t.Errorf("Expected (-1, 1) for origin, got (%f, %f)", cx, cy)
	}
	if cx, cy := apply(800, 600); !near(cx, 1) || !near(cy, -1) {
		t.Errorf("Expected (1, -1) for corner, got (%f, %f)", cx, cy)
	}
}

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	flipRows(pix, 2, 3)

	want := []byte{3, 3, 2, 2, 1, 1}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, pix)
		}
	}
}
