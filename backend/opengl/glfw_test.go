package opengl

import (
	"errors"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imguidemo"
)

func TestGLFWKeymap_Valid(t *testing.T) {
	km := GLFWKeymap()
	if err := km.Validate(); err != nil {
		t.Fatalf("GLFW keymap invalid: %v", err)
	}
	if km.Keys[imguidemo.KeyEnter] != int(glfw.KeyEnter) {
		t.Errorf("Expected Enter mapped to %d, got %d", glfw.KeyEnter, km.Keys[imguidemo.KeyEnter])
	}
}

func TestGLFWMouseButtonToGUI(t *testing.T) {
	tests := []struct {
		in   glfw.MouseButton
		want imguidemo.MouseButton
	}{
		{glfw.MouseButtonLeft, imguidemo.MouseButtonLeft},
		{glfw.MouseButtonRight, imguidemo.MouseButtonRight},
		{glfw.MouseButtonMiddle, imguidemo.MouseButtonMiddle},
		{glfw.MouseButton4, -1},
	}
	for _, tt := range tests {
		if got := glfwMouseButtonToGUI(tt.in); got != tt.want {
			t.Errorf("glfwMouseButtonToGUI(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewPlatform_InvalidSize(t *testing.T) {
	_, err := NewPlatform(PlatformConfig{Width: 0, Height: 600}, nil)
	if !errors.Is(err, imguidemo.ErrInvalidWindowSize) {
		t.Errorf("Expected ErrInvalidWindowSize, got %v", err)
	}
}
