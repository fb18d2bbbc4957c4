package imguidemo

import (
	"math"

	"github.com/inkyblackness/imgui-go/v4"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Input is a per-frame snapshot of mouse, keyboard and window events.
// Hosts fill it from their own event sources and the demo hands it to
// Dear ImGui once per frame.
type Input struct {
	// Mouse position in display coordinates.
	MouseX, MouseY float32

	// Focused reports whether the host window has input focus.
	// An unfocused window hides the mouse from the GUI.
	Focused bool

	// Mouse buttons. pressed latches a press until the next Apply so that
	// a click shorter than one frame still reaches the GUI.
	mouseDown    [MouseButtonCount]bool
	mousePressed [MouseButtonCount]bool

	// Wheel deltas accumulated since the last Reset.
	WheelX, WheelY float32

	// Host key codes pressed and released this frame.
	pressed  []int
	released []int

	// Text input (Unicode characters typed this frame)
	Chars []rune
}

// NewInput creates an empty, focused input snapshot.
func NewInput() *Input {
	return &Input{
		Focused:  true,
		pressed:  make([]int, 0, 8),
		released: make([]int, 0, 8),
		Chars:    make([]rune, 0, 16),
	}
}

// Reset clears per-frame events.
// Held buttons and the mouse position survive; wheel, keys and chars do not.
func (in *Input) Reset() {
	in.pressed = in.pressed[:0]
	in.released = in.released[:0]
	in.Chars = in.Chars[:0]
	in.WheelX = 0
	in.WheelY = 0
}

// SetMousePos sets the mouse position.
func (in *Input) SetMousePos(x, y float32) {
	in.MouseX = x
	in.MouseY = y
}

// SetFocused records whether the window has focus.
func (in *Input) SetFocused(focused bool) {
	in.Focused = focused
}

// SetMouseButton sets mouse button state.
func (in *Input) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	if down && !in.mouseDown[button] {
		in.mousePressed[button] = true
	}
	in.mouseDown[button] = down
}

// MouseDown returns true if a mouse button is held or was pressed since the
// last Apply.
func (in *Input) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return in.mouseDown[button] || in.mousePressed[button]
}

// AddMouseWheel accumulates a wheel delta.
func (in *Input) AddMouseWheel(x, y float32) {
	in.WheelX += x
	in.WheelY += y
}

// PressKey records a key press by host key code.
func (in *Input) PressKey(code int) {
	in.pressed = append(in.pressed, code)
}

// ReleaseKey records a key release by host key code.
func (in *Input) ReleaseKey(code int) {
	in.released = append(in.released, code)
}

// Pressed returns the host key codes pressed this frame.
func (in *Input) Pressed() []int {
	return in.pressed
}

// Released returns the host key codes released this frame.
func (in *Input) Released() []int {
	return in.released
}

// AddInputChar adds a typed character.
func (in *Input) AddInputChar(ch rune) {
	in.Chars = append(in.Chars, ch)
}

// Apply writes the snapshot into io. Modifier state is derived from the
// keymap's modifier codes, so hosts must report modifier keys like any other.
func (in *Input) Apply(io imgui.IO, km Keymap) {
	if in.Focused {
		io.SetMousePosition(imgui.Vec2{X: in.MouseX, Y: in.MouseY})
	} else {
		io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for b := MouseButtonLeft; b < MouseButtonCount; b++ {
		io.SetMouseButtonDown(int(b), in.mouseDown[b] || in.mousePressed[b])
		in.mousePressed[b] = false
	}

	if in.WheelX != 0 || in.WheelY != 0 {
		io.AddMouseWheelDelta(in.WheelX, in.WheelY)
	}

	for _, code := range in.pressed {
		if validKeyCode(code) {
			io.KeyPress(code)
		}
	}
	for _, code := range in.released {
		if validKeyCode(code) {
			io.KeyRelease(code)
		}
	}

	io.KeyCtrl(km.LeftCtrl, km.RightCtrl)
	io.KeyShift(km.LeftShift, km.RightShift)
	io.KeyAlt(km.LeftAlt, km.RightAlt)
	io.KeySuper(km.LeftSuper, km.RightSuper)

	if len(in.Chars) > 0 {
		io.AddInputCharacters(string(in.Chars))
	}
}
