package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/imguidemo"
)

var mouseButtons = [imguidemo.MouseButtonCount]ebiten.MouseButton{
	imguidemo.MouseButtonLeft:   ebiten.MouseButtonLeft,
	imguidemo.MouseButtonRight:  ebiten.MouseButtonRight,
	imguidemo.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// InputCapture polls ebiten's input state into an imguidemo.Input.
// Call Capture once per Update.
type InputCapture struct {
	input *imguidemo.Input

	keys  []ebiten.Key
	chars []rune
}

// NewInputCapture creates a capture with an empty snapshot.
func NewInputCapture() *InputCapture {
	return &InputCapture{input: imguidemo.NewInput()}
}

// Input returns the snapshot filled by the last Capture.
func (c *InputCapture) Input() *imguidemo.Input {
	return c.input
}

// Capture starts a new snapshot from the current ebiten input state.
func (c *InputCapture) Capture() *imguidemo.Input {
	in := c.input
	in.Reset()

	x, y := ebiten.CursorPosition()
	in.SetMousePos(float32(x), float32(y))
	in.SetFocused(ebiten.IsFocused())

	for b, eb := range mouseButtons {
		in.SetMouseButton(imguidemo.MouseButton(b), ebiten.IsMouseButtonPressed(eb))
	}

	wx, wy := ebiten.Wheel()
	in.AddMouseWheel(float32(wx), float32(wy))

	c.keys = inpututil.AppendJustPressedKeys(c.keys[:0])
	for _, k := range c.keys {
		in.PressKey(int(k))
	}
	c.keys = inpututil.AppendJustReleasedKeys(c.keys[:0])
	for _, k := range c.keys {
		in.ReleaseKey(int(k))
	}

	c.chars = ebiten.AppendInputChars(c.chars[:0])
	for _, ch := range c.chars {
		in.AddInputChar(ch)
	}

	return in
}

// Keymap returns the key mapping for ebiten key codes.
func Keymap() imguidemo.Keymap {
	km := imguidemo.Keymap{
		LeftCtrl:   int(ebiten.KeyControlLeft),
		RightCtrl:  int(ebiten.KeyControlRight),
		LeftShift:  int(ebiten.KeyShiftLeft),
		RightShift: int(ebiten.KeyShiftRight),
		LeftAlt:    int(ebiten.KeyAltLeft),
		RightAlt:   int(ebiten.KeyAltRight),
		LeftSuper:  int(ebiten.KeyMetaLeft),
		RightSuper: int(ebiten.KeyMetaRight),
	}
	km.Keys[imguidemo.KeyTab] = int(ebiten.KeyTab)
	km.Keys[imguidemo.KeyLeft] = int(ebiten.KeyArrowLeft)
	km.Keys[imguidemo.KeyRight] = int(ebiten.KeyArrowRight)
	km.Keys[imguidemo.KeyUp] = int(ebiten.KeyArrowUp)
	km.Keys[imguidemo.KeyDown] = int(ebiten.KeyArrowDown)
	km.Keys[imguidemo.KeyPageUp] = int(ebiten.KeyPageUp)
	km.Keys[imguidemo.KeyPageDown] = int(ebiten.KeyPageDown)
	km.Keys[imguidemo.KeyHome] = int(ebiten.KeyHome)
	km.Keys[imguidemo.KeyEnd] = int(ebiten.KeyEnd)
	km.Keys[imguidemo.KeyInsert] = int(ebiten.KeyInsert)
	km.Keys[imguidemo.KeyDelete] = int(ebiten.KeyDelete)
	km.Keys[imguidemo.KeyBackspace] = int(ebiten.KeyBackspace)
	km.Keys[imguidemo.KeySpace] = int(ebiten.KeySpace)
	km.Keys[imguidemo.KeyEnter] = int(ebiten.KeyEnter)
	km.Keys[imguidemo.KeyEscape] = int(ebiten.KeyEscape)
	km.Keys[imguidemo.KeyA] = int(ebiten.KeyA)
	km.Keys[imguidemo.KeyC] = int(ebiten.KeyC)
	km.Keys[imguidemo.KeyV] = int(ebiten.KeyV)
	km.Keys[imguidemo.KeyX] = int(ebiten.KeyX)
	km.Keys[imguidemo.KeyY] = int(ebiten.KeyY)
	km.Keys[imguidemo.KeyZ] = int(ebiten.KeyZ)
	return km
}
