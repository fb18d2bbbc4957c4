package imguidemo

import (
	"errors"
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
)

// MaxKeyCode is the size of Dear ImGui's key-down table.
// Host key codes must be below it.
const MaxKeyCode = 512

// Key is a navigation or editing key that Dear ImGui needs mapped to a
// host key code.
type Key int

const (
	KeyTab Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// imguiKeys maps each Key to Dear ImGui's key index.
var imguiKeys = [KeyCount]int{
	KeyTab:       imgui.KeyTab,
	KeyLeft:      imgui.KeyLeftArrow,
	KeyRight:     imgui.KeyRightArrow,
	KeyUp:        imgui.KeyUpArrow,
	KeyDown:      imgui.KeyDownArrow,
	KeyPageUp:    imgui.KeyPageUp,
	KeyPageDown:  imgui.KeyPageDown,
	KeyHome:      imgui.KeyHome,
	KeyEnd:       imgui.KeyEnd,
	KeyInsert:    imgui.KeyInsert,
	KeyDelete:    imgui.KeyDelete,
	KeyBackspace: imgui.KeyBackspace,
	KeySpace:     imgui.KeySpace,
	KeyEnter:     imgui.KeyEnter,
	KeyEscape:    imgui.KeyEscape,
	KeyA:         imgui.KeyA,
	KeyC:         imgui.KeyC,
	KeyV:         imgui.KeyV,
	KeyX:         imgui.KeyX,
	KeyY:         imgui.KeyY,
	KeyZ:         imgui.KeyZ,
}

var keyNames = [KeyCount]string{
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyV:         "V",
	KeyX:         "X",
	KeyY:         "Y",
	KeyZ:         "Z",
}

// String returns a human-readable name for a key.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// Keymap binds Dear ImGui's keys and the modifier keys to host key codes.
type Keymap struct {
	Keys [KeyCount]int

	LeftCtrl, RightCtrl   int
	LeftShift, RightShift int
	LeftAlt, RightAlt     int
	LeftSuper, RightSuper int
}

// Validate reports every code that falls outside Dear ImGui's key table.
func (km Keymap) Validate() error {
	var errs []error
	for k := Key(0); k < KeyCount; k++ {
		if !validKeyCode(km.Keys[k]) {
			errs = append(errs, fmt.Errorf("key %s: code %d out of range [0,%d)", k, km.Keys[k], MaxKeyCode))
		}
	}

	mods := []struct {
		name string
		code int
	}{
		{"left ctrl", km.LeftCtrl}, {"right ctrl", km.RightCtrl},
		{"left shift", km.LeftShift}, {"right shift", km.RightShift},
		{"left alt", km.LeftAlt}, {"right alt", km.RightAlt},
		{"left super", km.LeftSuper}, {"right super", km.RightSuper},
	}
	for _, m := range mods {
		if !validKeyCode(m.code) {
			errs = append(errs, fmt.Errorf("modifier %s: code %d out of range [0,%d)", m.name, m.code, MaxKeyCode))
		}
	}
	return errors.Join(errs...)
}

// Bind installs the mapping into io.
func (km Keymap) Bind(io imgui.IO) {
	for k := Key(0); k < KeyCount; k++ {
		io.KeyMap(imguiKeys[k], km.Keys[k])
	}
}

func validKeyCode(code int) bool {
	return code >= 0 && code < MaxKeyCode
}
