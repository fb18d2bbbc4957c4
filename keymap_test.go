package imguidemo

import (
	"strings"
	"testing"
)

func testKeymap() Keymap {
	km := Keymap{
		LeftCtrl: 100, RightCtrl: 101,
		LeftShift: 102, RightShift: 103,
		LeftAlt: 104, RightAlt: 105,
		LeftSuper: 106, RightSuper: 107,
	}
	for k := Key(0); k < KeyCount; k++ {
		km.Keys[k] = 10 + int(k)
	}
	return km
}

func TestKeymap_Validate(t *testing.T) {
	if err := testKeymap().Validate(); err != nil {
		t.Fatalf("Expected valid keymap, got %v", err)
	}

	km := testKeymap()
	km.Keys[KeyEnter] = MaxKeyCode
	if err := km.Validate(); err == nil {
		t.Error("Expected error for key code at MaxKeyCode")
	}

	km = testKeymap()
	km.RightSuper = -1
	if err := km.Validate(); err == nil {
		t.Error("Expected error for negative modifier code")
	}
}

func TestKeymap_ValidateReportsEveryCode(t *testing.T) {
	km := testKeymap()
	km.Keys[KeyTab] = -5
	km.Keys[KeyZ] = MaxKeyCode + 1
	km.LeftAlt = MaxKeyCode

	err := km.Validate()
	if err == nil {
		t.Fatal("Expected error for invalid codes")
	}
	for _, want := range []string{"key Tab: code -5", "key Z: code 513", "modifier left alt: code 512"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %q, got %q", want, err)
		}
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyTab, "Tab"},
		{KeyEscape, "Esc"},
		{KeyZ, "Z"},
		{KeyCount, "?"},
		{-1, "?"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}

func TestKeymap_EveryKeyHasName(t *testing.T) {
	for k := Key(0); k < KeyCount; k++ {
		if keyNames[k] == "" {
			t.Errorf("Key %d has no name", int(k))
		}
	}
}
