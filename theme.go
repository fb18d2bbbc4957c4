package imguidemo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// ErrUnknownTheme is returned by ParseTheme for names it does not know.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme selects a colour preset.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
	ThemeClassic
	ThemeGTA
)

var themeNames = map[Theme]string{
	ThemeDark:    "dark",
	ThemeLight:   "light",
	ThemeClassic: "classic",
	ThemeGTA:     "gta",
}

// String returns the theme's config name.
func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// ParseTheme resolves a config name, case-insensitively.
func ParseTheme(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range themeNames {
		if n == name {
			return t, nil
		}
	}
	return ThemeDark, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Common colors
var (
	ColorWhite  = RGBA(255, 255, 255, 255)
	ColorBlack  = RGBA(0, 0, 0, 255)
	ColorYellow = RGBA(255, 200, 0, 255) // GTA yellow
	ColorCyan   = RGBA(0, 150, 200, 255)
)

// RGBA packs a colour the way Dear ImGui's IM_COL32 does.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// ColorVec4 unpacks an RGBA-packed colour into normalized components.
func ColorVec4(c uint32) imgui.Vec4 {
	return imgui.Vec4{
		X: float32(c&0xFF) / 255,
		Y: float32((c>>8)&0xFF) / 255,
		Z: float32((c>>16)&0xFF) / 255,
		W: float32((c>>24)&0xFF) / 255,
	}
}

// gtaPalette overrides Dear ImGui's dark preset: dark semi-transparent
// panels, cyan accents and yellow highlight text.
var gtaPalette = []struct {
	id    imgui.StyleColorID
	color uint32
}{
	{imgui.StyleColorText, ColorWhite},
	{imgui.StyleColorTextDisabled, RGBA(128, 128, 128, 255)},
	{imgui.StyleColorWindowBg, RGBA(0, 0, 0, 220)},
	{imgui.StyleColorBorder, RGBA(100, 100, 100, 255)},
	{imgui.StyleColorTitleBg, RGBA(0, 40, 60, 255)},
	{imgui.StyleColorTitleBgActive, RGBA(0, 60, 90, 255)},
	{imgui.StyleColorMenuBarBg, RGBA(20, 20, 20, 255)},
	{imgui.StyleColorFrameBg, RGBA(20, 20, 20, 255)},
	{imgui.StyleColorFrameBgHovered, RGBA(30, 40, 50, 255)},
	{imgui.StyleColorFrameBgActive, RGBA(0, 100, 150, 255)},
	{imgui.StyleColorButton, RGBA(40, 40, 40, 255)},
	{imgui.StyleColorButtonHovered, RGBA(60, 80, 100, 255)},
	{imgui.StyleColorButtonActive, ColorCyan},
	{imgui.StyleColorHeader, RGBA(0, 80, 120, 255)},
	{imgui.StyleColorHeaderHovered, RGBA(50, 70, 90, 255)},
	{imgui.StyleColorHeaderActive, RGBA(0, 120, 180, 255)},
	{imgui.StyleColorCheckMark, ColorYellow},
	{imgui.StyleColorSliderGrab, RGBA(0, 100, 150, 255)},
	{imgui.StyleColorSliderGrabActive, ColorYellow},
	{imgui.StyleColorSeparator, RGBA(0, 150, 200, 128)},
	{imgui.StyleColorScrollbarBg, RGBA(20, 20, 20, 255)},
	{imgui.StyleColorScrollbarGrab, RGBA(0, 100, 150, 255)},
	{imgui.StyleColorTab, RGBA(40, 40, 40, 255)},
	{imgui.StyleColorTabHovered, RGBA(60, 80, 100, 255)},
	{imgui.StyleColorTabActive, RGBA(0, 120, 180, 255)},
	{imgui.StyleColorPlotLines, ColorCyan},
	{imgui.StyleColorPlotHistogram, ColorYellow},
}

// Apply installs the theme into the current Dear ImGui context.
func (t Theme) Apply() {
	switch t {
	case ThemeLight:
		imgui.StyleColorsLight()
	case ThemeClassic:
		imgui.StyleColorsClassic()
	case ThemeGTA:
		imgui.StyleColorsDark()
		style := imgui.CurrentStyle()
		for _, c := range gtaPalette {
			style.SetColor(c.id, ColorVec4(c.color))
		}
	default:
		imgui.StyleColorsDark()
	}
}
