package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imguidemo"
)

// PlatformConfig describes the window to open.
type PlatformConfig struct {
	Width, Height int
	Title         string
	VSync         bool
	Resizable     bool
	// Hidden opens the window without showing it, for offscreen capture.
	Hidden bool
}

// Platform owns the GLFW window and translates its events into an
// imguidemo.Input snapshot.
type Platform struct {
	window *glfw.Window
	input  *imguidemo.Input
	logger *slog.Logger

	cursors       map[imgui.MouseCursorID]*glfw.Cursor
	currentCursor imgui.MouseCursorID
}

// NewPlatform initializes GLFW, opens a window with a current OpenGL 4.1
// core context and loads the GL function pointers.
// GLFW must run on the main thread.
func NewPlatform(cfg PlatformConfig, logger *slog.Logger) (*Platform, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d: %w", cfg.Width, cfg.Height, imguidemo.ErrInvalidWindowSize)
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(!cfg.Hidden))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	logger.Info("opengl ready",
		"glfw", glfw.GetVersionString(),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	p := &Platform{
		window:        window,
		input:         imguidemo.NewInput(),
		logger:        logger,
		cursors:       make(map[imgui.MouseCursorID]*glfw.Cursor),
		currentCursor: imgui.MouseCursorArrow,
	}
	p.SetVSync(cfg.VSync)
	p.installCallbacks()
	p.createCursors()

	return p, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (p *Platform) installCallbacks() {
	p.window.SetKeyCallback(p.keyCallback)
	p.window.SetCharCallback(p.charCallback)
	p.window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.window.SetScrollCallback(p.scrollCallback)
	p.window.SetCursorPosCallback(p.cursorPosCallback)
	p.window.SetFocusCallback(p.focusCallback)
}

func (p *Platform) createCursors() {
	p.cursors[imgui.MouseCursorArrow] = glfw.CreateStandardCursor(glfw.ArrowCursor)
	p.cursors[imgui.MouseCursorTextInput] = glfw.CreateStandardCursor(glfw.IBeamCursor)
	p.cursors[imgui.MouseCursorResizeNS] = glfw.CreateStandardCursor(glfw.VResizeCursor)
	p.cursors[imgui.MouseCursorResizeEW] = glfw.CreateStandardCursor(glfw.HResizeCursor)
	p.cursors[imgui.MouseCursorHand] = glfw.CreateStandardCursor(glfw.HandCursor)
}

// ProcessEvents starts a new input snapshot and polls window events into it.
func (p *Platform) ProcessEvents() {
	p.input.Reset()
	glfw.PollEvents()

	x, y := p.window.GetCursorPos()
	p.input.SetMousePos(float32(x), float32(y))
	p.input.SetFocused(p.window.GetAttrib(glfw.Focused) != 0)
}

// Input returns the current input snapshot.
func (p *Platform) Input() *imguidemo.Input {
	return p.input
}

// UpdateCursor shows the OS cursor Dear ImGui asks for.
// Call it after the frame has been declared.
func (p *Platform) UpdateCursor() {
	cursor := imgui.MouseCursor()
	if cursor == imgui.MouseCursorNone {
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	p.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	if cursor == p.currentCursor {
		return
	}
	c, ok := p.cursors[cursor]
	if !ok {
		c = p.cursors[imgui.MouseCursorArrow]
	}
	p.window.SetCursor(c)
	p.currentCursor = cursor
}

// ShouldStop returns true if the window is to be closed.
func (p *Platform) ShouldStop() bool {
	return p.window.ShouldClose()
}

// RequestStop asks the window to close at the end of the frame.
func (p *Platform) RequestStop() {
	p.window.SetShouldClose(true)
}

// DisplaySize returns the window size in screen coordinates.
func (p *Platform) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the framebuffer size in pixels.
func (p *Platform) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// SetVSync toggles waiting for vertical sync on swap.
func (p *Platform) SetVSync(enabled bool) {
	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// Clipboard returns the window's clipboard for Dear ImGui.
func (p *Platform) Clipboard() imgui.Clipboard {
	return Clipboard{window: p.window}
}

// PostRender performs the buffer swap.
func (p *Platform) PostRender() {
	p.window.SwapBuffers()
}

// Dispose destroys the window and terminates GLFW.
func (p *Platform) Dispose() {
	for _, c := range p.cursors {
		c.Destroy()
	}
	p.window.Destroy()
	glfw.Terminate()
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyUnknown {
		return
	}

	switch action {
	case glfw.Press:
		p.input.PressKey(int(key))
	case glfw.Release:
		p.input.ReleaseKey(int(key))
	}
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	p.input.AddInputChar(char)
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		p.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		p.input.SetMouseButton(guiButton, false)
	}
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.input.AddMouseWheel(float32(xoff), float32(yoff))
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.input.SetMousePos(float32(xpos), float32(ypos))
}

func (p *Platform) focusCallback(w *glfw.Window, focused bool) {
	p.input.SetFocused(focused)
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) imguidemo.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imguidemo.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imguidemo.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imguidemo.MouseButtonMiddle
	default:
		return -1
	}
}

// GLFWKeymap returns the key mapping for GLFW key codes.
func GLFWKeymap() imguidemo.Keymap {
	km := imguidemo.Keymap{
		LeftCtrl:   int(glfw.KeyLeftControl),
		RightCtrl:  int(glfw.KeyRightControl),
		LeftShift:  int(glfw.KeyLeftShift),
		RightShift: int(glfw.KeyRightShift),
		LeftAlt:    int(glfw.KeyLeftAlt),
		RightAlt:   int(glfw.KeyRightAlt),
		LeftSuper:  int(glfw.KeyLeftSuper),
		RightSuper: int(glfw.KeyRightSuper),
	}
	km.Keys[imguidemo.KeyTab] = int(glfw.KeyTab)
	km.Keys[imguidemo.KeyLeft] = int(glfw.KeyLeft)
	km.Keys[imguidemo.KeyRight] = int(glfw.KeyRight)
	km.Keys[imguidemo.KeyUp] = int(glfw.KeyUp)
	km.Keys[imguidemo.KeyDown] = int(glfw.KeyDown)
	km.Keys[imguidemo.KeyPageUp] = int(glfw.KeyPageUp)
	km.Keys[imguidemo.KeyPageDown] = int(glfw.KeyPageDown)
	km.Keys[imguidemo.KeyHome] = int(glfw.KeyHome)
	km.Keys[imguidemo.KeyEnd] = int(glfw.KeyEnd)
	km.Keys[imguidemo.KeyInsert] = int(glfw.KeyInsert)
	km.Keys[imguidemo.KeyDelete] = int(glfw.KeyDelete)
	km.Keys[imguidemo.KeyBackspace] = int(glfw.KeyBackspace)
	km.Keys[imguidemo.KeySpace] = int(glfw.KeySpace)
	km.Keys[imguidemo.KeyEnter] = int(glfw.KeyEnter)
	km.Keys[imguidemo.KeyEscape] = int(glfw.KeyEscape)
	km.Keys[imguidemo.KeyA] = int(glfw.KeyA)
	km.Keys[imguidemo.KeyC] = int(glfw.KeyC)
	km.Keys[imguidemo.KeyV] = int(glfw.KeyV)
	km.Keys[imguidemo.KeyX] = int(glfw.KeyX)
	km.Keys[imguidemo.KeyY] = int(glfw.KeyY)
	km.Keys[imguidemo.KeyZ] = int(glfw.KeyZ)
	return km
}
