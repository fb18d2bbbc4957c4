package opengl

import "github.com/go-gl/glfw/v3.3/glfw"

// Clipboard implements imgui.Clipboard with the GLFW window clipboard.
type Clipboard struct {
	window *glfw.Window
}

// Text retrieves text from the system clipboard.
func (c Clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

// SetText copies text to the system clipboard.
func (c Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
