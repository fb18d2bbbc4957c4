package imguidemo

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/inkyblackness/imgui-go/v4"
)

// Context owns the Dear ImGui context and the host key mapping.
type Context struct {
	imgui  *imgui.Context
	io     imgui.IO
	keymap Keymap
	theme  Theme
	logger *slog.Logger
}

// NewContext creates and configures a Dear ImGui context.
// Only one Context may exist at a time.
func NewContext(km Keymap, opts ...ContextOption) (*Context, error) {
	o := contextOptions{theme: ThemeDark}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := km.Validate(); err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}

	c := &Context{
		imgui:  imgui.CreateContext(nil),
		keymap: km,
		theme:  o.theme,
		logger: o.logger,
	}
	c.io = imgui.CurrentIO()
	c.io.SetIniFilename(o.iniFile)

	if err := c.loadFont(o.fontPath, o.fontSize); err != nil {
		c.imgui.Destroy()
		return nil, err
	}

	km.Bind(c.io)
	if o.clipboard != nil {
		c.io.SetClipboard(o.clipboard)
	}
	o.theme.Apply()

	c.logger.Debug("gui context ready", "theme", o.theme, "ini", o.iniFile, "font", o.fontPath)
	return c, nil
}

func (c *Context) loadFont(path string, size float32) error {
	fonts := c.io.Fonts()
	if path == "" {
		fonts.AddFontDefault()
		return nil
	}
	if size <= 0 {
		return fmt.Errorf("font %s: size %.1f must be positive", path, size)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	fonts.AddFontFromFileTTF(path, size)
	c.logger.Info("loaded font", "path", path, "size", size)
	return nil
}

// IO returns Dear ImGui's IO for this context.
func (c *Context) IO() imgui.IO {
	return c.io
}

// Keymap returns the host key mapping.
func (c *Context) Keymap() Keymap {
	return c.keymap
}

// Theme returns the applied theme.
func (c *Context) Theme() Theme {
	return c.theme
}

// Destroy releases the Dear ImGui context.
func (c *Context) Destroy() {
	if c.imgui != nil {
		c.imgui.Destroy()
		c.imgui = nil
	}
}
