// Example runs the Dear ImGui demo on a GLFW window with an OpenGL 4.1
// device. The program owns the frame loop.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/glfw/    # run this example
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/imguidemo"
	"github.com/go-theft-auto/imguidemo/backend/opengl"
	"github.com/go-theft-auto/imguidemo/internal/config"
	"github.com/go-theft-auto/imguidemo/internal/logging"
)

const (
	windowTitle = "imgui demo (GLFW / OpenGL)"
	previewSize = 128
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var flags config.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(flags config.Flags) error {
	cfg, err := config.Load(flags.ConfigPath, windowTitle)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	logger.Info("starting", "host", "glfw", "width", cfg.Window.Width, "height", cfg.Window.Height, "theme", cfg.UI.Theme)

	platform, err := opengl.NewPlatform(opengl.PlatformConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		VSync:     cfg.Window.VSync,
		Resizable: cfg.Window.Resizable,
	}, logger)
	if err != nil {
		return err
	}
	defer platform.Dispose()

	ctx, err := imguidemo.NewContext(opengl.GLFWKeymap(),
		imguidemo.WithTheme(cfg.Theme()),
		imguidemo.WithIniFile(cfg.UI.IniFile),
		imguidemo.WithFont(cfg.UI.FontPath, cfg.UI.FontSize),
		imguidemo.WithClipboard(platform.Clipboard()),
		imguidemo.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("gui context: %w", err)
	}
	defer ctx.Destroy()

	renderer, err := opengl.NewRenderer(ctx.IO())
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Dispose()

	demo := imguidemo.New(
		imguidemo.WithHost("GLFW / OpenGL 4.1"),
		imguidemo.WithClearColor(cfg.ClearColor()),
		imguidemo.WithDemoWindow(cfg.UI.ShowDemoWindow),
	)

	preview, err := renderer.UploadTexture(imguidemo.PreviewImage(previewSize, previewSize))
	if err != nil {
		return fmt.Errorf("preview texture: %w", err)
	}
	demo.SetPreviewTexture(preview, previewSize, previewSize)

	clock := imguidemo.NewClock()

	// Main loop.
	for !platform.ShouldStop() {
		platform.ProcessEvents()

		displaySize := platform.DisplaySize()
		drawData := demo.Frame(ctx, platform.Input(), displaySize, clock.Tick())
		platform.UpdateCursor()

		renderer.PreRender(demo.State().ClearColor)
		renderer.Render(displaySize, platform.FramebufferSize(), drawData)
		platform.PostRender()

		if demo.State().QuitRequested() {
			platform.RequestStop()
		}
	}

	logger.Info("stopped", "frames", demo.Frames())
	return nil
}
