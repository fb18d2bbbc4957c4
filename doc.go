/*
Package imguidemo drives Dear ImGui demo windows from two host frameworks:
a graphics-device host (GLFW window + OpenGL) and a game-engine host (ebiten).

# Overview

Dear ImGui is an immediate-mode GUI: the whole UI is declared again every
frame, and widgets report interaction results through their return values.
This package holds the host-neutral part of the demo:

  - Input: a per-frame snapshot of mouse, keyboard and window events
  - Keymap: the binding between Dear ImGui's keys and host key codes
  - Context: the Dear ImGui context with fonts, theme and clipboard set up
  - Demo and State: the widget declaration and its local state
  - Clock and FrameHistory: frame timing for Dear ImGui and the plots
  - PreviewImage: the procedural texture shown on the Texture tab

The renderer bridges live in backend/opengl and backend/ebitengine. Each one
turns Dear ImGui's draw data into draw calls for its host and fills an Input
from the host's events.

# Quick Start

	logger := slog.Default()
	platform, _ := opengl.NewPlatform(opengl.PlatformConfig{Width: 1280, Height: 720, Title: "demo"}, logger)
	defer platform.Dispose()

	ctx, _ := imguidemo.NewContext(opengl.GLFWKeymap(),
	    imguidemo.WithTheme(imguidemo.ThemeGTA),
	    imguidemo.WithClipboard(platform.Clipboard()),
	    imguidemo.WithLogger(logger))
	defer ctx.Destroy()

	renderer, _ := opengl.NewRenderer(ctx.IO())
	defer renderer.Dispose()

	demo := imguidemo.New(imguidemo.WithHost("GLFW / OpenGL"))
	clock := imguidemo.NewClock()

	for !platform.ShouldStop() {
	    platform.ProcessEvents()
	    drawData := demo.Frame(ctx, platform.Input(), platform.DisplaySize(), clock.Tick())
	    renderer.PreRender(demo.State().ClearColor)
	    renderer.Render(platform.DisplaySize(), platform.FramebufferSize(), drawData)
	    platform.PostRender()
	}

# Frame Order

Every frame runs the same sequence regardless of host:

	1. the host collects events into an Input
	2. Demo.Frame applies display size, delta time and the Input to Dear ImGui
	3. imgui.NewFrame, the widget declaration, imgui.Render
	4. the host's bridge draws imgui.RenderedDrawData onto its target

# Keyboard Shortcuts Reference

Dear ImGui handles text editing and navigation itself once the Keymap is
bound:

	Tab              Move focus to the next widget
	Left/Right       Move the text cursor
	Home/End         Jump to start/end of text
	Ctrl+A           Select all text
	Ctrl+C/X/V       Copy, cut and paste through the host clipboard
	Ctrl+Z/Y         Undo and redo
	Enter            Confirm input
	Escape           Cancel input; quits when nothing is being edited
*/
package imguidemo
