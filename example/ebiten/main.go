// Example runs the Dear ImGui demo inside an ebiten game. ebiten owns the
// frame loop and calls Update, Draw and Layout.
//
//	go run ./example/ebiten/
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/imguidemo"
	"github.com/go-theft-auto/imguidemo/backend/ebitengine"
	"github.com/go-theft-auto/imguidemo/internal/config"
	"github.com/go-theft-auto/imguidemo/internal/logging"
)

const (
	windowTitle = "imgui demo (ebiten)"
	previewSize = 128
)

// Game adapts the demo to the ebiten.Game interface.
type Game struct {
	ctx      *imguidemo.Context
	demo     *imguidemo.Demo
	renderer *ebitengine.Renderer
	input    *ebitengine.InputCapture
	clock    *imguidemo.Clock
	logger   *slog.Logger

	displaySize [2]float32
	drawData    imgui.DrawData
}

// Update captures input and declares the GUI frame.
func (g *Game) Update() error {
	in := g.input.Capture()
	g.drawData = g.demo.Frame(g.ctx, in, g.displaySize, g.clock.Tick())

	if g.demo.State().QuitRequested() {
		g.logger.Info("quit requested", "frames", g.demo.Frames())
		return ebiten.Termination
	}
	return nil
}

// Draw clears the screen and renders the last declared frame.
func (g *Game) Draw(screen *ebiten.Image) {
	c := g.demo.State().ClearColor
	screen.Fill(color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 255,
	})
	if g.demo.Frames() == 0 {
		return
	}
	g.renderer.Draw(screen, g.drawData)
}

// Layout uses the window size as the screen size so GUI coordinates are
// window coordinates.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.displaySize = [2]float32{float32(outsideWidth), float32(outsideHeight)}
	return outsideWidth, outsideHeight
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
	logger.Info("starting", "host", "ebiten", "width", cfg.Window.Width, "height", cfg.Window.Height, "theme", cfg.UI.Theme)

	ctx, err := imguidemo.NewContext(ebitengine.Keymap(),
		imguidemo.WithTheme(cfg.Theme()),
		imguidemo.WithIniFile(cfg.UI.IniFile),
		imguidemo.WithFont(cfg.UI.FontPath, cfg.UI.FontSize),
		imguidemo.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("gui context: %w", err)
	}
	defer ctx.Destroy()

	renderer, err := ebitengine.NewRenderer(ctx.IO())
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Dispose()

	demo := imguidemo.New(
		imguidemo.WithHost("ebiten"),
		imguidemo.WithClearColor(cfg.ClearColor()),
		imguidemo.WithDemoWindow(cfg.UI.ShowDemoWindow),
	)
	preview := renderer.AddTexture(imguidemo.PreviewImage(previewSize, previewSize))
	demo.SetPreviewTexture(preview, previewSize, previewSize)

	game := &Game{
		ctx:         ctx,
		demo:        demo,
		renderer:    renderer,
		input:       ebitengine.NewInputCapture(),
		clock:       imguidemo.NewClock(),
		logger:      logger,
		displaySize: [2]float32{float32(cfg.Window.Width), float32(cfg.Window.Height)},
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("stopped", "frames", demo.Frames())
	return nil
}
