// Command gen renders the demo once per theme in a hidden window, captures
// the framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/imguidemo"
	"github.com/go-theft-auto/imguidemo/backend/opengl"
)

const previewSize = 128

func init() {
	runtime.LockOSThread()
}

func main() {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture of the demo.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	theme  imguidemo.Theme
	state  func(s *imguidemo.State) // adjusts the state before rendering
	frames int                      // frames to render (0 = default 3)
}

func run(outDir string) error {
	// The hidden window is larger than every screenshot so the framebuffer
	// never has to be resized between captures.
	platform, err := opengl.NewPlatform(opengl.PlatformConfig{
		Width:  1024,
		Height: 768,
		Title:  "screenshot-gen",
		Hidden: true,
	}, slog.Default())
	if err != nil {
		return err
	}
	defer platform.Dispose()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	// Fresh context per screenshot so window positions and theme do not leak.
	ctx, err := imguidemo.NewContext(opengl.GLFWKeymap(),
		imguidemo.WithTheme(s.theme),
		imguidemo.WithIniFile(""),
	)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	renderer, err := opengl.NewRenderer(ctx.IO())
	if err != nil {
		return err
	}
	defer renderer.Dispose()

	demo := imguidemo.New(imguidemo.WithHost("screenshot-gen"))
	if s.state != nil {
		s.state(demo.State())
	}
	preview, err := renderer.UploadTexture(imguidemo.PreviewImage(previewSize, previewSize))
	if err != nil {
		return err
	}
	demo.SetPreviewTexture(preview, previewSize, previewSize)

	frames := 3
	if s.frames > 0 {
		frames = s.frames
	}

	size := [2]float32{float32(s.width), float32(s.height)}
	in := imguidemo.NewInput()
	for i := 0; i < frames; i++ {
		in.Reset()
		drawData := demo.Frame(ctx, in, size, imguidemo.NominalFrameTime)
		renderer.PreRender(demo.State().ClearColor)
		renderer.Render(size, size, drawData)
	}

	img := opengl.Capture(s.width, s.height)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns every screenshot to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "theme_dark", width: 640, height: 560, theme: imguidemo.ThemeDark},
		{name: "theme_light", width: 640, height: 560, theme: imguidemo.ThemeLight},
		{name: "theme_classic", width: 640, height: 560, theme: imguidemo.ThemeClassic},
		{name: "theme_gta", width: 640, height: 560, theme: imguidemo.ThemeGTA},
		{
			name: "widgets_disabled", width: 640, height: 560, theme: imguidemo.ThemeDark,
			state: func(s *imguidemo.State) {
				s.Enabled = false
				s.Progress = 0.65
			},
		},
		{
			name: "another_window", width: 1000, height: 700, theme: imguidemo.ThemeGTA,
			state: func(s *imguidemo.State) {
				s.ShowAnotherWindow = true
				s.Counter = 7
			},
		},
		{
			name: "demo_window", width: 1000, height: 760, theme: imguidemo.ThemeDark, frames: 4,
			state: func(s *imguidemo.State) {
				s.ShowDemoWindow = true
			},
		},
	}
}
