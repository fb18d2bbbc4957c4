// Package config loads the demo programs' settings from defaults, an
// optional TOML file and IMGUIDEMO_ environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/go-theft-auto/imguidemo"
)

// EnvPrefix prefixes every environment override, e.g. IMGUIDEMO_WINDOW_WIDTH.
const EnvPrefix = "IMGUIDEMO"

// Config holds the program configuration.
type Config struct {
	Window WindowConfig
	UI     UIConfig
	Render RenderConfig
	Log    LogConfig
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	VSync     bool
	Resizable bool
}

// UIConfig holds Dear ImGui settings.
type UIConfig struct {
	Theme          string
	FontPath       string  `mapstructure:"font_path"`
	FontSize       float32 `mapstructure:"font_size"`
	IniFile        string  `mapstructure:"ini_file"`
	ShowDemoWindow bool    `mapstructure:"show_demo_window"`
}

// RenderConfig holds frame settings.
type RenderConfig struct {
	ClearColor []float32 `mapstructure:"clear_color"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// Flags are the command-line settings shared by both programs.
type Flags struct {
	ConfigPath string
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to a TOML config file")
}

func setDefaults(v *viper.Viper, title string) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", title)
	v.SetDefault("window.vsync", true)
	v.SetDefault("window.resizable", true)
	v.SetDefault("ui.theme", imguidemo.ThemeDark.String())
	v.SetDefault("ui.font_path", "")
	v.SetDefault("ui.font_size", 13)
	v.SetDefault("ui.ini_file", "")
	v.SetDefault("ui.show_demo_window", false)
	v.SetDefault("render.clear_color", imguidemo.DefaultClearColor[:])
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration for a program whose default window title is
// title. path overrides the config file location; when empty the
// IMGUIDEMO_CONFIG variable and then $HOME/.config/imguidemo/config.toml
// are tried. A missing default file is not an error; a missing explicit
// file is.
func Load(path, title string) (Config, error) {
	v := viper.New()
	setDefaults(v, title)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "imguidemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, imguidemo.ErrInvalidWindowSize)
	}
	if _, err := imguidemo.ParseTheme(c.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme: %w", err)
	}
	if c.UI.FontSize <= 0 {
		return fmt.Errorf("ui.font_size %.1f must be positive", c.UI.FontSize)
	}
	if len(c.Render.ClearColor) != 3 {
		return fmt.Errorf("render.clear_color needs 3 components, got %d", len(c.Render.ClearColor))
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("render.clear_color[%d] = %.2f outside [0,1]", i, v)
		}
	}
	return nil
}

// Theme returns the parsed theme. Validate must have passed.
func (c Config) Theme() imguidemo.Theme {
	t, _ := imguidemo.ParseTheme(c.UI.Theme)
	return t
}

// ClearColor returns the clear colour as an array. Validate must have passed.
func (c Config) ClearColor() [3]float32 {
	return [3]float32{c.Render.ClearColor[0], c.Render.ClearColor[1], c.Render.ClearColor[2]}
}
