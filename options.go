package imguidemo

import (
	"log/slog"

	"github.com/inkyblackness/imgui-go/v4"
)

// Option configures a Demo.
type Option func(*options)

type options struct {
	title       string
	host        string
	historySize int
	state       *State
	clearColor  *[3]float32
	showDemo    bool
}

func defaultOptions() options {
	return options{
		title:       "Hello, world!",
		host:        "unknown host",
		historySize: 120,
	}
}

// WithTitle sets the title of the main demo window.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithHost names the host framework in the demo's status text.
func WithHost(name string) Option {
	return func(o *options) { o.host = name }
}

// WithHistorySize sets how many frame times the plots keep.
func WithHistorySize(n int) Option {
	return func(o *options) { o.historySize = n }
}

// WithState uses an existing state instead of NewState.
func WithState(s *State) Option {
	return func(o *options) { o.state = s }
}

// WithClearColor sets the initial background colour.
func WithClearColor(c [3]float32) Option {
	return func(o *options) { o.clearColor = &c }
}

// WithDemoWindow opens Dear ImGui's built-in demo window at start.
func WithDemoWindow(show bool) Option {
	return func(o *options) { o.showDemo = show }
}

// ContextOption configures a Context.
type ContextOption func(*contextOptions)

type contextOptions struct {
	iniFile   string
	fontPath  string
	fontSize  float32
	theme     Theme
	clipboard imgui.Clipboard
	logger    *slog.Logger
}

// WithIniFile sets where Dear ImGui persists window layout.
// An empty path disables persistence.
func WithIniFile(path string) ContextOption {
	return func(o *contextOptions) { o.iniFile = path }
}

// WithFont loads a TTF font at the given pixel size instead of the
// built-in one.
func WithFont(path string, size float32) ContextOption {
	return func(o *contextOptions) {
		o.fontPath = path
		o.fontSize = size
	}
}

// WithTheme selects the colour preset.
func WithTheme(t Theme) ContextOption {
	return func(o *contextOptions) { o.theme = t }
}

// WithClipboard routes copy and paste through the host clipboard.
func WithClipboard(cb imgui.Clipboard) ContextOption {
	return func(o *contextOptions) { o.clipboard = cb }
}

// WithLogger sets the logger used for setup diagnostics.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) { o.logger = l }
}
