package imguidemo

import (
	"math"

	"github.com/inkyblackness/imgui-go/v4"
)

// Radio choices shown on the Widgets tab.
var RadioChoices = []string{"Red", "Green", "Blue"}

// State is the demo's local state. Widgets read and write it directly.
type State struct {
	Counter int
	Float   float32
	Int     int32
	DragInt int32

	ShowDemoWindow    bool
	ShowAnotherWindow bool
	Animate           bool
	Enabled           bool

	ClearColor [3]float32
	Text       string
	Radio      int
	Progress   float32

	Tabs TabOptions

	quit bool
}

// TabFitting selects how a tab bar shrinks tabs that do not fit.
type TabFitting int

const (
	TabFittingResizeDown TabFitting = iota
	TabFittingScroll
)

// TabNames are the closable tabs of the advanced tab bar.
var TabNames = [...]string{"Artichoke", "Beetroot", "Celery", "Daikon"}

// TabOptions backs the advanced tab bar under the Tabs tree node.
type TabOptions struct {
	Reorderable                  bool
	AutoSelectNewTabs            bool
	NoCloseWithMiddleMouseButton bool
	Fitting                      TabFitting

	// Open holds one entry per TabNames; closing a tab clears it.
	Open [len(TabNames)]bool
}

// Flags converts the options to tab bar flags.
func (o TabOptions) Flags() imgui.TabBarFlags {
	flags := imgui.TabBarFlagsNone
	if o.Reorderable {
		flags |= imgui.TabBarFlagsReorderable
	}
	if o.AutoSelectNewTabs {
		flags |= imgui.TabBarFlagsAutoSelectNewTabs
	}
	if o.NoCloseWithMiddleMouseButton {
		flags |= imgui.TabBarFlagsNoCloseWithMiddleMouseButton
	}
	if o.Fitting == TabFittingScroll {
		flags |= imgui.TabBarFlagsFittingPolicyScroll
	} else {
		flags |= imgui.TabBarFlagsFittingPolicyResizeDown
	}
	return flags
}

// DefaultClearColor is the background behind the GUI.
var DefaultClearColor = [3]float32{0.45, 0.55, 0.60}

// ProgressSpeed is how much of the progress bar fills per second.
const ProgressSpeed float32 = 0.4

// NewState returns the initial demo state.
func NewState() *State {
	return &State{
		Float:      0.5,
		Int:        50,
		Animate:    true,
		Enabled:    true,
		ClearColor: DefaultClearColor,
		Text:       "Hello, world!",
		Tabs: TabOptions{
			Reorderable: true,
			Open:        [len(TabNames)]bool{true, true, true, true},
		},
	}
}

// Click counts a button press.
func (s *State) Click() {
	s.Counter++
}

// Step advances the animated progress bar, wrapping into [0,1).
// Non-finite or non-positive deltas are ignored.
func (s *State) Step(dt float32) {
	d := float64(dt)
	if !s.Animate || !(d > 0) || math.IsInf(d, 0) {
		return
	}
	p := math.Mod(float64(s.Progress)+d*float64(ProgressSpeed), 1)
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	s.Progress = float32(p)
	if s.Progress >= 1 {
		// p just below 1 can round up in float32.
		s.Progress = 0
	}
}

// Reset restores initial values. Window visibility and the clear colour
// are kept so the reset does not rearrange the screen.
func (s *State) Reset() {
	demo, another, clear := s.ShowDemoWindow, s.ShowAnotherWindow, s.ClearColor
	*s = *NewState()
	s.ShowDemoWindow, s.ShowAnotherWindow, s.ClearColor = demo, another, clear
}

// RequestQuit asks the host to close the window.
func (s *State) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether Quit was chosen.
func (s *State) QuitRequested() bool {
	return s.quit
}
