package imguidemo

import (
	"math"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
)

// newTestContext creates a context with a built font atlas, as a renderer
// bridge would.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(testKeymap())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx.IO().Fonts().TextureDataRGBA32()
	ctx.IO().Fonts().SetTextureID(1)
	t.Cleanup(ctx.Destroy)
	return ctx
}

var testDisplay = [2]float32{800, 600}

func TestDemo_FrameProducesDrawData(t *testing.T) {
	ctx := newTestContext(t)
	demo := New(WithHost("test"))

	drawData := demo.Frame(ctx, NewInput(), testDisplay, NominalFrameTime)

	if !drawData.Valid() {
		t.Fatal("Expected valid draw data")
	}
	if len(drawData.CommandLists()) == 0 {
		t.Error("Expected at least one command list")
	}
	if demo.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", demo.Frames())
	}
	if demo.History().Len() != 1 {
		t.Errorf("Expected 1 history sample, got %d", demo.History().Len())
	}
}

func TestDemo_FrameAdvancesState(t *testing.T) {
	ctx := newTestContext(t)
	demo := New()
	in := NewInput()

	for i := 0; i < 10; i++ {
		in.Reset()
		demo.Frame(ctx, in, testDisplay, 0.1)
	}

	if !approx(demo.State().Progress, 10*0.1*ProgressSpeed) {
		t.Errorf("Expected progress %f, got %f", 10*0.1*ProgressSpeed, demo.State().Progress)
	}
	if demo.Frames() != 10 {
		t.Errorf("Expected 10 frames, got %d", demo.Frames())
	}
}

func TestDemo_FrameClampsDelta(t *testing.T) {
	ctx := newTestContext(t)
	demo := New()

	demo.Frame(ctx, NewInput(), testDisplay, 0)

	if got := demo.History().Values()[0]; got != MinFrameTime {
		t.Errorf("Expected clamped delta %g, got %g", MinFrameTime, got)
	}
}

func TestDemo_FrameRejectsNonFiniteDelta(t *testing.T) {
	ctx := newTestContext(t)
	demo := New()

	demo.Frame(ctx, NewInput(), testDisplay, float32(math.NaN()))
	demo.Frame(ctx, NewInput(), testDisplay, float32(math.Inf(1)))

	for i, got := range demo.History().Values() {
		if got != MinFrameTime {
			t.Errorf("frame %d: expected delta %g, got %g", i, MinFrameTime, got)
		}
	}
	if p := demo.State().Progress; p < 0 || p >= 1 {
		t.Errorf("Progress %f outside [0,1)", p)
	}
}

func TestDemo_Options(t *testing.T) {
	s := NewState()
	s.Counter = 5
	demo := New(
		WithState(s),
		WithClearColor([3]float32{0.1, 0.2, 0.3}),
		WithDemoWindow(true),
		WithHistorySize(2),
	)

	if demo.State() != s {
		t.Error("Expected provided state")
	}
	if demo.State().ClearColor != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("Expected clear color override, got %v", demo.State().ClearColor)
	}
	if !demo.State().ShowDemoWindow {
		t.Error("Expected demo window shown")
	}

	for i := 0; i < 5; i++ {
		demo.History().Push(1)
	}
	if demo.History().Len() != 2 {
		t.Errorf("Expected history capped at 2, got %d", demo.History().Len())
	}
}

func TestDemo_AllWindowsAndTexture(t *testing.T) {
	ctx := newTestContext(t)
	demo := New()
	demo.State().ShowAnotherWindow = true
	demo.State().ShowDemoWindow = true
	demo.State().Enabled = false
	demo.SetPreviewTexture(imgui.TextureID(2), 64, 64)

	in := NewInput()
	for i := 0; i < 3; i++ {
		in.Reset()
		drawData := demo.Frame(ctx, in, testDisplay, NominalFrameTime)
		if !drawData.Valid() {
			t.Fatalf("frame %d: expected valid draw data", i)
		}
	}
}

func TestDemo_MouseOverGUI(t *testing.T) {
	ctx := newTestContext(t)
	demo := New()
	in := NewInput()

	// Main window opens at (20, 40).
	in.SetMousePos(100, 100)
	demo.Frame(ctx, in, testDisplay, NominalFrameTime)
	in.Reset()
	demo.Frame(ctx, in, testDisplay, NominalFrameTime)

	if !ctx.IO().WantCaptureMouse() {
		t.Error("Expected GUI to capture the mouse over the main window")
	}

	in.SetMousePos(780, 580)
	in.Reset()
	demo.Frame(ctx, in, testDisplay, NominalFrameTime)
	in.Reset()
	demo.Frame(ctx, in, testDisplay, NominalFrameTime)

	if ctx.IO().WantCaptureMouse() {
		t.Error("Expected GUI not to capture the mouse outside its windows")
	}
}

// driver feeds scripted input to a demo one frame at a time. Widgets are
// located through the rectangles the demo tracked on the previous frame.
type driver struct {
	t    *testing.T
	ctx  *Context
	demo *Demo
	in   *Input
}

func newDriver(t *testing.T, demo *Demo) *driver {
	t.Helper()
	d := &driver{t: t, ctx: newTestContext(t), demo: demo, in: NewInput()}
	d.in.SetMousePos(790, 590)
	// Tab bars lay out their tabs one frame after they appear.
	d.frame()
	d.frame()
	return d
}

func (d *driver) frame() {
	d.demo.Frame(d.ctx, d.in, testDisplay, NominalFrameTime)
	d.in.Reset()
}

// click hovers the widget, presses and releases the left button over it,
// one frame per step.
func (d *driver) click(label string) {
	d.t.Helper()
	r, ok := d.demo.items[label]
	if !ok {
		d.t.Fatalf("Expected %q to have been drawn", label)
	}
	if r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y {
		d.t.Fatalf("Expected %q to have a visible area, got %v", label, r)
	}

	c := r.Center()
	d.in.SetMousePos(c.X, c.Y)
	d.frame()
	d.in.SetMouseButton(MouseButtonLeft, true)
	d.frame()
	d.in.SetMouseButton(MouseButtonLeft, false)
	d.frame()
}

// drag presses the left button on the widget and moves right by dx in
// steps before releasing.
func (d *driver) drag(label string, dx float32, steps int) {
	d.t.Helper()
	r, ok := d.demo.items[label]
	if !ok {
		d.t.Fatalf("Expected %q to have been drawn", label)
	}

	c := r.Center()
	d.in.SetMousePos(c.X, c.Y)
	d.frame()
	d.in.SetMouseButton(MouseButtonLeft, true)
	d.frame()
	for i := 1; i <= steps; i++ {
		d.in.SetMousePos(c.X+dx*float32(i)/float32(steps), c.Y)
		d.frame()
	}
	d.in.SetMouseButton(MouseButtonLeft, false)
	d.frame()
}

func (d *driver) pressKey(code int) {
	d.in.PressKey(code)
	d.frame()
	d.in.ReleaseKey(code)
	d.frame()
}

func TestDemo_ClickButtonCounts(t *testing.T) {
	d := newDriver(t, New())

	d.click("Button")
	d.click("Button")

	if got := d.demo.State().Counter; got != 2 {
		t.Errorf("Expected counter 2, got %d", got)
	}
}

func TestDemo_DragInt(t *testing.T) {
	d := newDriver(t, New())

	d.drag("Draggable Int", 40, 4)

	if got := d.demo.State().DragInt; got <= 0 {
		t.Errorf("Expected dragging right to raise the value, got %d", got)
	}
}

func TestDemo_ClickImageButtonResetsCounter(t *testing.T) {
	demo := New()
	demo.SetPreviewTexture(imgui.TextureID(2), 32, 32)
	demo.State().Counter = 3
	d := newDriver(t, demo)

	d.click("Texture")
	d.frame()
	d.click("reset counter")

	if got := demo.State().Counter; got != 0 {
		t.Errorf("Expected counter reset to 0, got %d", got)
	}
}

func TestDemo_CheckboxShowsAnotherWindow(t *testing.T) {
	d := newDriver(t, New())

	d.click("Another Window")

	if !d.demo.State().ShowAnotherWindow {
		t.Fatal("Expected checkbox to show Another Window")
	}
	d.frame()
	if _, ok := d.demo.items["Close Me"]; !ok {
		t.Error("Expected Another Window to be drawn")
	}
}

func TestDemo_CloseMeHidesAnotherWindow(t *testing.T) {
	demo := New()
	demo.State().ShowAnotherWindow = true
	d := newDriver(t, demo)

	d.click("Close Me")

	if demo.State().ShowAnotherWindow {
		t.Error("Expected Close Me to hide Another Window")
	}
}

func TestDemo_MenuResetState(t *testing.T) {
	demo := New()
	demo.State().Counter = 4
	demo.State().Text = "edited"
	demo.State().ShowAnotherWindow = true
	d := newDriver(t, demo)

	d.click("File")
	d.click("Reset state")

	s := demo.State()
	if s.Counter != 0 || s.Text != "Hello, world!" {
		t.Errorf("Expected state reset, got counter %d text %q", s.Counter, s.Text)
	}
	if !s.ShowAnotherWindow {
		t.Error("Expected window visibility kept across reset")
	}
	if s.QuitRequested() {
		t.Error("Expected no quit request")
	}
}

func TestDemo_MenuQuit(t *testing.T) {
	d := newDriver(t, New())

	d.click("File")
	if d.demo.State().QuitRequested() {
		t.Fatal("Expected opening the menu not to quit")
	}
	d.click("Quit")

	if !d.demo.State().QuitRequested() {
		t.Error("Expected File > Quit to request quit")
	}
}

func TestDemo_MenuViewToggles(t *testing.T) {
	d := newDriver(t, New())
	s := d.demo.State()

	d.click("View")
	d.click("Another window")
	if !s.ShowAnotherWindow {
		t.Error("Expected View > Another window to show it")
	}

	d.click("View")
	d.click("Demo window")
	if !s.ShowDemoWindow {
		t.Error("Expected View > Demo window to show it")
	}

	d.click("View")
	d.click("Another window")
	if s.ShowAnotherWindow {
		t.Error("Expected second View > Another window to hide it")
	}
}

func TestDemo_EscapeQuits(t *testing.T) {
	d := newDriver(t, New())

	d.pressKey(testKeymap().Keys[KeyEscape])

	if !d.demo.State().QuitRequested() {
		t.Error("Expected Escape to request quit")
	}
}

func TestDemo_EscapeWhileEditingText(t *testing.T) {
	d := newDriver(t, New())
	esc := testKeymap().Keys[KeyEscape]

	d.click("text")
	d.frame()
	if !d.ctx.IO().WantTextInput() {
		t.Fatal("Expected the text field to take keyboard input")
	}

	// The first Escape leaves the text field.
	d.pressKey(esc)
	if d.demo.State().QuitRequested() {
		t.Fatal("Expected Escape inside a text field not to quit")
	}

	d.pressKey(esc)
	if !d.demo.State().QuitRequested() {
		t.Error("Expected Escape to quit once the text field was left")
	}
}

func TestMousePosText(t *testing.T) {
	tests := []struct {
		pos  imgui.Vec2
		want string
	}{
		{imgui.Vec2{X: 12.4, Y: 30}, "Mouse position: (12, 30)"},
		{imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32}, "Mouse position: <invalid>"},
	}
	for _, tt := range tests {
		if got := mousePosText(tt.pos); got != tt.want {
			t.Errorf("mousePosText(%v) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestDemo_ClosableTabs(t *testing.T) {
	d := newDriver(t, New())
	tabs := &d.demo.State().Tabs

	// The Texture tab is the shortest without a preview, which keeps the
	// tree nodes below it inside the window.
	d.click("Texture")
	d.click("Tabs")
	d.click("Advanced & Close Button")

	d.click("Beetroot")
	if tabs.Open[1] {
		t.Error("Expected Beetroot checkbox to close the tab")
	}
	if !tabs.Open[0] || !tabs.Open[2] || !tabs.Open[3] {
		t.Errorf("Expected other tabs open, got %v", tabs.Open)
	}

	d.click("Reorderable")
	if tabs.Reorderable {
		t.Error("Expected Reorderable toggled off")
	}
	if tabs.Flags()&imgui.TabBarFlagsReorderable != 0 {
		t.Error("Expected flags without Reorderable")
	}
}
