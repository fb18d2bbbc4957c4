package imguidemo

import (
	"fmt"
	"math"

	"github.com/inkyblackness/imgui-go/v4"
)

// Demo declares the demo UI once per frame.
//
// Usage:
//
//	demo := imguidemo.New(imguidemo.WithHost("GLFW / OpenGL 4.1"))
//	for !platform.ShouldStop() {
//	    platform.ProcessEvents()
//	    drawData := demo.Frame(ctx, platform.Input(), platform.DisplaySize(), clock.Tick())
//	    renderer.Render(platform.DisplaySize(), platform.FramebufferSize(), drawData)
//	}
type Demo struct {
	opts    options
	state   *State
	history *FrameHistory

	preview     imgui.TextureID
	previewSize imgui.Vec2
	frames      uint64

	// items holds the screen rectangle of each tracked widget as of the
	// last frame it was drawn.
	items map[string]itemRect
}

type itemRect struct {
	Min, Max imgui.Vec2
}

// Center returns the middle of the rectangle.
func (r itemRect) Center() imgui.Vec2 {
	return imgui.Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// New creates a demo.
func New(opts ...Option) *Demo {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	state := o.state
	if state == nil {
		state = NewState()
	}
	if o.clearColor != nil {
		state.ClearColor = *o.clearColor
	}
	if o.showDemo {
		state.ShowDemoWindow = true
	}

	return &Demo{
		opts:    o,
		state:   state,
		history: NewFrameHistory(o.historySize),
		items:   make(map[string]itemRect),
	}
}

// State returns the demo's local state.
func (d *Demo) State() *State {
	return d.state
}

// History returns the recorded frame times.
func (d *Demo) History() *FrameHistory {
	return d.history
}

// Frames returns how many frames have been declared.
func (d *Demo) Frames() uint64 {
	return d.frames
}

// SetPreviewTexture sets the texture shown on the Texture tab.
// A zero id hides the preview.
func (d *Demo) SetPreviewTexture(id imgui.TextureID, width, height int) {
	d.preview = id
	d.previewSize = imgui.Vec2{X: float32(width), Y: float32(height)}
}

// Frame feeds the input snapshot and timing to Dear ImGui, declares the UI
// and returns the draw data for the renderer bridge. A delta below
// MinFrameTime, or one that is not finite, is replaced by MinFrameTime.
func (d *Demo) Frame(ctx *Context, in *Input, displaySize [2]float32, dt float32) imgui.DrawData {
	if !(dt >= MinFrameTime) || math.IsInf(float64(dt), 1) {
		dt = MinFrameTime
	}

	io := ctx.IO()
	io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})
	io.SetDeltaTime(dt)
	in.Apply(io, ctx.Keymap())

	imgui.NewFrame()
	d.history.Push(dt)
	d.state.Step(dt)
	d.handleShortcuts(ctx.Keymap())
	d.Draw()
	imgui.Render()

	d.frames++
	return imgui.RenderedDrawData()
}

// Draw declares every window of the demo. It must run between
// imgui.NewFrame and imgui.Render.
func (d *Demo) Draw() {
	d.drawMenuBar()
	d.drawMainWindow()

	if d.state.ShowAnotherWindow {
		d.drawAnotherWindow()
	}
	if d.state.ShowDemoWindow {
		imgui.SetNextWindowPosV(imgui.Vec2{X: 650, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
		imgui.ShowDemoWindow(&d.state.ShowDemoWindow)
	}
}

// handleShortcuts quits on Escape unless a widget or popup owns the key.
func (d *Demo) handleShortcuts(km Keymap) {
	if !imgui.IsKeyPressedV(km.Keys[KeyEscape], false) {
		return
	}
	if imgui.IsAnyItemActive() || imgui.IsPopupOpenV("", imgui.PopupFlagsAnyPopup) {
		return
	}
	d.state.RequestQuit()
}

// track records the rectangle of the last submitted widget.
func (d *Demo) track(label string) {
	d.items[label] = itemRect{Min: imgui.ItemRectMin(), Max: imgui.ItemRectMax()}
}

// menu declares a main menu bar entry. The entry is tracked only while
// closed; an open menu's last item is its popup window.
func (d *Demo) menu(label string, body func()) {
	if !imgui.BeginMenu(label) {
		d.track(label)
		return
	}
	body()
	imgui.EndMenu()
}

// menuItem declares a menu item and tracks it.
func (d *Demo) menuItem(label, shortcut string, selected bool) bool {
	clicked := imgui.MenuItemV(label, shortcut, selected, true)
	d.track(label)
	return clicked
}

func (d *Demo) drawMenuBar() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	d.menu("File", func() {
		if d.menuItem("Reset state", "", false) {
			d.state.Reset()
		}
		imgui.Separator()
		if d.menuItem("Quit", "Esc", false) {
			d.state.RequestQuit()
		}
	})

	d.menu("View", func() {
		if d.menuItem("Demo window", "", d.state.ShowDemoWindow) {
			d.state.ShowDemoWindow = !d.state.ShowDemoWindow
		}
		if d.menuItem("Another window", "", d.state.ShowAnotherWindow) {
			d.state.ShowAnotherWindow = !d.state.ShowAnotherWindow
		}
	})

	imgui.EndMainMenuBar()
}

func (d *Demo) drawMainWindow() {
	s := d.state

	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 420, Y: 540}, imgui.ConditionFirstUseEver)
	imgui.Begin(d.opts.title)

	imgui.Text("Hello, world!")
	imgui.Text("Host: " + d.opts.host)
	imgui.Text(mousePosText(imgui.MousePos()))
	imgui.SliderFloat("float", &s.Float, 0, 1)
	imgui.ColorEdit3("clear color", &s.ClearColor)

	imgui.Checkbox("Demo Window", &s.ShowDemoWindow)
	d.track("Demo Window")
	imgui.Checkbox("Another Window", &s.ShowAnotherWindow)
	d.track("Another Window")

	if imgui.Button("Button") {
		s.Click()
	}
	d.track("Button")
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("counter = %d", s.Counter))

	imgui.DragInt("Draggable Int", &s.DragInt)
	d.track("Draggable Int")

	avg := d.history.Average()
	imgui.Text(fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", avg*1000, d.history.FPS()))

	imgui.Separator()
	if imgui.BeginTabBar("demo-tabs") {
		d.tabItem("Widgets", d.drawWidgetsTab)
		d.tabItem("Plots", d.drawPlotsTab)
		d.tabItem("Texture", d.drawTextureTab)
		imgui.EndTabBar()
	}

	imgui.Separator()
	d.drawTabsNode()

	imgui.End()
}

// tabItem declares a tab of the main tab bar and tracks its button.
func (d *Demo) tabItem(label string, body func()) {
	open := imgui.BeginTabItem(label)
	d.track(label)
	if !open {
		return
	}
	body()
	imgui.EndTabItem()
}

// mousePosText formats the mouse position. Dear ImGui reports -FLT_MAX
// while the mouse is outside the window.
func mousePosText(pos imgui.Vec2) string {
	if pos.X <= -math.MaxFloat32/2 || pos.Y <= -math.MaxFloat32/2 {
		return "Mouse position: <invalid>"
	}
	return fmt.Sprintf("Mouse position: (%.0f, %.0f)", pos.X, pos.Y)
}

func (d *Demo) drawWidgetsTab() {
	s := d.state

	imgui.Checkbox("Enabled", &s.Enabled)
	imgui.SameLine()
	imgui.Checkbox("Animate", &s.Animate)

	if s.Enabled {
		imgui.SliderInt("int", &s.Int, 0, 100)

		for i, name := range RadioChoices {
			if i > 0 {
				imgui.SameLine()
			}
			if imgui.RadioButton(name, s.Radio == i) {
				s.Radio = i
			}
		}

		imgui.InputText("text", &s.Text)
		d.track("text")
	} else {
		imgui.Text("(widgets disabled)")
	}

	imgui.ProgressBar(s.Progress)
}

func (d *Demo) drawPlotsTab() {
	values := d.history.Values()
	if len(values) == 0 {
		imgui.Text("no frames recorded")
		return
	}

	ms := make([]float32, len(values))
	for i, v := range values {
		ms[i] = v * 1000
	}
	imgui.PlotLines("frame time (ms)", ms)
	imgui.PlotHistogram("histogram", ms)
	imgui.Text(fmt.Sprintf("%d samples", len(ms)))
}

func (d *Demo) drawTextureTab() {
	if d.preview == 0 {
		imgui.Text("no texture registered")
		return
	}

	imgui.Text(fmt.Sprintf("texture id %d, %.0fx%.0f", d.preview, d.previewSize.X, d.previewSize.Y))
	imgui.Image(d.preview, d.previewSize)

	thumb := imgui.Vec2{X: d.previewSize.X / 4, Y: d.previewSize.Y / 4}
	if imgui.ImageButton(d.preview, thumb) {
		d.state.Counter = 0
	}
	d.track("reset counter")
	if imgui.IsItemHovered() {
		imgui.SetTooltip("reset counter")
	}
}

// treeNode declares a tree node and tracks its header.
func (d *Demo) treeNode(label string) bool {
	open := imgui.TreeNode(label)
	d.track(label)
	return open
}

func (d *Demo) drawTabsNode() {
	if !d.treeNode("Tabs") {
		return
	}

	if imgui.TreeNode("Basic") {
		if imgui.BeginTabBar("basic-tabs") {
			for _, name := range []string{"Avocado", "Broccoli", "Cucumber"} {
				if imgui.BeginTabItem(name) {
					imgui.Text(fmt.Sprintf("This is the %s tab!\nblah blah blah blah blah", name))
					imgui.EndTabItem()
				}
			}
			imgui.EndTabBar()
		}
		imgui.Separator()
		imgui.TreePop()
	}

	if d.treeNode("Advanced & Close Button") {
		d.drawClosableTabs()
		imgui.Separator()
		imgui.TreePop()
	}

	imgui.TreePop()
}

func (d *Demo) drawClosableTabs() {
	tabs := &d.state.Tabs

	imgui.Checkbox("Reorderable", &tabs.Reorderable)
	d.track("Reorderable")
	imgui.Checkbox("AutoSelectNewTabs", &tabs.AutoSelectNewTabs)
	imgui.Checkbox("NoCloseWithMiddleMouseButton", &tabs.NoCloseWithMiddleMouseButton)
	if imgui.RadioButton("FittingPolicyResizeDown", tabs.Fitting == TabFittingResizeDown) {
		tabs.Fitting = TabFittingResizeDown
	}
	imgui.SameLine()
	if imgui.RadioButton("FittingPolicyScroll", tabs.Fitting == TabFittingScroll) {
		tabs.Fitting = TabFittingScroll
	}

	for n, name := range TabNames {
		if n > 0 {
			imgui.SameLine()
		}
		imgui.Checkbox(name, &tabs.Open[n])
		d.track(name)
	}

	if !imgui.BeginTabBarV("closable-tabs", tabs.Flags()) {
		return
	}
	for n, name := range TabNames {
		if !tabs.Open[n] {
			continue
		}
		if imgui.BeginTabItemV(name, &tabs.Open[n], imgui.TabItemFlagsNone) {
			imgui.Text(fmt.Sprintf("This is the %s tab!", name))
			if n%2 == 1 {
				imgui.Text("I am an odd tab.")
			}
			imgui.EndTabItem()
		}
	}
	imgui.EndTabBar()
}

func (d *Demo) drawAnotherWindow() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 460, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 200, Y: 100}, imgui.ConditionFirstUseEver)
	imgui.BeginV("Another Window", &d.state.ShowAnotherWindow, 0)
	imgui.Text("Hello from another window!")
	if imgui.Button("Close Me") {
		d.state.ShowAnotherWindow = false
	}
	d.track("Close Me")
	imgui.End()
}
