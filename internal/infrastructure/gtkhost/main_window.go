package gtkhost

import (
	"context"
	"strings"
	"time"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabcast/internal/application/port"
	"github.com/bnema/tabcast/internal/domain/entity"
	"github.com/bnema/tabcast/internal/ui/controller"
)

const (
	windowTitle   = "tabcast"
	settingsLabel = "Settings"
	noticeTimeout = 4 * time.Second
)

type tabButton struct {
	id     string
	button *gtk.Button
}

// mainWindow is a tab strip above a stage. Surfaces are overlay children of
// root, so their coordinates are window coordinates.
type mainWindow struct {
	host   *Host
	win    *gtk.ApplicationWindow
	handle *windowHandle

	root     *gtk.Overlay
	tabBar   *gtk.Box
	tabs     []tabButton
	stage    *gtk.Box
	settings *settingsPage
	status   *gtk.Label
	statusID glib.SourceHandle

	bounds  entity.Bounds
	hasSize bool
	frame   uint64
}

func newMainWindow(h *Host) *mainWindow {
	mw := &mainWindow{host: h}

	mw.win = gtk.NewApplicationWindow(h.app)
	mw.win.SetTitle(windowTitle)
	mw.win.SetDefaultSize(h.opts.MainWidth, h.opts.MainHeight)
	mw.win.SetHideOnClose(true)
	mw.handle = newWindowHandle(h, port.MainWindowLabel, mw.win)

	content := gtk.NewBox(gtk.OrientationVertical, 0)
	content.SetHExpand(true)
	content.SetVExpand(true)

	mw.tabBar = gtk.NewBox(gtk.OrientationHorizontal, 4)
	mw.tabBar.AddCSSClass("toolbar")
	mw.tabBar.SetMarginStart(6)
	mw.tabBar.SetMarginEnd(6)
	mw.tabBar.SetMarginTop(6)
	mw.tabBar.SetMarginBottom(6)
	content.Append(mw.tabBar)

	mw.stage = gtk.NewBox(gtk.OrientationVertical, 0)
	mw.stage.SetHExpand(true)
	mw.stage.SetVExpand(true)
	mw.settings = newSettingsPage(h)
	mw.stage.Append(mw.settings.root)
	content.Append(mw.stage)

	mw.status = gtk.NewLabel("")
	mw.status.SetXAlign(0)
	mw.status.SetMarginStart(8)
	mw.status.SetMarginBottom(4)
	mw.status.SetVisible(false)
	content.Append(mw.status)

	mw.root = gtk.NewOverlay()
	mw.root.SetChild(content)
	mw.win.SetChild(mw.root)

	bindEscape(h, mw.win)
	mw.root.AddTickCallback(func(gtk.Widgetter, gdk.FrameClocker) bool {
		mw.trackStage()
		return true
	})
	return mw
}

// trackStage reports the stage rectangle whenever it changed since the
// last frame. Reports are numbered since they are delivered off the main
// thread and may arrive out of order.
func (mw *mainWindow) trackStage() {
	x, y, ok := mw.stage.TranslateCoordinates(mw.root, 0, 0)
	if !ok {
		return
	}
	next := entity.BoundsFromRect(x, y, float64(mw.stage.Width()), float64(mw.stage.Height()))
	if mw.hasSize && next == mw.bounds {
		return
	}
	mw.bounds = next
	mw.hasSize = true
	mw.frame++
	seq := mw.frame

	for _, s := range mw.host.autoResizing() {
		s.place(next)
	}
	h := mw.host
	h.spawn(func(cb Callbacks) {
		if cb.OnBounds != nil {
			cb.OnBounds(h.ctx, seq, next)
		}
	})
}

// render rebuilds the tab strip. Main thread only.
func (mw *mainWindow) render(state controller.State) {
	for _, t := range mw.tabs {
		mw.tabBar.Remove(t.button)
	}
	mw.tabs = mw.tabs[:0]

	add := func(id, label string) {
		btn := gtk.NewButtonWithLabel(label)
		btn.AddCSSClass("flat")
		if id == state.Active {
			btn.RemoveCSSClass("flat")
			btn.AddCSSClass("suggested-action")
		}
		btn.ConnectClicked(func() {
			h := mw.host
			h.spawn(func(cb Callbacks) {
				if cb.OnSelectTab != nil {
					cb.OnSelectTab(h.ctx, id)
				}
			})
		})
		mw.tabBar.Append(btn)
		mw.tabs = append(mw.tabs, tabButton{id: id, button: btn})
	}

	for _, tool := range state.Tools {
		name := tool.Name
		if name == "" {
			name = tool.ID
		}
		add(tool.ID, name)
	}
	add(controller.SettingsTab, settingsLabel)

	mw.settings.update(state)
}

// notify shows msg in the status line for a few seconds. Main thread only.
func (mw *mainWindow) notify(n controller.Notice) {
	if mw.statusID != 0 {
		glib.SourceRemove(mw.statusID)
		mw.statusID = 0
	}
	mw.status.SetText(n.Message)
	for _, class := range []string{"dim-label", "warning", "error"} {
		mw.status.RemoveCSSClass(class)
	}
	switch n.Level {
	case controller.NoticeWarning:
		mw.status.AddCSSClass("warning")
	case controller.NoticeError:
		mw.status.AddCSSClass("error")
	default:
		mw.status.AddCSSClass("dim-label")
	}
	mw.status.SetVisible(true)
	mw.statusID = glib.TimeoutAdd(uint(noticeTimeout.Milliseconds()), func() bool {
		mw.status.SetVisible(false)
		mw.statusID = 0
		return false
	})
}

// settingsPage sits under the surfaces and shows when no tool tab is active.
type settingsPage struct {
	host   *Host
	root   *gtk.Box
	hotkey *gtk.Entry
	tools  *gtk.Label
}

func newSettingsPage(h *Host) *settingsPage {
	p := &settingsPage{host: h}

	p.root = gtk.NewBox(gtk.OrientationVertical, 12)
	p.root.SetMarginStart(24)
	p.root.SetMarginEnd(24)
	p.root.SetMarginTop(24)

	title := gtk.NewLabel("Settings")
	title.AddCSSClass("title-2")
	title.SetXAlign(0)
	p.root.Append(title)

	row := gtk.NewBox(gtk.OrientationHorizontal, 8)
	row.Append(gtk.NewLabel("Quick window hotkey"))
	p.hotkey = gtk.NewEntry()
	p.hotkey.SetPlaceholderText("e.g. Alt+Q")
	p.hotkey.SetHExpand(true)
	row.Append(p.hotkey)
	apply := gtk.NewButtonWithLabel("Apply")
	apply.AddCSSClass("suggested-action")
	row.Append(apply)
	p.root.Append(row)

	submit := func() {
		hotkey := strings.TrimSpace(p.hotkey.Text())
		h.spawn(func(cb Callbacks) {
			if cb.OnSetHotkey != nil {
				cb.OnSetHotkey(h.ctx, hotkey)
			}
		})
	}
	apply.ConnectClicked(submit)
	p.hotkey.ConnectActivate(submit)

	p.tools = gtk.NewLabel("")
	p.tools.SetXAlign(0)
	p.tools.SetWrap(true)
	p.root.Append(p.tools)

	if h.opts.ConfigFile != "" {
		hint := gtk.NewLabel("Tools are edited in " + h.opts.ConfigFile + " or with `tabcast tools`.")
		hint.AddCSSClass("dim-label")
		hint.SetXAlign(0)
		hint.SetWrap(true)
		p.root.Append(hint)
	}
	return p
}

func (p *settingsPage) update(state controller.State) {
	if !p.hotkey.HasFocus() {
		p.hotkey.SetText(state.Hotkey)
	}
	if len(state.Tools) == 0 {
		p.tools.SetText("No enabled tools.")
		return
	}
	var b strings.Builder
	b.WriteString("Enabled tools:")
	for _, tool := range state.Tools {
		b.WriteString("\n  • ")
		b.WriteString(tool.Name)
		b.WriteString("  ")
		b.WriteString(tool.URL)
	}
	p.tools.SetText(b.String())
}

// View adapts the main window to controller.View.
type View struct {
	host *Host
}

// View returns the controller view of the main window.
func (h *Host) View() *View {
	return &View{host: h}
}

var _ controller.View = (*View)(nil)

// Render updates the tab strip and the settings page.
func (v *View) Render(_ context.Context, state controller.State) {
	post(func() {
		if mw := v.host.mainWindow(); mw != nil {
			mw.render(state)
		}
	})
}

// Notify shows a notice in the status line.
func (v *View) Notify(_ context.Context, n controller.Notice) {
	post(func() {
		if mw := v.host.mainWindow(); mw != nil {
			mw.notify(n)
		}
	})
}
