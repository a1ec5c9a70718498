package gtkhost

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabcast/internal/application/port"
)

const (
	quickTitle       = "Quick Prompt"
	quickPlaceholder = "Type a prompt and press Enter, Esc to close"
)

// refocusDelays re-present the quick window shortly after showing it;
// some compositors drop the first focus request of a new window.
var refocusDelays = []uint{120, 360}

// quickWindow is a single-entry window forwarding prompts to the main one.
type quickWindow struct {
	host   *Host
	win    *gtk.ApplicationWindow
	handle *windowHandle
	entry  *gtk.Entry
	hint   *gtk.Label
}

func newQuickWindow(h *Host) *quickWindow {
	q := &quickWindow{host: h}

	q.win = gtk.NewApplicationWindow(h.app)
	q.win.SetTitle(quickTitle)
	q.win.SetDefaultSize(h.opts.QuickWidth, h.opts.QuickHeight)
	q.win.SetResizable(false)
	q.win.SetDecorated(false)
	q.win.SetHideOnClose(true)
	q.handle = newWindowHandle(h, port.QuickWindowLabel, q.win)

	box := gtk.NewBox(gtk.OrientationVertical, 6)
	box.SetMarginStart(12)
	box.SetMarginEnd(12)
	box.SetMarginTop(12)
	box.SetMarginBottom(12)

	q.entry = gtk.NewEntry()
	q.entry.SetPlaceholderText(quickPlaceholder)
	q.entry.SetHExpand(true)
	q.entry.ConnectActivate(q.submit)
	box.Append(q.entry)

	q.hint = gtk.NewLabel("")
	q.hint.AddCSSClass("dim-label")
	q.hint.SetXAlign(0)
	q.hint.SetVisible(false)
	box.Append(q.hint)

	q.win.SetChild(box)
	bindEscape(h, q.win)

	q.win.NotifyProperty("is-active", func() {
		if q.win.IsActive() {
			q.focusEntry()
			return
		}
		if !q.win.IsVisible() {
			return
		}
		text := q.entry.Text()
		h.spawn(func(cb Callbacks) {
			if cb.OnQuickBlur != nil {
				cb.OnQuickBlur(h.ctx, text)
			}
		})
	})
	return q
}

func (q *quickWindow) present() {
	q.win.SetVisible(true)
	q.win.Present()
	q.focusEntry()
	for _, delay := range refocusDelays {
		glib.TimeoutAdd(delay, func() bool {
			if q.win.IsVisible() {
				q.win.Present()
				q.focusEntry()
			}
			return false
		})
	}
}

func (q *quickWindow) focusEntry() {
	q.entry.GrabFocus()
	q.entry.SetPosition(-1)
}

func (q *quickWindow) submit() {
	text := q.entry.Text()
	h := q.host
	h.spawn(func(cb Callbacks) {
		if cb.OnQuickSubmit == nil {
			return
		}
		reply := cb.OnQuickSubmit(h.ctx, text)
		post(func() { q.apply(reply) })
	})
}

func (q *quickWindow) apply(reply QuickReply) {
	if reply.Clear {
		q.entry.SetText("")
	}
	q.hint.SetText(reply.Message)
	q.hint.SetVisible(reply.Message != "")
}
