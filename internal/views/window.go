package views

import (
	"cat-encyclopedia/internal/theme"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// Window is a themed top-level surface.
type Window struct {
	id       uuid.UUID
	window   fyne.Window
	root     *Panel
	closed   bool
	release  []func()
	onClosed func()
}

func newWindow(app fyne.App, title string, size fyne.Size, root *Panel) *Window {
	w := &Window{
		id:     uuid.New(),
		window: app.NewWindow(title),
		root:   root,
	}
	w.window.SetContent(root.Object())
	w.window.Resize(size)
	w.window.CenterOnScreen()
	w.window.SetOnClosed(w.handleClosed)
	return w
}

func (w *Window) ID() uuid.UUID {
	return w.id
}

func (w *Window) Content() theme.Element {
	return w.root
}

func (w *Window) Closed() bool {
	return w.closed
}

func (w *Window) Title() string {
	return w.window.Title()
}

func (w *Window) FyneWindow() fyne.Window {
	return w.window
}

func (w *Window) Show() {
	w.window.Show()
}

// SetOnClosed replaces the hook run after the window's own resources are
// released.
func (w *Window) SetOnClosed(fn func()) {
	w.onClosed = fn
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.window.Close()
	w.handleClosed()
}

func (w *Window) onRelease(fn func()) {
	w.release = append(w.release, fn)
}

func (w *Window) handleClosed() {
	if w.closed {
		return
	}
	w.closed = true
	for _, fn := range w.release {
		fn()
	}
	if w.onClosed != nil {
		w.onClosed()
	}
}
