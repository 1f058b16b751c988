package views

import (
	"cat-encyclopedia/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// styled paints a background behind content and overrides the fyne theme of
// content with the element's colour pair.
type styled struct {
	background *canvas.Rectangle
	override   *container.ThemeOverride
	object     fyne.CanvasObject
	style      theme.Style
}

func newStyled(content fyne.CanvasObject) *styled {
	initial := theme.StyleFor(theme.Light)
	background := canvas.NewRectangle(initial.Background)
	override := container.NewThemeOverride(content, newPaletteTheme(initial))

	return &styled{
		background: background,
		override:   override,
		object:     container.NewStack(background, override),
		style:      initial,
	}
}

func (s *styled) SetStyle(style theme.Style) {
	s.style = style
	s.background.FillColor = style.Background
	s.background.Refresh()
	s.override.Theme = newPaletteTheme(style)
	s.override.Refresh()
}

func (s *styled) Style() theme.Style {
	return s.style
}

func (s *styled) Object() fyne.CanvasObject {
	return s.object
}

// Label is a text element.
type Label struct {
	*styled
	label *widget.Label
}

func NewLabel(text string, bold bool) *Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Bold: bold}
	label.Alignment = fyne.TextAlignCenter

	return &Label{styled: newStyled(label), label: label}
}

func (l *Label) Text() string {
	return l.label.Text
}

func (l *Label) SetText(text string) {
	l.label.SetText(text)
}

// Button is a tappable element.
type Button struct {
	*styled
	button *widget.Button
}

func NewButton(text string, tapped func()) *Button {
	button := widget.NewButton(text, tapped)
	return &Button{styled: newStyled(button), button: button}
}

func (b *Button) Text() string {
	return b.button.Text
}

// List shows names and reports the position of the tapped row. The
// selection is cleared after every tap so a row can be chosen again.
type List struct {
	*styled
	list       *widget.List
	items      []string
	OnSelected func(position int)
}

func NewList(items []string) *List {
	l := &List{items: items}
	l.list = widget.NewList(
		func() int { return len(l.items) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(l.items[id])
		},
	)
	l.list.OnSelected = l.tap
	l.styled = newStyled(l.list)
	return l
}

func (l *List) tap(id widget.ListItemID) {
	l.list.Unselect(id)
	if l.OnSelected != nil {
		l.OnSelected(id)
	}
}

func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Panel is a container element. It takes the background colour only and
// exposes its children to the theme walk.
type Panel struct {
	background *canvas.Rectangle
	object     fyne.CanvasObject
	children   []theme.Element
}

// NewPanel wraps layout, which must already hold the children's objects.
func NewPanel(layout fyne.CanvasObject, children ...theme.Element) *Panel {
	background := canvas.NewRectangle(theme.StyleFor(theme.Light).Background)
	return &Panel{
		background: background,
		object:     container.NewStack(background, layout),
		children:   children,
	}
}

func (p *Panel) SetStyle(style theme.Style) {
	p.background.FillColor = style.Background
	p.background.Refresh()
}

func (p *Panel) Children() []theme.Element {
	return p.children
}

func (p *Panel) Object() fyne.CanvasObject {
	return p.object
}
