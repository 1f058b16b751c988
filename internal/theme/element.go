package theme

// Element is any node of a surface tree. Nodes opt into theming by
// implementing Stylable and expose nested nodes by implementing Parent.
type Element interface{}

// Stylable elements accept a style. Text-bearing elements use both colours,
// containers use the background only.
type Stylable interface {
	SetStyle(Style)
}

// Parent elements expose their children to the theme walk.
type Parent interface {
	Children() []Element
}

// Walk applies style to root and every descendant that is Stylable.
// Elements without either capability are skipped.
func Walk(root Element, style Style) {
	if root == nil {
		return
	}
	if s, ok := root.(Stylable); ok {
		s.SetStyle(style)
	}
	if p, ok := root.(Parent); ok {
		for _, child := range p.Children() {
			Walk(child, style)
		}
	}
}
