package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const (
	MembersWidth  = 600
	MembersHeight = 400
)

// MembersWindow lists the breeds of one category.
type MembersWindow struct {
	*Window
	category string
	list     *List
	info     *Label
}

func NewMembersWindow(app fyne.App, category string, names []string, onSelect func(position int)) *MembersWindow {
	list := NewList(names)
	list.OnSelected = onSelect
	info := NewLabel("", false)

	root := NewPanel(
		container.NewBorder(nil, container.NewPadded(info.Object()), nil, nil, list.Object()),
		list, info,
	)

	return &MembersWindow{
		Window:   newWindow(app, fmt.Sprintf("Породы кошек (%s)", category), fyne.NewSize(MembersWidth, MembersHeight), root),
		category: category,
		list:     list,
		info:     info,
	}
}

func (m *MembersWindow) Category() string {
	return m.category
}

// Select behaves as if the row at position had been tapped.
func (m *MembersWindow) Select(position int) {
	m.list.tap(position)
}
