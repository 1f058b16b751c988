package views

import (
	"cat-encyclopedia/internal/imaging"
	"cat-encyclopedia/internal/logger"
	"cat-encyclopedia/internal/models"
	"cat-encyclopedia/internal/navigation"

	"fyne.io/fyne/v2"
)

// Factory opens fyne windows for the navigation controller.
type Factory struct {
	app    fyne.App
	logger logger.Logger
}

func NewFactory(app fyne.App, log logger.Logger) *Factory {
	return &Factory{app: app, logger: log}
}

func (f *Factory) NewMembers(category string, names []string, onSelect func(position int)) navigation.View {
	return NewMembersWindow(f.app, category, names, onSelect)
}

func (f *Factory) NewDetail(breed models.Breed, asset *imaging.Asset) navigation.View {
	return NewDetailWindow(f.app, breed, asset, f.logger)
}
