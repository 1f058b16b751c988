package views

import (
	"fmt"

	"cat-encyclopedia/internal/imaging"
	"cat-encyclopedia/internal/logger"
	"cat-encyclopedia/internal/models"
	"cat-encyclopedia/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	DetailWidth  = 800
	DetailHeight = 400
)

// DetailWindow shows one breed. It owns its image asset and closes it
// together with the window.
type DetailWindow struct {
	*Window
	breed  models.Breed
	asset  *imaging.Asset
	image  *canvas.Image
	title  *Label
	detail *Label
	logger logger.Logger
}

func NewDetailWindow(app fyne.App, breed models.Breed, asset *imaging.Asset, log logger.Logger) *DetailWindow {
	if log == nil {
		log = logger.NoOp{}
	}
	title := NewLabel(breed.Name, true)
	detail := NewLabel(DetailText(breed), false)

	objects := make([]fyne.CanvasObject, 0, 3)
	var img *canvas.Image
	if asset != nil && asset.Image() != nil {
		img = canvas.NewImageFromImage(asset.Image())
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(imaging.DetailSize, imaging.DetailSize))
		objects = append(objects, container.NewCenter(img))
	}
	objects = append(objects, title.Object(), detail.Object())

	children := []theme.Element{title, detail}
	if img != nil {
		children = append([]theme.Element{img}, children...)
	}
	root := NewPanel(container.NewPadded(container.NewVBox(objects...)), children...)

	d := &DetailWindow{
		Window: newWindow(app, fmt.Sprintf("Подробности о %s", breed.Name), fyne.NewSize(DetailWidth, DetailHeight), root),
		breed:  breed,
		asset:  asset,
		image:  img,
		title:  title,
		detail: detail,
		logger: log,
	}
	d.onRelease(d.releaseImage)
	return d
}

// DetailText formats the descriptive fields of a breed.
func DetailText(b models.Breed) string {
	return fmt.Sprintf("Описание: %s\nВес: %s, Рост: %s, Продолжительность жизни: %s",
		b.Description, b.Weight, b.Height, b.LifeSpan)
}

func (d *DetailWindow) HasImage() bool {
	return d.image != nil
}

func (d *DetailWindow) releaseImage() {
	if d.image != nil {
		d.image.Image = nil
	}
	if err := d.asset.Close(); err != nil {
		d.logger.Error("DetailWindow", fmt.Errorf("releasing image %s: %w", d.asset.Path(), err), map[string]interface{}{
			"breed": d.breed.Name,
		})
	}
}
