package views

import (
	"context"
	"time"

	"cat-encyclopedia/internal/imaging"
	"cat-encyclopedia/internal/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

const (
	MainTitle       = "Энциклопедия Кошек ₍^. .^₎⟆"
	ThemeButtonText = " ≽^◕⩊◕ ^≼ Изменить тему"
	MainWidth       = 800
	MainHeight      = 600
	SplashSize      = 300
)

// MainWindow is the root surface: category buttons, the theme toggle and
// the splash animation.
type MainWindow struct {
	*Window
	categories  []*Button
	themeButton *Button
	menu        *Panel
	splash      *Splash
}

// NewMainWindow builds the root surface. onCategory receives the key of the
// tapped category button.
func NewMainWindow(app fyne.App, keys []string, onCategory func(key string), onToggleTheme func()) *MainWindow {
	buttons := make([]*Button, 0, len(keys))
	buttonObjects := make([]fyne.CanvasObject, 0, len(keys))
	menuChildren := make([]theme.Element, 0, len(keys)+1)
	for _, key := range keys {
		b := NewButton(key, func() {
			if onCategory != nil {
				onCategory(key)
			}
		})
		buttons = append(buttons, b)
		buttonObjects = append(buttonObjects, b.Object())
		menuChildren = append(menuChildren, b)
	}

	themeButton := NewButton(ThemeButtonText, func() {
		if onToggleTheme != nil {
			onToggleTheme()
		}
	})
	menuChildren = append(menuChildren, themeButton)

	menu := NewPanel(
		container.NewPadded(container.NewBorder(
			container.NewVBox(buttonObjects...),
			themeButton.Object(),
			nil, nil,
		)),
		menuChildren...,
	)

	splash := NewSplash()
	splashArea := container.NewCenter(splash.Object())

	root := NewPanel(
		container.NewBorder(nil, nil, container.NewPadded(menu.Object()), nil, splashArea),
		menu, splash,
	)

	w := newWindow(app, MainTitle, fyne.NewSize(MainWidth, MainHeight), root)
	w.window.SetMaster()

	return &MainWindow{
		Window:      w,
		categories:  buttons,
		themeButton: themeButton,
		menu:        menu,
		splash:      splash,
	}
}

func (m *MainWindow) Splash() *Splash {
	return m.splash
}

// Categories returns the category labels in display order.
func (m *MainWindow) Categories() []string {
	out := make([]string, len(m.categories))
	for i, b := range m.categories {
		out[i] = b.Text()
	}
	return out
}

func (m *MainWindow) ShowAndRun(app fyne.App) {
	m.window.Show()
	app.Run()
}

// Splash is the animated canvas on the root surface. It takes the
// background colour only; the frames themselves are never restyled.
type Splash struct {
	*Panel
	image *canvas.Image
}

func NewSplash() *Splash {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(SplashSize, SplashSize))

	panel := NewPanel(container.New(layout.NewCenterLayout(), img), img)
	return &Splash{Panel: panel, image: img}
}

// Frame is the image currently on screen.
func (s *Splash) Frame() *canvas.Image {
	return s.image
}

// Step shows the next frame. It must run on the UI goroutine.
func (s *Splash) Step(anim *imaging.Animation) {
	s.image.Image = anim.Next()
	s.image.Refresh()
}

// Animate advances the splash every interval until ctx is done. Frames are
// swapped on the UI goroutine through fyne.Do.
func (s *Splash) Animate(ctx context.Context, anim *imaging.Animation, interval time.Duration) {
	fyne.Do(func() { s.Step(anim) })

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fyne.Do(func() { s.Step(anim) })
			case <-ctx.Done():
				return
			}
		}
	}()
}
