package app

import (
	"context"
	"fmt"

	"cat-encyclopedia/internal/catalog"
	"cat-encyclopedia/internal/config"
	"cat-encyclopedia/internal/imaging"
	"cat-encyclopedia/internal/logger"
	"cat-encyclopedia/internal/navigation"
	"cat-encyclopedia/internal/store"
	"cat-encyclopedia/internal/theme"
	"cat-encyclopedia/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Cat Encyclopedia"
	AppID      = "io.github.catencyclopedia"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	mainWindow *views.MainWindow
	themes     *theme.Manager
	controller *navigation.Controller
	store      *store.FileStore
	animation  *imaging.Animation
	config     config.Config
	logger     logger.Logger
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return New(fyneapp.NewWithID(AppID), cfg, log)
}

// New wires the application on top of an existing fyne app. The record
// store is loaded and indexed here; failures are fatal.
func New(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	initial, _ := cfg.Theme()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"data_file": cfg.DataFile,
		"image_dir": cfg.ImageDir,
		"theme":     initial.String(),
	})

	recordStore := store.NewFileStore(cfg.DataFile, log)
	records, err := recordStore.Load()
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	index, err := catalog.Build(records)
	if err != nil {
		return nil, fmt.Errorf("indexing records: %w", err)
	}

	themes := theme.NewManager(initial, log)
	loader := imaging.NewLoader(cfg.ImageDir, log)
	controller := navigation.NewController(index, themes, views.NewFactory(fyneApp, log), loader, log)

	a := &Application{
		fyneApp:    fyneApp,
		themes:     themes,
		controller: controller,
		store:      recordStore,
		config:     cfg,
		logger:     log,
	}

	a.mainWindow = views.NewMainWindow(fyneApp, controller.Categories(), a.HandleCategory, a.HandleToggleTheme)
	themes.Stamp(a.mainWindow, nil)

	anim, err := imaging.LoadAnimation(cfg.AnimationFile)
	if err != nil {
		log.Warning("Application", "splash animation unavailable", map[string]interface{}{
			"path":  cfg.AnimationFile,
			"error": err.Error(),
		})
	} else {
		a.animation = anim
		log.Debug("Application", "splash animation loaded", map[string]interface{}{
			"path":   cfg.AnimationFile,
			"frames": anim.Len(),
		})
	}

	a.lifecycle = NewLifecycle(log)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"records":    index.Len(),
		"categories": len(index.Keys()),
		"animation":  a.animation != nil,
	})
	return a, nil
}

// HandleCategory opens a members window for key.
func (a *Application) HandleCategory(key string) {
	if _, err := a.controller.SelectCategory(key); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"category": key,
		})
	}
}

// HandleToggleTheme flips the theme across every open window.
func (a *Application) HandleToggleTheme() {
	next := a.themes.Toggle()
	a.logger.Info("Application", "theme changed", map[string]interface{}{
		"theme": next.String(),
	})
}

func (a *Application) Themes() *theme.Manager {
	return a.themes
}

func (a *Application) Controller() *navigation.Controller {
	return a.controller
}

func (a *Application) MainWindow() *views.MainWindow {
	return a.mainWindow
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Run shows the root window and blocks in the fyne event loop.
func (a *Application) Run(ctx context.Context) error {
	runCtx := a.lifecycle.Start(ctx)

	window := a.mainWindow.FyneWindow()
	window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		window.Close()
	})

	if a.animation != nil {
		a.mainWindow.Splash().Animate(runCtx, a.animation, a.config.FrameInterval)
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.mainWindow.ShowAndRun(a.fyneApp)
	return nil
}

// Shutdown stops background work and quits the event loop.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
	fyne.Do(a.fyneApp.Quit)
}
