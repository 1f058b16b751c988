// Package navigation drives the Categories → Members → Detail flow. Every
// transition opens a new, independently closable surface.
package navigation

import (
	"fmt"

	"github.com/google/uuid"

	"cat-encyclopedia/internal/catalog"
	"cat-encyclopedia/internal/imaging"
	"cat-encyclopedia/internal/logger"
	"cat-encyclopedia/internal/models"
	"cat-encyclopedia/internal/theme"
)

const component = "Navigation"

// View is a secondary window. SetOnClosed registers the single close hook
// used by the controller.
type View interface {
	theme.Surface
	Show()
	Close()
	SetOnClosed(func())
}

// Views creates the windows the controller opens.
type Views interface {
	NewMembers(category string, names []string, onSelect func(position int)) View
	// NewDetail takes ownership of asset, which may be nil, and releases
	// it when the window closes.
	NewDetail(breed models.Breed, asset *imaging.Asset) View
}

// ImageSource decodes image references.
type ImageSource interface {
	Load(ref string) (*imaging.Asset, error)
}

type Controller struct {
	index  *catalog.Index
	themes *theme.Manager
	views  Views
	images ImageSource
	logger logger.Logger

	// children holds the open windows opened from each window; closing a
	// window closes its branch. parents is the reverse link.
	children map[uuid.UUID][]View
	parents  map[uuid.UUID]uuid.UUID
}

func NewController(index *catalog.Index, themes *theme.Manager, views Views, images ImageSource, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Controller{
		index:    index,
		themes:   themes,
		views:    views,
		images:   images,
		logger:   log,
		children: make(map[uuid.UUID][]View),
		parents:  make(map[uuid.UUID]uuid.UUID),
	}
}

// Categories lists the category keys shown on the root surface.
func (c *Controller) Categories() []string {
	return c.index.Keys()
}

// SelectCategory opens a fresh Members surface for key. An already open
// surface for the same key is not reused.
func (c *Controller) SelectCategory(key string) (View, error) {
	names := c.index.Names(key)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, key)
	}

	var members View
	members = c.views.NewMembers(key, names, func(position int) {
		if _, err := c.SelectMember(members, key, position); err != nil {
			c.logger.Error(component, err, map[string]interface{}{
				"category": key,
				"position": position,
			})
		}
	})
	c.open(members, nil)

	c.logger.Info(component, "category opened", map[string]interface{}{
		"category": key,
		"members":  len(names),
		"surface":  members.ID().String(),
	})
	return members, nil
}

// SelectMember opens the Detail surface for the record at position within
// key, nested under parent. Image failures never abort the transition.
func (c *Controller) SelectMember(parent theme.Surface, key string, position int) (View, error) {
	breed, err := c.index.Member(key, position)
	if err != nil {
		return nil, err
	}

	asset, err := c.image(breed)
	if err != nil {
		c.logger.Error(component, fmt.Errorf("loading image for %q: %w", breed.Name, err), map[string]interface{}{
			"image_path": breed.ImagePath,
		})
		asset = nil
	}

	detail := c.views.NewDetail(breed, asset)
	c.open(detail, parent)

	c.logger.Info(component, "detail opened", map[string]interface{}{
		"breed":     breed.Name,
		"has_image": asset != nil,
		"surface":   detail.ID().String(),
	})
	return detail, nil
}

func (c *Controller) image(breed models.Breed) (*imaging.Asset, error) {
	if !breed.HasImage() {
		return nil, imaging.ErrNoImage
	}
	return c.images.Load(breed.ImagePath)
}

func (c *Controller) open(v View, parent theme.Surface) {
	c.themes.Stamp(v, parent)
	if parent != nil {
		c.children[parent.ID()] = append(c.children[parent.ID()], v)
		c.parents[v.ID()] = parent.ID()
	}
	v.SetOnClosed(func() { c.closed(v) })
	v.Show()
}

func (c *Controller) closed(v View) {
	c.themes.Unregister(v.ID())
	c.detach(v)

	branch := c.children[v.ID()]
	delete(c.children, v.ID())
	for _, child := range branch {
		if !child.Closed() {
			child.Close()
		}
	}

	c.logger.Debug(component, "surface closed", map[string]interface{}{
		"surface":  v.ID().String(),
		"children": len(branch),
	})
}

func (c *Controller) detach(v View) {
	parent, ok := c.parents[v.ID()]
	if !ok {
		return
	}
	delete(c.parents, v.ID())

	siblings := c.children[parent]
	for i, sibling := range siblings {
		if sibling.ID() == v.ID() {
			siblings = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(siblings) == 0 {
		delete(c.children, parent)
		return
	}
	c.children[parent] = siblings
}
