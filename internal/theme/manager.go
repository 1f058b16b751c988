package theme

import (
	"sync"

	"cat-encyclopedia/internal/logger"

	"github.com/google/uuid"
)

const component = "ThemeState"

// Surface is an open window whose element tree follows the current theme.
type Surface interface {
	ID() uuid.UUID
	Content() Element
	Closed() bool
}

type registration struct {
	surface Surface
	parent  uuid.UUID
}

// Manager owns the current theme and the set of live surfaces.
type Manager struct {
	mu       sync.Mutex
	current  Theme
	surfaces []registration
	logger   logger.Logger
}

func NewManager(initial Theme, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Manager{current: initial, logger: log}
}

func (m *Manager) Current() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Register tracks s so later toggles reach it. parent may be nil for
// top-level surfaces.
func (m *Manager) Register(s Surface, parent Surface) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.register(s, parent)
}

func (m *Manager) register(s Surface, parent Surface) {
	for _, r := range m.surfaces {
		if r.surface.ID() == s.ID() {
			return
		}
	}
	reg := registration{surface: s, parent: uuid.Nil}
	if parent != nil {
		reg.parent = parent.ID()
	}
	m.surfaces = append(m.surfaces, reg)
}

// Unregister forgets a surface. Unknown ids are ignored.
func (m *Manager) Unregister(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.surfaces {
		if r.surface.ID() == id {
			m.surfaces = append(m.surfaces[:i], m.surfaces[i+1:]...)
			return
		}
	}
}

// Open returns the number of registered surfaces that are still open.
func (m *Manager) Open() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.surfaces {
		if !r.surface.Closed() {
			n++
		}
	}
	return n
}

// Stamp registers s and applies the current theme to it, so it never shows
// in a stale theme.
func (m *Manager) Stamp(s Surface, parent Surface) Theme {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register(s, parent)
	m.apply(m.current, s)
	return m.current
}

// Apply styles s and every registered surface nested under it. Closed
// surfaces are skipped.
func (m *Manager) Apply(t Theme, s Surface) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(t, s)
}

func (m *Manager) apply(t Theme, s Surface) {
	if s == nil || s.Closed() {
		return
	}
	Walk(s.Content(), StyleFor(t))

	for _, r := range m.surfaces {
		if r.parent == s.ID() {
			m.apply(t, r.surface)
		}
	}
}

// Toggle flips the theme and restyles every open surface before returning.
func (m *Manager) Toggle() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = m.current.Toggled()
	style := StyleFor(m.current)

	live := make([]registration, 0, len(m.surfaces))
	for _, r := range m.surfaces {
		if r.surface.Closed() {
			continue
		}
		Walk(r.surface.Content(), style)
		live = append(live, r)
	}
	pruned := len(m.surfaces) - len(live)
	m.surfaces = live

	m.logger.Debug(component, "theme toggled", map[string]interface{}{
		"theme":    m.current.String(),
		"surfaces": len(live),
		"pruned":   pruned,
	})
	return m.current
}
