package desktop

import (
	"fmt"
	"sync"
)

// Manager tracks which applications are open on one mounted desktop.
// Each id appears at most once; order is open order.
type Manager struct {
	mu   sync.RWMutex
	open []string
}

// NewManager returns a Manager with the given applications already open.
func NewManager(initial ...string) (*Manager, error) {
	m := &Manager{}
	for _, id := range initial {
		if err := m.Open(id); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Open adds id to the open set. Opening an open app is a no-op.
func (m *Manager) Open(id string) error {
	if _, ok := Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownApp, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexLocked(id) >= 0 {
		return nil
	}
	m.open = append(m.open, id)
	return nil
}

// Close removes id from the open set if present.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return
	}
	m.open = append(m.open[:i], m.open[i+1:]...)
}

// IsOpen reports whether id is in the open set.
func (m *Manager) IsOpen(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexLocked(id) >= 0
}

// OpenApps returns the open ids in open order.
func (m *Manager) OpenApps() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.open))
	copy(out, m.open)
	return out
}

// Windows returns the open applications with their frames, in open order.
func (m *Manager) Windows() []Window {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Window, 0, len(m.open))
	for _, id := range m.open {
		app, _ := Lookup(id)
		out = append(out, windowFor(app))
	}
	return out
}

// DockItem is a dock entry with its open indicator.
type DockItem struct {
	App
	Open bool `json:"open"`
}

// Dock returns every application in dock order, marking the open ones.
func (m *Manager) Dock() []DockItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]DockItem, len(apps))
	for i, a := range apps {
		out[i] = DockItem{App: a, Open: m.indexLocked(a.ID) >= 0}
	}
	return out
}

func (m *Manager) indexLocked(id string) int {
	for i, v := range m.open {
		if v == id {
			return i
		}
	}
	return -1
}
