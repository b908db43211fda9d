package state

import (
	"sync"
	"time"

	"github.com/VicenteB97/randomLift/internal/lift"
)

// Entry is a recorded lift result with the scenario that produced it.
type Entry struct {
	Scenario   string
	Result     lift.Result
	ComputedAt time.Time
}

// Manager holds a concurrent-safe record of the latest successful lift result.
type Manager struct {
	mu     sync.RWMutex
	latest Entry
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Update stores a new result and records the current time.
func (m *Manager) Update(scenario string, res lift.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = Entry{Scenario: scenario, Result: res, ComputedAt: time.Now()}
}

// Latest returns the most recent entry, or ErrNoResult if nothing was recorded.
func (m *Manager) Latest() (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.latest.ComputedAt.IsZero() {
		return Entry{}, ErrNoResult
	}
	return m.latest, nil
}
