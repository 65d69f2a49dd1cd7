package layout

import (
	"sync"

	"github.com/gbtux/teammanager/internal/domain"
)

// Table owns the rendered rectangle of every mounted feature. Entries are
// added on mount and removed on unmount; readers always get copies.
type Table struct {
	mu        sync.RWMutex
	positions map[string]domain.FeaturePosition
	version   uint64
}

func NewTable() *Table {
	return &Table{positions: make(map[string]domain.FeaturePosition)}
}

// Mount inserts or replaces the position of p.ID.
func (t *Table) Mount(p domain.FeaturePosition) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.positions[p.ID] = p
	t.version++
}

// Update changes the position of a mounted feature. It reports false, and
// does nothing, when p.ID is not mounted or the position is unchanged.
func (t *Table) Update(p domain.FeaturePosition) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	current, ok := t.positions[p.ID]
	if !ok || current == p {
		return false
	}
	t.positions[p.ID] = p
	t.version++
	return true
}

// Unmount removes id and reports whether it was present.
func (t *Table) Unmount(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.positions[id]; !ok {
		return false
	}
	delete(t.positions, id)
	t.version++
	return true
}

// Sync makes the table hold exactly positions: new ids are mounted,
// known ids updated and ids no longer present unmounted.
func (t *Table) Sync(positions []domain.FeaturePosition) {
	t.mu.Lock()
	defer t.mu.Unlock()
	seen := make(map[string]bool, len(positions))
	changed := false
	for _, p := range positions {
		seen[p.ID] = true
		if current, ok := t.positions[p.ID]; !ok || current != p {
			t.positions[p.ID] = p
			changed = true
		}
	}
	for id := range t.positions {
		if !seen[id] {
			delete(t.positions, id)
			changed = true
		}
	}
	if changed {
		t.version++
	}
}

func (t *Table) Get(id string) (domain.FeaturePosition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.positions[id]
	return p, ok
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.positions)
}

// Snapshot returns a copy of every mounted position.
func (t *Table) Snapshot() map[string]domain.FeaturePosition {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]domain.FeaturePosition, len(t.positions))
	for id, p := range t.positions {
		out[id] = p
	}
	return out
}

// Version increases on every change.
func (t *Table) Version() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}
