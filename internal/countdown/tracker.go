package countdown

import "sync"

// Tracker fires an edge trigger per event id: Observe reports true the
// first time an id is seen elapsed after being seen pending (or never
// seen). A pending observation re-arms the id.
type Tracker struct {
	mu     sync.Mutex
	played map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{played: make(map[string]bool)}
}

// Observe records b for id and reports whether the alert should fire now.
func (t *Tracker) Observe(id string, b Breakdown) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !b.Elapsed {
		delete(t.played, id)
		return false
	}
	if t.played[id] {
		return false
	}
	t.played[id] = true
	return true
}

// Forget drops the state of id.
func (t *Tracker) Forget(id string) {
	t.mu.Lock()
	delete(t.played, id)
	t.mu.Unlock()
}

// Retain drops the state of every id not in keep.
func (t *Tracker) Retain(keep map[string]struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id := range t.played {
		if _, ok := keep[id]; !ok {
			delete(t.played, id)
		}
	}
}

// Played reports whether the alert for id has fired and not been re-armed.
func (t *Tracker) Played(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.played[id]
}
