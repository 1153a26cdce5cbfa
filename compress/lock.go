package compress

import (
	"sync"
	"time"
)

// Registry is the process-wide lock and lifecycle manager: a single
// RWMutex guarding every model row's mutable fields (loaded, libref,
// adapter) plus the shared rate-limit timestamp.
//
// A single *Registry is meant to be shared by every transport handle in
// the process. Default is the package-level DefaultRegistry; tests
// construct their own so model state and rate-limit history don't leak
// between cases.
type Registry struct {
	mu              sync.RWMutex
	rows            []modelDescriptor
	lastLoadFailure time.Time
	clock           Clock
	log             Logger
}

// DefaultRegistry is the process-wide instance transport handles use
// unless constructed with an explicit one (as in tests).
var DefaultRegistry = NewRegistry()

// NewRegistry builds a Registry with its own copy of the static model
// table, so tests can load/unload/fail back-ends without perturbing other
// tests or the process-wide default.
func NewRegistry() *Registry {
	rows := make([]modelDescriptor, len(modelTable))
	copy(rows, modelTable)
	return &Registry{rows: rows, clock: realClock{}, log: GlogLogger{}}
}

func (r *Registry) row(id uint8) *modelDescriptor {
	idx, ok := lookupByID(id)
	if !ok {
		return nil
	}
	return &r.rows[idx]
}

// rateLimited reports, under whatever lock the caller already holds,
// whether a load attempt must be refused because a prior failure (on any
// model — the window is process-wide by design) is still within
// rateLimitWindow.
func (r *Registry) rateLimited() bool {
	if r.lastLoadFailure.IsZero() {
		return false
	}
	return r.clock.Now().Sub(r.lastLoadFailure) < rateLimitWindow
}

// ensureInit ensures the back-end for id is loaded and charged against h,
// returning a release closure the caller must invoke exactly once instead
// of documenting "caller releases the lock later" in prose.
//
// id must already have been validated as builtIn by the caller.
// rateLimit is true only on the decompress path.
func (r *Registry) ensureInit(h *HandleState, id uint8, rateLimit bool) (release func(), err error) {
	row := r.row(id)

	r.mu.RLock()
	if row.loaded && r.handleCharged(h, row, id) {
		return r.mu.RUnlock, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	if rateLimit && r.rateLimited() {
		r.mu.Unlock()
		return nil, ErrRateLimited
	}

	if !row.loaded {
		adapter := row.newFn()
		if err := adapter.Load(); err != nil {
			r.lastLoadFailure = r.clock.Now()
			r.mu.Unlock()
			r.log.Errorf("model %s: load failed: %v", row.name, err)
			return nil, wrapf(ErrLoadFailure, "model %s: %v", row.name, err)
		}
		row.adapter = adapter
		row.loaded = true
	}

	if sa, ok := row.adapter.(StatefulAdapter); ok {
		state, err := sa.Init()
		if err != nil {
			r.mu.Unlock()
			r.log.Errorf("model %s: init failed: %v", row.name, err)
			return nil, wrapf(ErrInitFailure, "model %s: %v", row.name, err)
		}
		h.setState(id, state)
	} else {
		h.charged[id] = true
	}

	row.libref++
	return r.mu.Unlock, nil
}

// handleCharged implements ensureInit's step 2: "already loaded, and
// either the back-end is stateless and this handle's slot is charged, or
// IsInit reports true." Must be called with at least r.mu.RLock held.
func (r *Registry) handleCharged(h *HandleState, row *modelDescriptor, id uint8) bool {
	sa, stateful := row.adapter.(StatefulAdapter)
	if !stateful {
		return h.charged[id]
	}
	return sa.IsInit(h.state(id))
}

// releaseCharge decrements libref for id on behalf of h and, if it reaches
// zero, unloads the back-end. Used by Configure to unwind a charge taken
// by ensureInit when a later validation step (level, threshold) fails, and
// by HandleState.Close for every model the handle ever charged.
func (r *Registry) releaseCharge(h *HandleState, id uint8) {
	row := r.row(id)
	if row == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if sa, ok := row.adapter.(StatefulAdapter); ok {
		sa.Fini(h.state(id))
		h.clearState(id)
	} else {
		h.charged[id] = false
	}

	if row.libref > 0 {
		row.libref--
	}
	if row.libref == 0 && row.loaded {
		row.adapter.Unload()
		row.adapter = nil
		row.loaded = false
	}
}

// libref exposes the current refcount for id, for tests asserting
// load/unload and charge/release invariants.
func (r *Registry) libref(id uint8) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row := r.row(id)
	if row == nil {
		return 0
	}
	return row.libref
}

func (r *Registry) isLoaded(id uint8) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row := r.row(id)
	if row == nil {
		return false
	}
	return row.loaded
}
