package theme

import (
	"sync"

	"go.uber.org/zap"
)

// StorageFunc returns the Storage for one visitor.
type StorageFunc func(visitorID string) Storage

// Registry hands out one Store per visitor so that every open page of the
// same visitor observes the same flag.
type Registry struct {
	mu      sync.Mutex
	storage StorageFunc
	logger  *zap.Logger
	stores  map[string]*entry
}

type entry struct {
	store *Store
	refs  int
}

// NewRegistry creates a Registry that builds stores on demand.
func NewRegistry(storage StorageFunc, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		storage: storage,
		logger:  logger,
		stores:  make(map[string]*entry),
	}
}

// For returns the visitor's Store and takes a reference on it. Every
// call must be paired with Release.
func (r *Registry) For(visitorID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.stores[visitorID]
	if !ok {
		e = &entry{store: NewStore(r.storage(visitorID), r.logger.With(zap.String("visitor", visitorID)))}
		r.stores[visitorID] = e
	}
	e.refs++
	return e.store
}

// Release drops a reference taken by For. The store is forgotten once no
// page holds it; the persisted flag survives.
func (r *Registry) Release(visitorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.stores[visitorID]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(r.stores, visitorID)
	}
}

// Len returns the number of live stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
