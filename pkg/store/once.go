package store

import "sync"

// Once builds a store on the first Get and returns the same result afterwards.
// A failed load is not retried.
type Once struct {
	load  func() (*Store, error)
	once  sync.Once
	store *Store
	err   error
}

// NewOnce wraps a loader
func NewOnce(load func() (*Store, error)) *Once {
	return &Once{load: load}
}

// Get returns the store, loading it on the first call. Safe for concurrent use.
func (o *Once) Get() (*Store, error) {
	o.once.Do(func() {
		o.store, o.err = o.load()
	})
	return o.store, o.err
}
