package surface

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// ErrUnknownBackend is returned by New for a name nothing registered.
var ErrUnknownBackend = errors.New("unknown surface backend")

// Factory creates a surface that writes its finished document to w.
// Backends that produce no bytes may ignore w.
type Factory func(w io.Writer) Surface

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// Register makes a backend available by name. It is called from the
// init function of each backend package and panics on a nil factory or a
// duplicate name.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("surface: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("surface: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. Used by tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// New creates a surface from the named backend.
func New(name string, w io.Writer) (Surface, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(w), nil
}

// Backends returns the registered names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name has a backend.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
