package cfclient

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// Registry holds named, shared clients registered once at process startup.
// Named clients live for the lifetime of the registry; they coexist with
// dynamic clients created through New without interference.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]cloudflare.Client
}

// NewRegistry creates an empty client registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]cloudflare.Client)}
}

// Register creates a client from config and stores it under name.
// Registering the same name twice fails.
func (r *Registry) Register(name string, config *cloudflare.Config) (cloudflare.Client, error) {
	newClient, err := New(config)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[name]; exists {
		_ = newClient.Close()

		return nil, fmt.Errorf("%w: %q", cloudflare.ErrClientAlreadyRegistered, name)
	}

	r.clients[name] = newClient

	return newClient, nil
}

// Named returns the client registered under name.
func (r *Registry) Named(name string) (cloudflare.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registered, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", cloudflare.ErrClientNotRegistered, name)
	}

	return registered, nil
}

// Names returns the registered client names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Close releases every registered client and empties the registry.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error

	for name, registered := range r.clients {
		err := registered.Close()
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing client %q: %w", name, err)
		}

		delete(r.clients, name)
	}

	return firstErr
}

// DefaultRegistry is the process-wide registry used by the package-level
// functions.
var DefaultRegistry = NewRegistry()

// Register stores a named client in the default registry.
func Register(name string, config *cloudflare.Config) (cloudflare.Client, error) {
	return DefaultRegistry.Register(name, config)
}

// Named returns a client from the default registry.
func Named(name string) (cloudflare.Client, error) {
	return DefaultRegistry.Named(name)
}
