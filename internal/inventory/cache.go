// Package inventory keeps a local cache of known servers consistent with
// the provider's view.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/herdware/herdctl/internal/provider"
)

// ErrNotFound is returned by Lookup when no server with the requested name
// exists in the current snapshot.
var ErrNotFound = errors.New("server not found")

// NotFoundError wraps ErrNotFound with the name that missed.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("server not found: %s", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsNotFound checks if an error indicates an unknown server name.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Cache is an in-memory mapping of server name to provider record.
//
// The cache is never refreshed implicitly: callers call Refresh when they
// want a new snapshot, and every Lookup until the next Refresh answers from
// that same snapshot. Deletion is the one exception, where Remove drops an
// entry without re-listing.
type Cache struct {
	lister  provider.ServerManager
	servers map[string]*provider.Server
}

// New creates an empty cache backed by the given server manager.
func New(lister provider.ServerManager) *Cache {
	return &Cache{
		lister:  lister,
		servers: make(map[string]*provider.Server),
	}
}

// Refresh replaces the snapshot with the provider's current full listing.
// On error the previous snapshot is kept.
func (c *Cache) Refresh(ctx context.Context) error {
	servers, err := c.lister.ListServers(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh inventory: %w", err)
	}
	next := make(map[string]*provider.Server, len(servers))
	for _, s := range servers {
		next[s.Name] = s
	}
	c.servers = next
	return nil
}

// Lookup returns the server with the given name from the current snapshot.
func (c *Cache) Lookup(name string) (*provider.Server, error) {
	s, ok := c.servers[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return s, nil
}

// Remove drops an entry from the snapshot without consulting the provider.
// Used after a deletion that was not verified by polling.
func (c *Cache) Remove(name string) {
	delete(c.servers, name)
}

// Names returns the names in the current snapshot, sorted.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.servers))
	for name := range c.servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
