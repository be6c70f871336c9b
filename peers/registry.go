// Package peers tracks the network addresses of known peer nodes.
package peers

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// ErrInvalidAddress is returned when no host authority can be extracted
// from a peer address.
var ErrInvalidAddress = errors.New("invalid peer address")

// Registry is a deduplicated set of peer authorities ("host:port" or bare
// host). It is owned by the node and only ever accessed through its
// methods. A node's own address is never implicitly included.
type Registry struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{set: make(map[string]struct{})}
}

// Register normalizes address and adds it to the set. Full URLs are reduced
// to their host:port authority; bare host strings are accepted as-is.
// Re-registering an address is a no-op.
func (r *Registry) Register(address string) error {
	host, err := normalize(address)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.set[host] = struct{}{}
	return nil
}

// Contains reports whether the normalized form of address is registered.
func (r *Registry) Contains(address string) bool {
	host, err := normalize(address)
	if err != nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.set[host]
	return ok
}

// Addresses returns the registered peers sorted for stable output.
func (r *Registry) Addresses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addresses := make([]string, 0, len(r.set))
	for address := range r.set {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses
}

// Len returns the number of registered peers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.set)
}

// normalize extracts the host authority from a peer address. Accepted
// forms: "http://host:port", "host:port", "host", and a scheme-less host
// with a path ("host/sub"), which is kept whole.
func normalize(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidAddress)
	}

	if u, err := url.Parse(trimmed); err == nil {
		if u.Host != "" {
			return u.Host, nil
		}
		// A bare host without scheme parses into the path component.
		if u.Scheme == "" && u.Opaque == "" && u.Path != "" {
			return u.Path, nil
		}
	}

	// "host:port" without a scheme is not a parsable URL; force an
	// authority parse. Anything containing a slash already had its shot
	// above.
	if !strings.Contains(trimmed, "/") {
		if u, err := url.Parse("//" + trimmed); err == nil && u.Host != "" {
			return u.Host, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
}
