// Package billingstore keeps every user's billing entries in a namespace of
// their own and hands out data-access handles bound to that namespace.
package billingstore

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"golang.org/x/sync/singleflight"
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// NamespaceName derives the namespace of a user. Ids that would need escaping
// are rejected so distinct users always get distinct names.
func NamespaceName(prefix, userID string) (string, error) {
	if !userIDPattern.MatchString(userID) {
		return "", fmt.Errorf("%w: user id %q", repository.ErrInvalidNamespace, userID)
	}
	return prefix + userID, nil
}

// OpenFunc creates the handle for a namespace. It may prepare the underlying
// storage and must be safe to call again for a name that already exists.
type OpenFunc func(ctx context.Context, name string) (repository.BillingNamespace, error)

// Registry caches one handle per user for the lifetime of the process
type Registry struct {
	prefix  string
	open    OpenFunc
	mu      sync.RWMutex
	handles map[string]repository.BillingNamespace
	opening singleflight.Group
}

// NewRegistry creates a registry that opens namespaces with open
func NewRegistry(prefix string, open OpenFunc) *Registry {
	return &Registry{
		prefix:  prefix,
		open:    open,
		handles: make(map[string]repository.BillingNamespace),
	}
}

// Resolve returns the handle for userID, opening it on first use
func (r *Registry) Resolve(ctx context.Context, userID string) (repository.BillingNamespace, error) {
	name, err := NamespaceName(r.prefix, userID)
	if err != nil {
		return nil, err
	}

	if handle, exists := r.cached(userID); exists {
		return handle, nil
	}

	// Concurrent first requests of one user share a single open. The lock is
	// not held while the store is contacted.
	v, err, _ := r.opening.Do(userID, func() (interface{}, error) {
		if handle, exists := r.cached(userID); exists {
			return handle, nil
		}

		handle, err := r.open(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("open billing namespace %s: %w", name, err)
		}

		r.mu.Lock()
		defer r.mu.Unlock()
		if existing, exists := r.handles[userID]; exists {
			return existing, nil
		}
		r.handles[userID] = handle
		return handle, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(repository.BillingNamespace), nil
}

func (r *Registry) cached(userID string) (repository.BillingNamespace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, exists := r.handles[userID]
	return handle, exists
}

// Size returns how many namespaces have been opened
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}
