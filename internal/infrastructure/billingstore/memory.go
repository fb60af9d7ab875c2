package billingstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryRegistry creates a registry whose namespaces live in process memory
func NewMemoryRegistry(prefix string) *Registry {
	return NewRegistry(prefix, func(_ context.Context, name string) (repository.BillingNamespace, error) {
		return newMemoryNamespace(name), nil
	})
}

type memoryNamespace struct {
	name    string
	mu      sync.RWMutex
	entries map[primitive.ObjectID]entity.BillingEntry
}

func newMemoryNamespace(name string) *memoryNamespace {
	return &memoryNamespace{
		name:    name,
		entries: make(map[primitive.ObjectID]entity.BillingEntry),
	}
}

func (n *memoryNamespace) Name() string {
	return n.name
}

func (n *memoryNamespace) FindAll(_ context.Context, filter repository.EntryFilter) ([]entity.BillingEntry, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	entries := make([]entity.BillingEntry, 0, len(n.entries))
	for _, e := range n.entries {
		if matches(&e, filter) {
			entries = append(entries, e)
		}
	}
	sortNewestFirst(entries)
	return entries, nil
}

func (n *memoryNamespace) FindByID(_ context.Context, id string) (*entity.BillingEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	e, ok := n.entries[oid]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (n *memoryNamespace) Insert(_ context.Context, entry *entity.BillingEntry) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.insertLocked(entry)
}

func (n *memoryNamespace) InsertMany(_ context.Context, entries []*entity.BillingEntry) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, e := range entries {
		if err := n.insertLocked(e); err != nil {
			return err
		}
	}
	return nil
}

func (n *memoryNamespace) insertLocked(entry *entity.BillingEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, exists := n.entries[entry.ID]; exists {
		return fmt.Errorf("duplicate key %s in %s", entry.ID.Hex(), n.name)
	}
	n.entries[entry.ID] = *entry
	return nil
}

func (n *memoryNamespace) UpdateByID(_ context.Context, id string, patch *entity.BillingPatch) (*entity.BillingEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	e, ok := n.entries[oid]
	if !ok {
		return nil, nil
	}
	patch.ApplyTo(&e)
	n.entries[oid] = e
	return &e, nil
}

func (n *memoryNamespace) DeleteByID(_ context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.entries[oid]; !ok {
		return false, nil
	}
	delete(n.entries, oid)
	return true, nil
}

func (n *memoryNamespace) DeleteMany(_ context.Context, filter repository.EntryFilter) (int64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var deleted int64
	for id, e := range n.entries {
		if matches(&e, filter) {
			delete(n.entries, id)
			deleted++
		}
	}
	return deleted, nil
}

func matches(e *entity.BillingEntry, filter repository.EntryFilter) bool {
	if filter.From != nil && e.Timestamp.Before(*filter.From) {
		return false
	}
	if filter.To != nil && e.Timestamp.After(*filter.To) {
		return false
	}
	if filter.MissingDoctorIdentity && e.DoctorName != "" && e.DoctorDegree != "" {
		return false
	}
	return true
}

// sortNewestFirst orders by timestamp descending, then by id descending so
// entries written in the same instant keep insertion order reversed
func sortNewestFirst(entries []entity.BillingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID.Hex() > entries[j].ID.Hex()
	})
}
