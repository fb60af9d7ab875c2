package billingstore

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newEntry(name, degree string, ts time.Time) *entity.BillingEntry {
	return &entity.BillingEntry{
		DoctorName:       name,
		DoctorDegree:     degree,
		DoctorLocation:   "Pune",
		SampleUnits:      10,
		TotalOrderAmount: 1000,
		NetAmount:        900,
		Timestamp:        ts,
	}
}

func TestMemoryNamespaceFindAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	now := time.Now()

	require.NoError(t, ns.Insert(ctx, newEntry("Dr. Old", "MD", now.Add(-2*time.Hour))))
	require.NoError(t, ns.Insert(ctx, newEntry("Dr. New", "MD", now)))
	require.NoError(t, ns.Insert(ctx, newEntry("Dr. Mid", "MD", now.Add(-time.Hour))))

	entries, err := ns.FindAll(ctx, repository.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Dr. New", entries[0].DoctorName)
	assert.Equal(t, "Dr. Mid", entries[1].DoctorName)
	assert.Equal(t, "Dr. Old", entries[2].DoctorName)
}

func TestMemoryNamespaceFindAllWindow(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	now := time.Now()

	require.NoError(t, ns.Insert(ctx, newEntry("Dr. In", "MD", now.Add(-24*time.Hour))))
	require.NoError(t, ns.Insert(ctx, newEntry("Dr. Out", "MD", now.Add(-10*24*time.Hour))))

	from := now.Add(-7 * 24 * time.Hour)
	entries, err := ns.FindAll(ctx, repository.EntryFilter{From: &from, To: &now})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Dr. In", entries[0].DoctorName)
}

func TestMemoryNamespaceFindByID(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	e := newEntry("Dr. A", "MD", time.Now())
	require.NoError(t, ns.Insert(ctx, e))
	require.False(t, e.ID.IsZero())

	found, err := ns.FindByID(ctx, e.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Dr. A", found.DoctorName)

	missing, err := ns.FindByID(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, missing)

	malformed, err := ns.FindByID(ctx, "not-an-id")
	require.NoError(t, err)
	assert.Nil(t, malformed)
}

func TestMemoryNamespaceInsertDuplicate(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	e := newEntry("Dr. A", "MD", time.Now())
	require.NoError(t, ns.Insert(ctx, e))

	dup := *e
	assert.Error(t, ns.Insert(ctx, &dup))
}

func TestMemoryNamespaceUpdateByID(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	e := newEntry("Dr. A", "MD", time.Now())
	require.NoError(t, ns.Insert(ctx, e))

	units := 25.0
	location := "Nagpur"
	updated, err := ns.UpdateByID(ctx, e.ID.Hex(), &entity.BillingPatch{SampleUnits: &units, DoctorLocation: &location})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 25.0, updated.SampleUnits)
	assert.Equal(t, "Nagpur", updated.DoctorLocation)
	assert.Equal(t, 1000.0, updated.TotalOrderAmount)

	missing, err := ns.UpdateByID(ctx, primitive.NewObjectID().Hex(), &entity.BillingPatch{SampleUnits: &units})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryNamespaceDeleteByID(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	e := newEntry("Dr. A", "MD", time.Now())
	require.NoError(t, ns.Insert(ctx, e))

	deleted, err := ns.DeleteByID(ctx, e.ID.Hex())
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = ns.DeleteByID(ctx, e.ID.Hex())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryNamespaceDeleteManyMissingIdentity(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	now := time.Now()

	require.NoError(t, ns.InsertMany(ctx, []*entity.BillingEntry{
		newEntry("Dr. A", "MD", now),
		newEntry("", "MD", now),
		newEntry("Dr. C", "", now),
		newEntry("", "", now),
		newEntry("Dr. E", "MS", now),
	}))

	deleted, err := ns.DeleteMany(ctx, repository.EntryFilter{MissingDoctorIdentity: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	left, err := ns.FindAll(ctx, repository.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, left, 2)
	for _, e := range left {
		assert.True(t, e.HasDoctorIdentity())
	}
}

func TestMemoryNamespaceDeleteManyAll(t *testing.T) {
	ctx := context.Background()
	ns := newMemoryNamespace("billing_u1")
	now := time.Now()
	require.NoError(t, ns.InsertMany(ctx, []*entity.BillingEntry{newEntry("A", "B", now), newEntry("C", "D", now)}))

	deleted, err := ns.DeleteMany(ctx, repository.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
