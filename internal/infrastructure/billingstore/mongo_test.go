package billingstore

import (
	"testing"
	"time"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterDocumentEmpty(t *testing.T) {
	assert.Empty(t, filterDocument(repository.EntryFilter{}))
}

func TestFilterDocumentWindow(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	doc := filterDocument(repository.EntryFilter{From: &from, To: &to})

	window, ok := doc["timestamp"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, from, window["$gte"])
	assert.Equal(t, to, window["$lte"])
}

func TestFilterDocumentMissingIdentity(t *testing.T) {
	doc := filterDocument(repository.EntryFilter{MissingDoctorIdentity: true})

	or, ok := doc["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 4)
	assert.Contains(t, or, bson.M{"doctorName": ""})
	assert.Contains(t, or, bson.M{"doctorDegree": nil})
}

func TestSetDocument(t *testing.T) {
	name := "Dr. B"
	net := 850.0

	set := setDocument(&entity.BillingPatch{DoctorName: &name, NetAmount: &net})

	assert.Equal(t, bson.M{"doctorName": "Dr. B", "netAmount": 850.0}, set)
	assert.Empty(t, setDocument(&entity.BillingPatch{}))
	assert.Empty(t, setDocument(nil))
}
