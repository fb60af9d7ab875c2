package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository/mocks"
	"github.com/sangkips/medrep-crm/internal/infrastructure/billingstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingRouter(t *testing.T, userID string) (*gin.Engine, *mocks.MockDoctorRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	doctorRepo := mocks.NewMockDoctorRepository(ctrl)
	profileRepo := mocks.NewMockProfileRepository(ctrl)
	registry := billingstore.NewMemoryRegistry("billing_")

	reports := service.NewReportService(registry, profileRepo)
	h := NewBillingHandler(service.NewBillingService(registry, doctorRepo), service.NewExportService(registry, reports))

	r := newTestRouter(userID)
	r.POST("/billing/save", h.Save)
	r.GET("/billing/all", h.List)
	r.GET("/billing/download", h.Download)
	r.POST("/billing/create-sample", h.CreateSample)
	r.DELETE("/billing/clean-corrupted-data", h.CleanCorrupted)
	r.PUT("/billing/:id", h.Update)
	r.DELETE("/billing/:id", h.Delete)
	return r, doctorRepo
}

var validBilling = map[string]interface{}{
	"doctorName":         "Dr. A",
	"doctorDegree":       "MD",
	"doctorLocation":     "Pune",
	"sampleUnits":        "10",
	"totalOrderAmount":   1000,
	"discountPercentage": 10,
}

func TestBillingHandler_Save(t *testing.T) {
	r, _ := newBillingRouter(t, "userA")

	w := perform(t, r, http.MethodPost, "/billing/save", validBilling)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Data saved to your personal billing database successfully!", env.Message)

	var entry entity.BillingEntry
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, "Dr. A", entry.DoctorName)
	assert.InDelta(t, 900, entry.NetAmount, 1e-9)
	assert.InDelta(t, 100, entry.MRAmount, 1e-9)
}

func TestBillingHandler_SaveValidation(t *testing.T) {
	r, _ := newBillingRouter(t, "userA")

	body := map[string]interface{}{}
	for k, v := range validBilling {
		body[k] = v
	}
	body["sampleUnits"] = 0

	w := perform(t, r, http.MethodPost, "/billing/save", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Sample units must be a valid number greater than 0.", env.Message)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "sampleUnits", env.Errors[0].Field)

	w = perform(t, r, http.MethodGet, "/billing/all", nil)
	env = decode(t, w)
	assert.Equal(t, "Found 0 entries in your personal billing database", env.Message)
}

func TestBillingHandler_SaveRejectsMalformedBody(t *testing.T) {
	r, _ := newBillingRouter(t, "userA")

	w := perform(t, r, http.MethodPost, "/billing/save", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode(t, w).Message)
}

func TestBillingHandler_RequiresUser(t *testing.T) {
	r, _ := newBillingRouter(t, "")

	w := perform(t, r, http.MethodGet, "/billing/all", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBillingHandler_ListIsolatesUsers(t *testing.T) {
	r, _ := newBillingRouter(t, "userA")
	require.Equal(t, http.StatusOK, perform(t, r, http.MethodPost, "/billing/save", validBilling).Code)

	w := perform(t, r, http.MethodGet, "/billing/all", nil)
	env := decode(t, w)
	assert.Equal(t, "Found 1 entries in your personal billing database", env.Message)

	var list struct {
		Items []entity.BillingEntry `json:"items"`
		Count int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Dr. A", list.Items[0].DoctorName)
}

func TestBillingHandler_UpdateAndDelete(t *testing.T) {
	r, _ := newBillingRouter(t, "userA")

	w := perform(t, r, http.MethodPost, "/billing/save", validBilling)
	var entry entity.BillingEntry
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &entry))
	id := entry.ID.Hex()

	w = perform(t, r, http.MethodPut, "/billing/"+id, map[string]interface{}{"doctorLocation": " Mumbai "})
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Entry updated successfully!", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, "Mumbai", entry.DoctorLocation)
	assert.InDelta(t, 900, entry.NetAmount, 1e-9)

	w = perform(t, r, http.MethodDelete, "/billing/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Entry deleted successfully!", decode(t, w).Message)

	w = perform(t, r, http.MethodDelete, "/billing/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entry not found.", decode(t, w).Message)
}

func TestBillingHandler_CreateSampleAndClean(t *testing.T) {
	r, _ := newBillingRouter(t, "userA")

	w := perform(t, r, http.MethodPost, "/billing/create-sample", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Sample data created successfully in your personal billing database", env.Message)

	var sample struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sample))
	assert.Equal(t, 3, sample.Count)

	w = perform(t, r, http.MethodDelete, "/billing/clean-corrupted-data", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w)
	assert.Equal(t, "Corrupted billing data cleaned successfully!", env.Message)
	assert.JSONEq(t, `{"deletedCount":0}`, string(env.Data))
}

func TestBillingHandler_Download(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		r, _ := newBillingRouter(t, "userA")

		w := perform(t, r, http.MethodGet, "/billing/download", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No data found in your personal billing database.", decode(t, w).Message)
	})

	t.Run("spreadsheet attachment", func(t *testing.T) {
		r, _ := newBillingRouter(t, "userA")
		require.Equal(t, http.StatusOK, perform(t, r, http.MethodPost, "/billing/create-sample", nil).Code)

		w := perform(t, r, http.MethodGet, "/billing/download", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=billing_data_user_userA_")
		assert.Equal(t, strconv.Itoa(w.Body.Len()), w.Header().Get("Content-Length"))
		assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	})
}
