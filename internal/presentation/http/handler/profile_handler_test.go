package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileMocks struct {
	profiles *mocks.MockProfileRepository
	visits   *mocks.MockVisitRepository
	doctors  *mocks.MockDoctorRepository
}

func newProfileRouter(t *testing.T) (*gin.Engine, profileMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := profileMocks{
		profiles: mocks.NewMockProfileRepository(ctrl),
		visits:   mocks.NewMockVisitRepository(ctrl),
		doctors:  mocks.NewMockDoctorRepository(ctrl),
	}
	txManager := mocks.NewMockTxManager(ctrl)
	txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	h := NewProfileHandler(service.NewProfileService(m.profiles, m.visits, m.doctors, txManager))
	r := newTestRouter("userA")
	r.GET("/billing/profile", h.Get)
	r.PUT("/billing/profile", h.Update)
	r.PUT("/billing/profile/visits/update", h.ReplaceVisits)
	r.DELETE("/billing/profile/visit/:visitId", h.DeleteVisit)
	return r, m
}

func TestProfileHandler_GetCreatesProfile(t *testing.T) {
	r, m := newProfileRouter(t)
	m.profiles.EXPECT().GetByUserID(gomock.Any(), "userA").Return(nil, nil)
	m.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	w := perform(t, r, http.MethodGet, "/billing/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile entity.UserProfile
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &profile))
	assert.Equal(t, "userA", profile.UserID)
	assert.Equal(t, "Rep userA", profile.Name)
	assert.Equal(t, "userA@example.com", profile.Email)
}

func TestProfileHandler_Update(t *testing.T) {
	r, m := newProfileRouter(t)
	m.profiles.EXPECT().GetByUserID(gomock.Any(), "userA").Return(&entity.UserProfile{UserID: "userA", Name: "Old", Phone: "123"}, nil)
	m.profiles.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	w := perform(t, r, http.MethodPut, "/billing/profile", map[string]string{"name": " New "})
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.Equal(t, "Profile updated successfully!", env.Message)
	var profile entity.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "New", profile.Name)
	assert.Equal(t, "123", profile.Phone)
}

func TestProfileHandler_ReplaceVisitsRequiresVersion(t *testing.T) {
	r, _ := newProfileRouter(t)

	w := perform(t, r, http.MethodPut, "/billing/profile/visits/update", map[string]interface{}{
		"doctorVisits": []map[string]interface{}{{"doctorName": "Dr. A", "doctorDegree": "MD", "noOfVisits": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode(t, w).Message)
}

func TestProfileHandler_DeleteVisit(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		r, _ := newProfileRouter(t)

		w := perform(t, r, http.MethodDelete, "/billing/profile/visit/not-a-uuid", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Visit not found.", decode(t, w).Message)
	})

	t.Run("no profile", func(t *testing.T) {
		r, m := newProfileRouter(t)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "userA").Return(nil, nil)

		w := perform(t, r, http.MethodDelete, "/billing/profile/visit/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Visit not found.", decode(t, w).Message)
	})
}
