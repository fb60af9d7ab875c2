package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/request"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/response"
)

// ProfileHandler handles profile and doctor visit requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles fetching the profile, creating it on first access
func (h *ProfileHandler) Get(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", profile)
}

// Update handles updating the profile details
func (h *ProfileHandler) Update(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), identity, &service.UpdateProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Designation: req.Designation,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully!", profile)
}

// RecordVisit handles counting one visit to a doctor
func (h *ProfileHandler) RecordVisit(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.RecordVisit(c.Request.Context(), identity, &service.RecordVisitInput{
		DoctorName:     req.DoctorName,
		DoctorDegree:   req.DoctorDegree,
		DoctorLocation: req.DoctorLocation,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor visit recorded!", profile)
}

// ReplaceVisits handles replacing the whole visit list
func (h *ProfileHandler) ReplaceVisits(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ReplaceVisitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.ReplaceVisitsInput{
		Version: *req.Version,
		Visits: lo.Map(req.DoctorVisits, func(v request.VisitRequest, _ int) service.VisitInput {
			return service.VisitInput{
				ID:           v.ID,
				DoctorName:   v.DoctorName,
				DoctorDegree: v.DoctorDegree,
				NoOfVisits:   v.NoOfVisits,
			}
		}),
	}

	profile, err := h.profileService.ReplaceVisits(c.Request.Context(), identity, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor visits updated successfully!", profile)
}

// DeleteVisit handles removing a visit by id
func (h *ProfileHandler) DeleteVisit(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	visitID, err := uuid.Parse(c.Param("visitId"))
	if err != nil {
		response.NotFound(c, "Visit not found.")
		return
	}

	profile, err := h.profileService.DeleteVisit(c.Request.Context(), identity, visitID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor visit deleted successfully!", profile)
}
