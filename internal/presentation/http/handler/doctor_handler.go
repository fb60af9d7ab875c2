package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/request"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/response"
)

// DoctorHandler handles doctor directory requests
type DoctorHandler struct {
	doctorService *service.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// Add handles adding a doctor to the directory
func (h *DoctorHandler) Add(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doctor, err := h.doctorService.AddDoctor(c.Request.Context(), &service.AddDoctorInput{
		UserID:   userID,
		Name:     req.Name,
		Degree:   req.Degree,
		Location: req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Doctor added successfully!", doctor)
}

// List handles listing the directory
func (h *DoctorHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	doctors, err := h.doctorService.ListDoctors(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Doctors retrieved successfully", doctors, len(doctors))
}

// Update handles renaming a doctor
func (h *DoctorHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doctor, err := h.doctorService.RenameDoctor(c.Request.Context(), &service.RenameDoctorInput{
		UserID:   userID,
		OldName:  req.OldName,
		NewName:  req.NewName,
		Degree:   req.Degree,
		Location: req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor updated successfully!", doctor)
}
