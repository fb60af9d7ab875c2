package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/request"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/response"
)

// BillingHandler handles billing entry HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
	exportService  *service.ExportService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService, exportService *service.ExportService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		exportService:  exportService,
	}
}

// Save handles creating a billing entry
func (h *BillingHandler) Save(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.BillingEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.billingService.CreateEntry(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data saved to your personal billing database successfully!", entry)
}

// List handles listing the billing entries of the user
func (h *BillingHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	entries, err := h.billingService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, fmt.Sprintf("Found %d entries in your personal billing database", len(entries)), entries, len(entries))
}

// Download handles exporting every billing entry as a spreadsheet
func (h *BillingHandler) Download(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	file, err := h.exportService.ExportBilling(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.File(c, file.Filename, file.ContentType, file.Content)
}

// CreateSample handles inserting the sample entries
func (h *BillingHandler) CreateSample(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	entries, err := h.billingService.CreateSampleData(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sample data created successfully in your personal billing database", gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// Update handles patching a billing entry
func (h *BillingHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.BillingEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.billingService.UpdateEntry(c.Request.Context(), userID, c.Param("id"), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry updated successfully!", entry)
}

// Delete handles removing a billing entry
func (h *BillingHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.billingService.DeleteEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Entry deleted successfully!", nil)
}

// CleanCorrupted handles removing entries without a doctor identity
func (h *BillingHandler) CleanCorrupted(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	deleted, err := h.billingService.SweepCorrupted(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Corrupted billing data cleaned successfully!", gin.H{"deletedCount": deleted})
}
