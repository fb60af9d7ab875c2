package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medrep-crm/internal/application/service"
	"github.com/sangkips/medrep-crm/internal/domain/enum"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/request"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/response"
)

// ReportHandler handles summary and sales report requests
type ReportHandler struct {
	reportService *service.ReportService
	exportService *service.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, exportService *service.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// BusinessSummary handles the per-doctor business summary
func (h *ReportHandler) BusinessSummary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	summaries, err := h.reportService.DoctorBusinessSummary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Doctor business summary retrieved successfully!", summaries, len(summaries))
}

// SalesReport handles generating the sales report of a period
func (h *ReportHandler) SalesReport(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var query request.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	report, err := h.reportService.SalesReport(c.Request.Context(), userID, enum.ParseReportPeriod(query.Period))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated successfully!", report)
}

// DownloadReport handles exporting the sales report. Only the excel format
// renders a file; other formats get the entries back as JSON.
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var query request.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	period := enum.ParseReportPeriod(query.Period)

	if strings.EqualFold(strings.TrimSpace(query.Format), "excel") {
		file, err := h.exportService.ExportSalesReport(c.Request.Context(), userID, period)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.File(c, file.Filename, file.ContentType, file.Content)
		return
	}

	entries, err := h.exportService.ReportPreview(c.Request.Context(), userID, period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "PDF generation not implemented yet. Use Excel format.", entries, len(entries))
}
