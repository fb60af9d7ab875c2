package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	"github.com/sangkips/medrep-crm/internal/domain/enum"
	"github.com/sangkips/medrep-crm/internal/domain/repository"
	"github.com/sangkips/medrep-crm/pkg/apperror"
	"github.com/sangkips/medrep-crm/pkg/spreadsheet"
	"github.com/shopspring/decimal"
)

const (
	msgNoBillingData   = "No data found in your personal billing database."
	msgExcelFailed     = "Failed to generate Excel."
	msgDownloadFailed  = "Failed to download report."
	timestampLayout    = "2006-01-02 15:04:05"
	dateLayout         = "2006-01-02"
	reportPreviewLimit = 100
)

var billingColumns = []spreadsheet.Column{
	{Header: "Doctor Name", Key: "doctorName", Width: 25},
	{Header: "Doctor Degree", Key: "doctorDegree", Width: 20},
	{Header: "Doctor Location", Key: "doctorLocation", Width: 20},
	{Header: "Sample Units", Key: "sampleUnits", Width: 15},
	{Header: "Total Order Amount", Key: "totalOrderAmount", Width: 20},
	{Header: "Discount Percentage", Key: "discountPercentage", Width: 20},
	{Header: "Net Amount", Key: "netAmount", Width: 20},
	{Header: "Timestamp", Key: "timestamp", Width: 25},
}

var salesColumns = []spreadsheet.Column{
	{Header: "Date", Key: "date", Width: 15},
	{Header: "Doctor Name", Key: "doctorName", Width: 25},
	{Header: "Doctor Degree", Key: "doctorDegree", Width: 20},
	{Header: "Doctor Location", Key: "doctorLocation", Width: 20},
	{Header: "Sample Units", Key: "sampleUnits", Width: 15},
	{Header: "Total Amount", Key: "totalAmount", Width: 18},
	{Header: "Discount %", Key: "discountPercentage", Width: 15},
	{Header: "Net Amount", Key: "netAmount", Width: 18},
	{Header: "Timestamp", Key: "timestamp", Width: 20},
}

// ExportFile is a generated download
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders billing data and sales reports as spreadsheets
type ExportService struct {
	registry repository.BillingRegistry
	reports  *ReportService
	now      func() time.Time
}

// NewExportService creates a new export service
func NewExportService(registry repository.BillingRegistry, reports *ReportService) *ExportService {
	return &ExportService{
		registry: registry,
		reports:  reports,
		now:      time.Now,
	}
}

// ExportBilling renders every entry of the user
func (s *ExportService) ExportBilling(ctx context.Context, userID string) (*ExportFile, error) {
	ns, err := resolveNamespace(ctx, s.registry, userID, msgExcelFailed)
	if err != nil {
		return nil, err
	}

	entries, err := ns.FindAll(ctx, repository.EntryFilter{})
	if err != nil {
		return nil, apperror.Wrap(err, msgExcelFailed)
	}
	if len(entries) == 0 {
		return nil, apperror.NewNotFoundError(msgNoBillingData)
	}

	content, err := spreadsheet.Render(spreadsheet.Sheet{
		Name:    "Billing Data",
		Columns: billingColumns,
		Rows: lo.Map(entries, func(e entity.BillingEntry, _ int) map[string]interface{} {
			return map[string]interface{}{
				"doctorName":         e.DoctorName,
				"doctorDegree":       e.DoctorDegree,
				"doctorLocation":     e.DoctorLocation,
				"sampleUnits":        e.SampleUnits,
				"totalOrderAmount":   e.TotalOrderAmount,
				"discountPercentage": e.DiscountPercentage,
				"netAmount":          e.NetAmount,
				"timestamp":          e.Timestamp.Format(timestampLayout),
			}
		}),
	})
	if err != nil {
		return nil, apperror.Wrap(err, msgExcelFailed)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("billing_data_user_%s_%d.xlsx", userID, s.now().UnixMilli()),
		ContentType: spreadsheet.ContentType,
		Content:     content,
	}, nil
}

// ExportSalesReport renders the entries of a period followed by a summary block
func (s *ExportService) ExportSalesReport(ctx context.Context, userID string, period enum.ReportPeriod) (*ExportFile, error) {
	entries, err := s.reports.EntriesForPeriod(ctx, userID, period)
	if err != nil {
		return nil, apperror.Wrap(err, msgDownloadFailed)
	}

	var sales, net decimal.Decimal
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		total := e.TotalOrderAmount
		if total == 0 {
			total = e.TotalAmount
		}
		sales = sales.Add(decimal.NewFromFloat(total))
		net = net.Add(decimal.NewFromFloat(e.NetAmount))

		rows = append(rows, map[string]interface{}{
			"date":               e.Timestamp.Format(dateLayout),
			"doctorName":         e.DoctorName,
			"doctorDegree":       e.DoctorDegree,
			"doctorLocation":     e.DoctorLocation,
			"sampleUnits":        e.SampleUnits,
			"totalAmount":        total,
			"discountPercentage": e.DiscountPercentage,
			"netAmount":          e.NetAmount,
			"timestamp":          e.Timestamp.Format(timestampLayout),
		})
	}

	content, err := spreadsheet.Render(spreadsheet.Sheet{
		Name:    "Sales Report",
		Columns: salesColumns,
		Rows:    rows,
		Summary: []spreadsheet.SummaryRow{
			{Label: "SUMMARY"},
			{Label: "Total Orders", Values: map[string]interface{}{"sampleUnits": len(entries)}},
			{Label: "Total Sales", Values: map[string]interface{}{"totalAmount": sales.InexactFloat64()}},
			{Label: "Total Net Sales", Values: map[string]interface{}{"netAmount": net.InexactFloat64()}},
		},
	})
	if err != nil {
		return nil, apperror.Wrap(err, msgDownloadFailed)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("sales-report-%s-%d.xlsx", period, s.now().UnixMilli()),
		ContentType: spreadsheet.ContentType,
		Content:     content,
	}, nil
}

// ReportPreview returns the first entries of a period for formats that
// cannot be rendered yet
func (s *ExportService) ReportPreview(ctx context.Context, userID string, period enum.ReportPeriod) ([]entity.BillingEntry, error) {
	entries, err := s.reports.EntriesForPeriod(ctx, userID, period)
	if err != nil {
		return nil, apperror.Wrap(err, msgDownloadFailed)
	}
	return lo.Slice(entries, 0, reportPreviewLimit), nil
}
