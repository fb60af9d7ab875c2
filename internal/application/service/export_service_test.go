package service

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/medrep-crm/internal/domain/enum"
	"github.com/sangkips/medrep-crm/pkg/apperror"
	"github.com/sangkips/medrep-crm/pkg/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportService(t *testing.T) (*ExportService, *ReportService) {
	reports, registry, _ := newReportService(t)
	svc := NewExportService(registry, reports)
	svc.now = func() time.Time { return fixedNow }
	return svc, reports
}

func openWorkbook(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExportService_ExportBilling(t *testing.T) {
	svc, reports := newExportService(t)
	seedEntries(t, reports.registry, "userA",
		billingEntry("Dr. A", "MD", 1000, 900, fixedNow),
		billingEntry("Dr. B", "MS", 500, 450, fixedNow.Add(-time.Hour)),
	)

	file, err := svc.ExportBilling(context.Background(), "userA")
	require.NoError(t, err)
	assert.Equal(t, spreadsheet.ContentType, file.ContentType)
	assert.Equal(t, "billing_data_user_userA_1715767200000.xlsx", file.Filename)

	f := openWorkbook(t, file.Content)
	rows, err := f.GetRows("Billing Data")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Doctor Name", rows[0][0])
	assert.Equal(t, "Timestamp", rows[0][7])
	assert.Equal(t, "Dr. A", rows[1][0])
	assert.Equal(t, "900", rows[1][6])
	assert.Equal(t, "2024-05-15 10:00:00", rows[1][7])
	assert.Equal(t, "Dr. B", rows[2][0])
}

func TestExportService_ExportBillingEmpty(t *testing.T) {
	svc, _ := newExportService(t)

	_, err := svc.ExportBilling(context.Background(), "userA")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "No data found in your personal billing database.", appErr.Message)
}

func TestExportService_ExportSalesReport(t *testing.T) {
	svc, reports := newExportService(t)
	seedEntries(t, reports.registry, "userA",
		billingEntry("Dr. A", "MD", 1000, 900, fixedNow),
		billingEntry("Dr. B", "MS", 500, 450, fixedNow.AddDate(0, 0, -3)),
		billingEntry("Dr. Old", "MS", 700, 700, fixedNow.AddDate(0, 0, -30)),
	)

	file, err := svc.ExportSalesReport(context.Background(), "userA", enum.ReportPeriodWeek)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Filename, "sales-report-week-"))
	assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))

	f := openWorkbook(t, file.Content)
	rows, err := f.GetRows("Sales Report")
	require.NoError(t, err)

	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2024-05-15", rows[1][0])
	assert.Equal(t, "Dr. B", rows[2][1])

	// header, two entries, blank row, then the summary block
	total, err := f.GetCellValue("Sales Report", "A5")
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY", total)

	label, err := f.GetCellValue("Sales Report", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Total Orders", label)
	orders, err := f.GetCellValue("Sales Report", "E6")
	require.NoError(t, err)
	assert.Equal(t, "2", orders)

	sales, err := f.GetCellValue("Sales Report", "F7")
	require.NoError(t, err)
	assert.Equal(t, "1500", sales)

	net, err := f.GetCellValue("Sales Report", "H8")
	require.NoError(t, err)
	assert.Equal(t, "1350", net)
}

func TestExportService_ReportPreview(t *testing.T) {
	svc, reports := newExportService(t)
	for i := 0; i < 120; i++ {
		seedEntries(t, reports.registry, "userA", billingEntry("Dr. A", "MD", 10, 10, fixedNow.Add(-time.Duration(i)*time.Second)))
	}

	entries, err := svc.ReportPreview(context.Background(), "userA", enum.ReportPeriodAll)
	require.NoError(t, err)
	assert.Len(t, entries, 100)
}
