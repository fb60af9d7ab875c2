package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestRenderRowsAndHeader(t *testing.T) {
	data, err := Render(Sheet{
		Name: "Billing Data",
		Columns: []Column{
			{Header: "Doctor Name", Key: "doctorName", Width: 25},
			{Header: "Net Amount", Key: "netAmount", Width: 20},
		},
		Rows: []map[string]interface{}{
			{"doctorName": "Dr. A", "netAmount": 900.0},
			{"doctorName": "Dr. B", "netAmount": 1350.5, "ignored": "x"},
		},
	})
	require.NoError(t, err)

	f := open(t, data)
	assert.Equal(t, []string{"Billing Data"}, f.GetSheetList())
	assert.Equal(t, "Doctor Name", cell(t, f, "Billing Data", "A1"))
	assert.Equal(t, "Net Amount", cell(t, f, "Billing Data", "B1"))
	assert.Equal(t, "Dr. A", cell(t, f, "Billing Data", "A2"))
	assert.Equal(t, "900", cell(t, f, "Billing Data", "B2"))
	assert.Equal(t, "1350.5", cell(t, f, "Billing Data", "B3"))
	assert.Equal(t, "", cell(t, f, "Billing Data", "C3"))

	width, err := f.GetColWidth("Billing Data", "A")
	require.NoError(t, err)
	assert.Equal(t, 25.0, width)

	styleID, err := f.GetCellStyle("Billing Data", "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestRenderSummaryAfterBlankRow(t *testing.T) {
	data, err := Render(Sheet{
		Name: "Sales Report",
		Columns: []Column{
			{Header: "Date", Key: "date"},
			{Header: "Sample Units", Key: "sampleUnits"},
			{Header: "Total Amount", Key: "totalAmount"},
		},
		Rows: []map[string]interface{}{
			{"date": "2024-01-02", "sampleUnits": 10, "totalAmount": 1000.0},
		},
		Summary: []SummaryRow{
			{Label: "SUMMARY"},
			{Label: "Total Orders", Values: map[string]interface{}{"sampleUnits": 1}},
			{Label: "Total Sales", Values: map[string]interface{}{"totalAmount": 1000.0}},
		},
	})
	require.NoError(t, err)

	f := open(t, data)
	assert.Equal(t, "", cell(t, f, "Sales Report", "A3"))
	assert.Equal(t, "SUMMARY", cell(t, f, "Sales Report", "A4"))
	assert.Equal(t, "Total Orders", cell(t, f, "Sales Report", "A5"))
	assert.Equal(t, "1", cell(t, f, "Sales Report", "B5"))
	assert.Equal(t, "Total Sales", cell(t, f, "Sales Report", "A6"))
	assert.Equal(t, "1000", cell(t, f, "Sales Report", "C6"))
}

func TestRenderInvalidSheetName(t *testing.T) {
	_, err := Render(Sheet{Name: "bad/name[]", Columns: []Column{{Header: "A", Key: "a"}}})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}
