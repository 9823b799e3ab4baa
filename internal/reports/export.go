package reports

import (
	"context"
	"fmt"

	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of exported workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export is a rendered workbook ready to stream.
type Export struct {
	Filename string
	Data     []byte
}

// Export renders the report as an XLSX workbook with Summary, Monthly,
// Vendors and Entries sheets. Unlike GST, the Entries sheet lists every
// order so it reconciles with the summary.
func (s *service) Export(ctx context.Context, params Params) (*Export, error) {
	report, err := s.build(ctx, params)
	if err != nil {
		return nil, err
	}
	data, err := Workbook(report)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to render gst workbook")
	}
	return &Export{Filename: exportFilename(report), Data: data}, nil
}

func exportFilename(r *Report) string {
	start, end := r.StartDate, r.EndDate
	if start == "" {
		start = "all"
	}
	if end == "" {
		end = "now"
	}
	return fmt.Sprintf("gst-report-%s-to-%s.xlsx", start, end)
}

// Workbook renders report as XLSX bytes.
func Workbook(r *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, err
	}
	summary := [][]any{
		{"Metric", "Value"},
		{"Start date", r.StartDate},
		{"End date", r.EndDate},
		{"Total orders", r.Summary.TotalOrders},
		{"Total item sales", r.Summary.TotalItemSales},
		{"Total commission", r.Summary.TotalCommission},
		{"Total GST", r.Summary.TotalGST},
		{"Total platform earning", r.Summary.TotalPlatformEarning},
		{"Commission rate", r.Summary.CommissionRate},
		{"GST rate", r.Summary.GSTRate},
		{"Effective GST rate", r.Summary.EffectiveGSTRate},
	}
	if err := writeRows(f, "Summary", summary); err != nil {
		return nil, err
	}

	monthRows := [][]any{{"Month", "Orders", "Item sales", "Commission", "GST", "Platform earning"}}
	for _, m := range r.Monthly {
		monthRows = append(monthRows, []any{m.Month, m.Orders, m.ItemSales, m.Commission, m.GST, m.PlatformEarning})
	}
	if err := newSheet(f, "Monthly", monthRows); err != nil {
		return nil, err
	}

	vendorRows := [][]any{{"Vendor ID", "Vendor", "Commission rate", "Orders", "Item sales", "Commission", "GST", "Platform earning"}}
	for _, v := range r.Vendors {
		vendorRows = append(vendorRows, []any{v.VendorID, v.VendorName, v.CommissionRate, v.Orders, v.ItemSales, v.Commission, v.GST, v.PlatformEarning})
	}
	if err := newSheet(f, "Vendors", vendorRows); err != nil {
		return nil, err
	}

	entryRows := [][]any{{"Order ID", "Order number", "Vendor", "Date", "Item total", "Commission rate", "Commission", "GST rate", "GST", "Platform earning"}}
	for _, e := range r.Entries {
		entryRows = append(entryRows, []any{e.OrderID, e.OrderNumber, e.VendorName, e.Date.UTC().Format(DateLayout), e.ItemTotal, e.CommissionRate, e.Commission, e.GSTRate, e.GST, e.PlatformEarning})
	}
	if err := newSheet(f, "Entries", entryRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
