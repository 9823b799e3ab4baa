package reports

import (
	"time"

	"cloud.google.com/go/bigquery"
)

// LedgerRow is one vendor's GST totals for an exported period.
type LedgerRow struct {
	Period          string    `bigquery:"period"`
	VendorID        string    `bigquery:"vendor_id"`
	VendorName      string    `bigquery:"vendor_name"`
	CommissionRate  float64   `bigquery:"commission_rate"`
	Orders          int       `bigquery:"orders"`
	ItemSales       float64   `bigquery:"item_sales"`
	Commission      float64   `bigquery:"commission"`
	GSTRate         float64   `bigquery:"gst_rate"`
	GST             float64   `bigquery:"gst"`
	PlatformEarning float64   `bigquery:"platform_earning"`
	ExportedAt      time.Time `bigquery:"exported_at"`
}

// LedgerSchema is inferred from LedgerRow.
func LedgerSchema() (bigquery.Schema, error) {
	return bigquery.InferSchema(LedgerRow{})
}

// LedgerRows maps the report's vendor aggregates to warehouse rows.
func LedgerRows(r *Report, period string, exportedAt time.Time) []LedgerRow {
	if r == nil {
		return nil
	}
	rows := make([]LedgerRow, 0, len(r.Vendors))
	for _, v := range r.Vendors {
		rows = append(rows, LedgerRow{
			Period:          period,
			VendorID:        v.VendorID,
			VendorName:      v.VendorName,
			CommissionRate:  v.CommissionRate,
			Orders:          v.Orders,
			ItemSales:       v.ItemSales,
			Commission:      v.Commission,
			GSTRate:         r.Summary.GSTRate,
			GST:             v.GST,
			PlatformEarning: v.PlatformEarning,
			ExportedAt:      exportedAt.UTC(),
		})
	}
	return rows
}

// PreviousMonth returns the inclusive first and last day of the calendar
// month before now, plus its YYYY-MM period key.
func PreviousMonth(now time.Time) (start, end time.Time, period string) {
	now = now.UTC()
	firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start = firstOfThis.AddDate(0, -1, 0)
	end = firstOfThis.AddDate(0, 0, -1)
	return start, end, start.Format("2006-01")
}
