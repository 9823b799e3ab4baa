package aggregate

import (
	"sort"
	"time"

	"github.com/delito/admin-api/pkg/db/models"
	"github.com/shopspring/decimal"
)

// MonthLayout keys monthly GST buckets.
const MonthLayout = "2006-01"

// GSTRates carries the percentages used to compute platform commission and GST.
type GSTRates struct {
	DefaultCommission float64
	GST               float64
	// VendorCommission overrides DefaultCommission per vendor id.
	VendorCommission map[string]float64
}

// CommissionFor returns the commission percentage charged to vendorID.
func (r GSTRates) CommissionFor(vendorID string) float64 {
	if rate, ok := r.VendorCommission[vendorID]; ok {
		return rate
	}
	return r.DefaultCommission
}

// GSTEntry is the commission and GST charged on one completed order.
type GSTEntry struct {
	OrderID         string    `json:"orderId"`
	OrderNumber     string    `json:"orderNumber,omitempty"`
	VendorID        string    `json:"vendorId"`
	VendorName      string    `json:"vendorName,omitempty"`
	Date            time.Time `json:"date"`
	Month           string    `json:"month"`
	ItemTotal       float64   `json:"itemTotal"`
	CommissionRate  float64   `json:"commissionRate"`
	Commission      float64   `json:"commission"`
	GSTRate         float64   `json:"gstRate"`
	GST             float64   `json:"gst"`
	PlatformEarning float64   `json:"platformEarning"`
}

// GSTLine computes commission = itemTotal*commission%, gst = commission*gst%
// and platform earning = commission + gst, each rounded to paise.
func GSTLine(itemTotal, commissionRate, gstRate float64) (commission, gst, platform float64) {
	hundred := decimal.NewFromInt(100)
	c := decimal.NewFromFloat(itemTotal).Mul(decimal.NewFromFloat(commissionRate)).Div(hundred).Round(2)
	g := c.Mul(decimal.NewFromFloat(gstRate)).Div(hundred).Round(2)
	return c.InexactFloat64(), g.InexactFloat64(), c.Add(g).InexactFloat64()
}

// GSTEntries produces one entry per completed order, newest first.
func GSTEntries(orders []models.Order, rates GSTRates) []GSTEntry {
	out := make([]GSTEntry, 0, len(orders))
	for _, o := range orders {
		if !o.Status.IsCompleted() {
			continue
		}
		rate := rates.CommissionFor(o.VendorID)
		base := o.SalesBase()
		commission, gst, platform := GSTLine(base, rate, rates.GST)
		out = append(out, GSTEntry{
			OrderID:         o.ID,
			OrderNumber:     o.OrderNumber,
			VendorID:        o.VendorID,
			Date:            o.CreatedAt,
			Month:           o.CreatedAt.UTC().Format(MonthLayout),
			ItemTotal:       Round2(base),
			CommissionRate:  rate,
			Commission:      commission,
			GSTRate:         rates.GST,
			GST:             gst,
			PlatformEarning: platform,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// GSTBucket accumulates GST entries for one month or one vendor.
type GSTBucket struct {
	Key             string  `json:"-"`
	Orders          int     `json:"totalOrders"`
	ItemSales       float64 `json:"totalItemSales"`
	Commission      float64 `json:"totalCommission"`
	GST             float64 `json:"totalGST"`
	PlatformEarning float64 `json:"totalPlatformEarning"`
}

func (b *GSTBucket) add(e GSTEntry) {
	b.Orders++
	b.ItemSales = Add(b.ItemSales, e.ItemTotal)
	b.Commission = Add(b.Commission, e.Commission)
	b.GST = Add(b.GST, e.GST)
	b.PlatformEarning = Add(b.PlatformEarning, e.PlatformEarning)
}

// EffectiveGSTRate is GST as a percentage of item sales, 0 without sales.
func (b GSTBucket) EffectiveGSTRate() float64 {
	if b.ItemSales == 0 {
		return 0
	}
	return decimal.NewFromFloat(b.GST).
		Div(decimal.NewFromFloat(b.ItemSales)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// GSTTotal sums every entry into one bucket.
func GSTTotal(entries []GSTEntry) GSTBucket {
	var total GSTBucket
	for _, e := range entries {
		total.add(e)
	}
	return total
}

// GSTMonthly buckets entries by calendar month.
func GSTMonthly(entries []GSTEntry) map[string]*GSTBucket {
	return gstBuckets(entries, func(e GSTEntry) string { return e.Month })
}

// GSTByVendor buckets entries by vendor id.
func GSTByVendor(entries []GSTEntry) map[string]*GSTBucket {
	return gstBuckets(entries, func(e GSTEntry) string { return e.VendorID })
}

func gstBuckets(entries []GSTEntry, key func(GSTEntry) string) map[string]*GSTBucket {
	out := Fold(entries, key, (*GSTBucket).add)
	for k, b := range out {
		b.Key = k
	}
	return out
}
