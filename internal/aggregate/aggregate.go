// Package aggregate folds order and delivery-task records into per-entity
// running totals. Every function here is a pure in-memory reduction.
package aggregate

import (
	"github.com/delito/admin-api/pkg/enums"
	"github.com/shopspring/decimal"
)

// Fold groups records by key and folds each one into that key's total.
// Records with an empty key are skipped.
func Fold[R any, T any](records []R, key func(R) string, step func(*T, R)) map[string]*T {
	out := map[string]*T{}
	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		acc, ok := out[k]
		if !ok {
			acc = new(T)
			out[k] = acc
		}
		step(acc, rec)
	}
	return out
}

// StatusCounts buckets orders by dashboard status category. Every order
// counts toward Total regardless of status.
type StatusCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	InTransit int `json:"inTransit"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Add counts one order with the given status.
func (s *StatusCounts) Add(status enums.OrderStatus) {
	s.Total++
	switch status.Bucket() {
	case enums.OrderBucketPending:
		s.Pending++
	case enums.OrderBucketPreparing:
		s.Preparing++
	case enums.OrderBucketInTransit:
		s.InTransit++
	case enums.OrderBucketCompleted:
		s.Completed++
	case enums.OrderBucketCancelled:
		s.Cancelled++
	}
}

// Rate returns part/total*100 rounded to one decimal, or 0 when total is 0.
func Rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1).
		InexactFloat64()
}

// Mean returns sum/count rounded to places, or fallback when count is 0.
func Mean(sum float64, count int, places int32, fallback float64) float64 {
	if count <= 0 {
		return fallback
	}
	return decimal.NewFromFloat(sum).
		Div(decimal.NewFromInt(int64(count))).
		Round(places).
		InexactFloat64()
}

// Add sums money amounts without binary float drift.
func Add(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Sub subtracts money amounts without binary float drift.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Round2 rounds a money amount to paise.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
