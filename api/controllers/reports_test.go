package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delito/admin-api/internal/reports"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type stubReports struct {
	gstFn    func(ctx context.Context, params reports.Params) (*reports.Report, error)
	exportFn func(ctx context.Context, params reports.Params) (*reports.Export, error)
}

func (s stubReports) GST(ctx context.Context, params reports.Params) (*reports.Report, error) {
	return s.gstFn(ctx, params)
}

func (s stubReports) Export(ctx context.Context, params reports.Params) (*reports.Export, error) {
	return s.exportFn(ctx, params)
}

func TestReportsGSTPassesFilters(t *testing.T) {
	svc := stubReports{
		gstFn: func(ctx context.Context, params reports.Params) (*reports.Report, error) {
			assert.Equal(t, reports.Params{StartDate: "2026-01-01", EndDate: "2026-01-31", VendorID: "v1"}, params)
			return &reports.Report{
				StartDate: params.StartDate,
				EndDate:   params.EndDate,
				Summary:   reports.Summary{TotalOrders: 2, TotalItemSales: 1000, EffectiveGSTRate: 2.7},
			}, nil
		},
	}

	resp := serve(t, ReportsGST(svc, logger.Nop()), http.MethodGet, "/reports/gst?startDate=2026-01-01&endDate=2026-01-31&vendorId=v1", "")
	require.Equal(t, http.StatusOK, resp.Code)
	env := decode[reports.Report](t, resp)
	assert.Equal(t, 2.7, env.Data.Summary.EffectiveGSTRate)
}

func TestReportsGSTInvalidDate(t *testing.T) {
	svc := stubReports{
		gstFn: func(ctx context.Context, params reports.Params) (*reports.Report, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "startDate must be a date in YYYY-MM-DD format")
		},
	}

	resp := serve(t, ReportsGST(svc, logger.Nop()), http.MethodGet, "/reports/gst?startDate=01/02/2026", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestReportsGSTExportWritesWorkbook(t *testing.T) {
	payload := []byte("PK\x03\x04workbook")
	svc := stubReports{
		exportFn: func(ctx context.Context, params reports.Params) (*reports.Export, error) {
			return &reports.Export{Filename: "gst-report-all-to-now.xlsx", Data: payload}, nil
		},
	}

	resp := serve(t, ReportsGSTExport(svc, logger.Nop()), http.MethodGet, "/reports/gst/export", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, reports.ContentTypeXLSX, resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="gst-report-all-to-now.xlsx"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, payload, resp.Body.Bytes())
}

func TestReportsGSTExportErrorUsesEnvelope(t *testing.T) {
	svc := stubReports{
		exportFn: func(ctx context.Context, params reports.Params) (*reports.Export, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "endDate must not be before startDate")
		},
	}

	resp := serve(t, ReportsGSTExport(svc, logger.Nop()), http.MethodGet, "/reports/gst/export?startDate=2026-02-01&endDate=2026-01-01", "")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "endDate must not be before startDate", decode[any](t, resp).Error)
}
