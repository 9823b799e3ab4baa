package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/delito/admin-api/api/responses"
	"github.com/delito/admin-api/api/validators"
	"github.com/delito/admin-api/internal/reports"
	pkgerrors "github.com/delito/admin-api/pkg/errors"
	"github.com/delito/admin-api/pkg/logger"
)

type reportsService interface {
	GST(ctx context.Context, params reports.Params) (*reports.Report, error)
	Export(ctx context.Context, params reports.Params) (*reports.Export, error)
}

func gstParams(r *http.Request) reports.Params {
	return reports.Params{
		StartDate: validators.QueryString(r, "startDate"),
		EndDate:   validators.QueryString(r, "endDate"),
		VendorID:  validators.QueryString(r, "vendorId"),
	}
}

func ReportsGST(svc reportsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		report, err := svc.GST(r.Context(), gstParams(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// ReportsGSTExport streams the report as an XLSX attachment. Errors still use
// the JSON envelope.
func ReportsGSTExport(svc reportsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reports service unavailable"))
			return
		}

		export, err := svc.Export(r.Context(), gstParams(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", reports.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(export.Data); err != nil && logg != nil {
			logg.WarnErr(r.Context(), "failed to write gst export", err)
		}
	}
}
