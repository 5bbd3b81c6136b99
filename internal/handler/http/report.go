package http

import (
	"fmt"
	"net/http"

	"github.com/bntng-project/esensi-backend/internal/domain/report"
	"github.com/bntng-project/esensi-backend/internal/handler/http/response"
	reportservice "github.com/bntng-project/esensi-backend/internal/service/report"
)

type ReportHandler interface {
	Period(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportservice.ReportServiceImpl
}

func NewReportHandler(reportService *reportservice.ReportServiceImpl) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func periodRequestFromQuery(r *http.Request) report.PeriodRequest {
	req := report.PeriodRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}
	return req
}

// Period implements ReportHandler.
func (h *reportHandlerImpl) Period(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SummarizePeriod(r.Context(), periodRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SummarizePeriod(r.Context(), periodRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out, err := reportservice.ExportCSV(result)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll-%s-%s.csv", result.StartDate, result.EndDate)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// ExportXLSX implements ReportHandler.
func (h *reportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SummarizePeriod(r.Context(), periodRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out, err := reportservice.ExportXLSX(result)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll-%s-%s.xlsx", result.StartDate, result.EndDate)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
