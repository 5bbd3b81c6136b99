package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/handler/http/middleware"
	"github.com/bntng-project/esensi-backend/internal/handler/http/response"
	"github.com/bntng-project/esensi-backend/internal/service/file"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
	fileService       file.FileService
}

func NewAttendanceHandler(attendanceService attendance.Service, fileService file.FileService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		fileService:       fileService,
	}
}

// CheckIn implements AttendanceHandler. The request is multipart: a 'data'
// field with the JSON coordinates and a 'photo' field with the selfie.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req attendance.CheckInRequest
	if !h.bindMultipart(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	evidenceRef, ok := h.uploadEvidence(w, r, employeeID, "check_in")
	if !ok {
		return
	}
	req.EvidenceRef = evidenceRef

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req attendance.CheckOutRequest
	if !h.bindMultipart(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	evidenceRef, ok := h.uploadEvidence(w, r, employeeID, "check_out")
	if !ok {
		return
	}
	req.EvidenceRef = evidenceRef

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	filter := attendance.HistoryFilter{}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	results, err := h.attendanceService.History(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// bindMultipart parses the multipart form and unmarshals the 'data' field
// into dst. Writes the error response itself and returns false on failure.
func (h *attendanceHandlerImpl) bindMultipart(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return false
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return false
	}

	if err := json.Unmarshal([]byte(dataJSON), dst); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}

	return true
}

// uploadEvidence stores the 'photo' form file and returns its storage path.
func (h *attendanceHandlerImpl) uploadEvidence(w http.ResponseWriter, r *http.Request, employeeID, kind string) (string, bool) {
	photo, header, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance selfie photo is required", nil)
			return "", false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return "", false
	}
	defer photo.Close()

	path, err := h.fileService.UploadEvidence(r.Context(), employeeID, time.Now(), photo, header.Filename, kind)
	if err != nil {
		slog.Error("Failed to upload attendance evidence", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return "", false
	}

	return path, true
}
