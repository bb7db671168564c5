package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/team-alpha/ams-backend-go/internal/domain/shift"
	"github.com/team-alpha/ams-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	CheckWithinShift(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

// Create implements ShiftHandler.
func (s *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := s.shiftService.CreateShift(r.Context(), ident, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", created)
}

// List implements ShiftHandler.
func (s *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	shifts, err := s.shiftService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Assign implements ShiftHandler.
func (s *ShiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, err := s.shiftService.AssignShift(r.Context(), ident, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned successfully", assignment)
}

// CheckWithinShift implements ShiftHandler. An optional "at" query parameter
// (RFC 3339) checks a moment other than now.
func (s *ShiftHandlerImpl) CheckWithinShift(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var at time.Time
	if atParam := r.URL.Query().Get("at"); atParam != "" {
		parsed, err := time.Parse(time.RFC3339, atParam)
		if err != nil {
			response.BadRequest(w, "Parameter 'at' must be RFC 3339", nil)
			return
		}
		at = parsed
	}

	result, err := s.shiftService.CheckWithinShift(r.Context(), ident, at)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{
		shiftService: shiftService,
	}
}
