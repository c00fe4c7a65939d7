package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/usecase"
)

const maxBodyBytes = 64 << 10

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Data    any                       `json:"data,omitempty"`
	Errors  []usecase.ValidationError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	return true
}

// writeUsecaseError maps domain errors to status codes. Anything unknown is a
// 500 and gets logged; the client only sees a generic message.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs usecase.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Validation failed", Errors: verrs})
	case errors.Is(err, entity.ErrDuplicateSubscription):
		writeErrorResponse(w, http.StatusConflict, "Already enrolled in this course")
	case errors.Is(err, entity.ErrUnknownCourse):
		writeErrorResponse(w, http.StatusNotFound, "Course not found")
	case errors.Is(err, entity.ErrInquiryNotFound):
		writeErrorResponse(w, http.StatusNotFound, "Inquiry not found")
	default:
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
		writeErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
