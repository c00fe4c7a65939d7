package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/safe-leads/internal/usecase"
)

type CourseHandler struct {
	EnrollUC *usecase.EnrollCourseUseCase
}

func NewCourseHandler(uc *usecase.EnrollCourseUseCase) *CourseHandler {
	return &CourseHandler{EnrollUC: uc}
}

// Subscribe handles POST /api/courses/{courseType}/subscribe.
func (h *CourseHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.EnrollCourseInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.CourseType = chi.URLParam(r, "courseType")

	sub, err := h.EnrollUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: "You're enrolled! Check your inbox for day 0.", Data: sub})
}
