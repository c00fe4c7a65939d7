package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/safe-leads/internal/usecase"
)

type InquiryHandler struct {
	SubmitUC *usecase.SubmitInquiryUseCase
	AdminUC  *usecase.InquiryAdminUseCase
}

func NewInquiryHandler(submit *usecase.SubmitInquiryUseCase, admin *usecase.InquiryAdminUseCase) *InquiryHandler {
	return &InquiryHandler{SubmitUC: submit, AdminUC: admin}
}

// Create handles POST /api/inquiries.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitInquiryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	inquiry, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: "Inquiry received", Data: inquiry})
}

// List handles GET /api/admin/inquiries?sort=newest|oldest.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.AdminUC.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, inquiries)
}

func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.AdminUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, inquiry)
}

func (h *InquiryHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, true)
}

func (h *InquiryHandler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, false)
}

func (h *InquiryHandler) setRead(w http.ResponseWriter, r *http.Request, read bool) {
	inquiry, err := h.AdminUC.SetRead(r.Context(), chi.URLParam(r, "id"), read)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, inquiry)
}
