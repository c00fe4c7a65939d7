package handlers

import (
	"net/http"

	"github.com/xavierca1/safe-leads/internal/usecase"
)

type ContactHandler struct {
	SubmitContactUC *usecase.SubmitContactUseCase
}

func NewContactHandler(uc *usecase.SubmitContactUseCase) *ContactHandler {
	return &ContactHandler{SubmitContactUC: uc}
}

// Handle serves POST /api/contacts.
func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitContactInput
	if !decodeJSON(w, r, &input) {
		return
	}

	contact, err := h.SubmitContactUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Success: true, Message: "Message received", Data: contact})
}
