package handlers

import (
	"net/http"

	"github.com/xavierca1/safe-leads/internal/usecase"
)

type LeadHandler struct {
	SubmitLeadUC *usecase.SubmitLeadUseCase
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{SubmitLeadUC: uc}
}

// CaptureLead handles POST /api/leads. Rate limiting is applied by the router.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.SubmitLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Success: true, Message: "Thanks! We'll be in touch.", Data: lead})
}
