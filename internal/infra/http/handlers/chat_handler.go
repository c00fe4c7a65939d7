package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/safe-leads/internal/usecase"
)

type ChatHandler struct {
	ChatUC *usecase.ChatUseCase
}

func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{ChatUC: uc}
}

type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
}

func (h *ChatHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.ChatUC.StartSession(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, StartSessionResponse{SessionID: sessionID})
}

func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.PostChatMessageInput
	if !decodeJSON(w, r, &input) {
		return
	}

	reply, err := h.ChatUC.PostMessage(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, reply)
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.ChatUC.History(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, msgs)
}
