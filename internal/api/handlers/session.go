package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	draftService *service.DraftService
}

func NewSessionHandler(draftService *service.DraftService) *SessionHandler {
	return &SessionHandler{draftService: draftService}
}

type ApplyActionRequest struct {
	ChampionID string `json:"championId"`
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSessionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.draftService.CreateSession(r.Context(), req)
	if err != nil {
		log.Printf("ERROR [session.Create]: %v", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.draftService.GetSession(r.Context(), id)
	if err != nil {
		writeDraftError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *SessionHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req ApplyActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.draftService.ApplyAction(r.Context(), id, req.ChampionID)
	if err != nil {
		writeDraftError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *SessionHandler) Undo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.draftService.UndoAction(r.Context(), id)
	if err != nil {
		writeDraftError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.draftService.ResetDraft(r.Context(), id)
	if err != nil {
		writeDraftError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *SessionHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	set, err := h.draftService.GetRecommendations(r.Context(), id)
	if err != nil {
		writeDraftError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(set)
}

type AnalysisResponse struct {
	Blue *domain.CompositionAnalysis `json:"blue"`
	Red  *domain.CompositionAnalysis `json:"red"`
}

func (h *SessionHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	blue, red, err := h.draftService.GetCompositionAnalysis(r.Context(), id)
	if err != nil {
		writeDraftError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalysisResponse{Blue: blue, Red: red})
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	h.draftService.DeleteSession(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeDraftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, "Session not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrSessionInvalidated), errors.Is(err, domain.ErrSequenceDesync):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidAction):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR [session]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
