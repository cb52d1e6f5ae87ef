// Package evaluation exposes the evaluate endpoint: boundary
// validation, the evaluator call, and optional result logging.
package evaluation

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/prompt-trainer/backend/internal/evaluator"
	"github.com/prompt-trainer/backend/internal/models"
)

const defaultHistoryLimit = 20

type Handler struct {
	evaluator *evaluator.Evaluator
	store     *Store // nil when persistence is disabled
	maxLen    int
}

func NewHandler(ev *evaluator.Evaluator, store *Store, maxLen int) *Handler {
	return &Handler{evaluator: ev, store: store, maxLen: maxLen}
}

// Evaluate validates the request at the boundary (the engine itself
// treats empty text as a valid low-scoring case) and always answers
// with a complete evaluation.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Prompt cannot be empty. Please type your question."})
		return
	}
	// Length limit counts characters, not bytes.
	if utf8.RuneCountInString(req.Prompt) > h.maxLen {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Prompt is too long. Please shorten it."})
		return
	}

	goal := ""
	if req.Goal != nil {
		goal = *req.Goal
	}

	result := h.evaluator.Evaluate(r.Context(), req.Prompt, goal)

	if h.store != nil {
		var userID *int64
		if uid, ok := r.Context().Value("user_id").(int64); ok {
			userID = &uid
		}
		if err := h.store.Record(userID, req.Prompt, result, h.evaluator.RubricVersion()); err != nil {
			log.Printf("Failed to record evaluation: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// History lists the authenticated user's recent evaluations.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "History requires a configured database"})
		return
	}

	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Not authenticated"})
		return
	}

	logs, err := h.store.ListByUser(userID, defaultHistoryLimit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load history"})
		return
	}
	if logs == nil {
		logs = []models.EvaluationLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
