package quiz

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/prompt-trainer/backend/internal/models"
)

const defaultQuizSize = 10

type Handler struct {
	bank  *Bank
	store *Store // nil when persistence is disabled
}

func NewHandler(bank *Bank, store *Store) *Handler {
	return &Handler{bank: bank, store: store}
}

// List returns a label-balanced sample of quiz prompts with the
// expected labels stripped.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultQuizSize
	if s := r.URL.Query().Get("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	items := h.bank.Sample(limit)
	prompts := make([]models.QuizPrompt, 0, len(items))
	for _, item := range items {
		prompts = append(prompts, models.QuizPrompt{ID: item.ID, Prompt: item.Prompt})
	}

	writeJSON(w, http.StatusOK, prompts)
}

// Submit grades the provided labels and records the attempt for
// authenticated users.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var submission models.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if len(submission.Answers) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No answers provided"})
		return
	}

	result := Grade(h.bank, submission)

	if h.store != nil {
		if userID, ok := r.Context().Value("user_id").(int64); ok {
			if err := h.store.RecordAttempt(userID, result); err != nil {
				log.Printf("Failed to record quiz attempt for user %d: %v", userID, err)
			}
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
