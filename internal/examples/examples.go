// Package examples serves the curated bad/ok/good prompt examples.
// The bank is reloaded from disk on each request so edits show up
// without a restart.
package examples

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/prompt-trainer/backend/internal/models"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() ([]models.ExampleItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read examples: %w", err)
	}

	var items []models.ExampleItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse examples: %w", err)
	}
	return items, nil
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.Load()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load examples"})
		return
	}
	if items == nil {
		items = []models.ExampleItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
