// Package quiz serves the practice quiz: a read-only on-disk bank of
// labeled prompts, label-balanced sampling, and deterministic grading
// of submitted answers.
package quiz

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/prompt-trainer/backend/internal/models"
)

// Bank holds the quiz items loaded at startup. Items are read-only
// after construction; the sampler keeps its own rand source, guarded
// by a mutex since rand.Rand is not safe for concurrent use.
type Bank struct {
	items []models.QuizItem
	byID  map[string]models.QuizItem

	mu  sync.Mutex
	rng *rand.Rand
}

// LoadBank reads the quiz JSON file from disk.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz bank: %w", err)
	}

	var items []models.QuizItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse quiz bank: %w", err)
	}

	return NewBank(items, time.Now().UnixNano()), nil
}

// NewBank builds a bank from preloaded items with a seeded sampler.
func NewBank(items []models.QuizItem, seed int64) *Bank {
	byID := make(map[string]models.QuizItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Bank{items: items, byID: byID, rng: rand.New(rand.NewSource(seed))}
}

func (b *Bank) Len() int {
	return len(b.items)
}

// Get returns the item with the given id.
func (b *Bank) Get(id string) (models.QuizItem, bool) {
	item, ok := b.byID[id]
	return item, ok
}

// Sample returns up to limit items, guaranteeing at least two of each
// label when the limit allows (one each for smaller quizzes), then
// filling the rest randomly and shuffling.
func (b *Bank) Sample(limit int) []models.QuizItem {
	if len(b.items) == 0 || limit <= 0 {
		return []models.QuizItem{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	k := limit
	if k > len(b.items) {
		k = len(b.items)
	}

	buckets := map[models.Label][]models.QuizItem{}
	for _, item := range b.items {
		if models.ValidLabels[item.Label] {
			buckets[item.Label] = append(buckets[item.Label], item)
		}
	}

	perLabel := 1
	if k >= 6 {
		perLabel = 2
	}

	chosen := make([]models.QuizItem, 0, k)
	taken := map[string]bool{}
	for _, label := range []models.Label{models.LabelBad, models.LabelOK, models.LabelGood} {
		bucket := buckets[label]
		b.rng.Shuffle(len(bucket), func(i, j int) { bucket[i], bucket[j] = bucket[j], bucket[i] })
		for i := 0; i < perLabel && i < len(bucket) && len(chosen) < k; i++ {
			chosen = append(chosen, bucket[i])
			taken[bucket[i].ID] = true
		}
	}

	var remaining []models.QuizItem
	for _, item := range b.items {
		if !taken[item.ID] {
			remaining = append(remaining, item)
		}
	}
	b.rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })
	for _, item := range remaining {
		if len(chosen) == k {
			break
		}
		chosen = append(chosen, item)
	}

	b.rng.Shuffle(len(chosen), func(i, j int) { chosen[i], chosen[j] = chosen[j], chosen[i] })
	return chosen
}
