package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClassificationHistoryEntry is the category and tags last used for a description
type ClassificationHistoryEntry struct {
	Key           string    `json:"key"`
	CategoryLabel string    `json:"category_label"`
	Tags          string    `json:"tags"`
	Date          time.Time `json:"date"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

// ClassificationHistory maps normalized descriptions to their latest classification.
// Entries keep insertion order so lookups are deterministic.
type ClassificationHistory struct {
	entries []ClassificationHistoryEntry
	index   map[string]int
}

// NewClassificationHistory creates an empty history
func NewClassificationHistory() *ClassificationHistory {
	return &ClassificationHistory{
		entries: []ClassificationHistoryEntry{},
		index:   make(map[string]int),
	}
}

// NormalizeDescription case-folds and trims a description into a history key
func NormalizeDescription(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// Add appends an entry unless its key is already present. Returns false when skipped.
func (h *ClassificationHistory) Add(entry ClassificationHistoryEntry) bool {
	entry.Key = NormalizeDescription(entry.Key)
	if entry.Key == "" {
		return false
	}
	if _, exists := h.index[entry.Key]; exists {
		return false
	}
	h.index[entry.Key] = len(h.entries)
	h.entries = append(h.entries, entry)
	return true
}

// Get returns the entry stored under an exact key
func (h *ClassificationHistory) Get(key string) (ClassificationHistoryEntry, bool) {
	if h == nil {
		return ClassificationHistoryEntry{}, false
	}
	i, ok := h.index[NormalizeDescription(key)]
	if !ok {
		return ClassificationHistoryEntry{}, false
	}
	return h.entries[i], true
}

// Entries returns the entries in lookup order
func (h *ClassificationHistory) Entries() []ClassificationHistoryEntry {
	if h == nil {
		return nil
	}
	return h.entries
}

// Len returns the number of distinct keys
func (h *ClassificationHistory) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}
