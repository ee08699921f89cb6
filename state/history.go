package state

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"wavevault/models"
)

// HistoryLimit caps the breadcrumb stack; oldest steps are evicted first.
const HistoryLimit = 10

// HistoryStateKey is the fixed key the trail is persisted under.
const HistoryStateKey = "navigation_history"

// KV is the slice of the local state store the history needs.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// NavigationHistory is the branch-truncating folder breadcrumb stack.
// Re-entering a folder already on the stack discards every step visited
// after it instead of appending a duplicate. The stack is persisted after
// every mutation so breadcrumbs survive a restart.
type NavigationHistory struct {
	mutex sync.Mutex
	steps []models.NavigationStep
	store KV
}

// NewNavigationHistory loads the persisted trail from store. A nil store
// keeps the history memory-only. Malformed persisted state falls back to
// an empty trail rather than failing.
func NewNavigationHistory(store KV) *NavigationHistory {
	h := &NavigationHistory{store: store}

	if store == nil {
		return h
	}

	data, err := store.Get(HistoryStateKey)

	if err != nil || data == nil {
		return h
	}

	if err := json.Unmarshal(data, &h.steps); err != nil {
		log.Printf("Discarding malformed navigation history: %v", err)
		h.steps = nil
	}

	return h
}

// RecordVisit registers entering the folder and returns the current trail.
// An empty folder ID or name means the home view; the trail resets.
func (h *NavigationHistory) RecordVisit(folderID, name string) []models.NavigationStep {
	if folderID == "" || name == "" {
		h.Reset()
		return nil
	}

	h.mutex.Lock()

	if i := h.indexOf(folderID); i >= 0 {
		// Jump back: drop everything visited after this folder
		h.steps = h.steps[:i+1]
	} else {
		h.steps = append(h.steps, models.NavigationStep{
			FolderID:  folderID,
			Name:      name,
			VisitedAt: time.Now(),
		})
	}

	for len(h.steps) > HistoryLimit {
		h.steps = h.steps[1:]
	}

	trail := h.copySteps()
	h.persist()
	h.mutex.Unlock()

	return trail
}

// Reset clears the trail and drops the persisted value (return to root).
func (h *NavigationHistory) Reset() {
	h.mutex.Lock()
	h.steps = nil

	if h.store != nil {
		if err := h.store.Delete(HistoryStateKey); err != nil {
			log.Printf("Could not clear persisted navigation history: %v", err)
		}
	}

	h.mutex.Unlock()
}

func (h *NavigationHistory) Steps() []models.NavigationStep {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	return h.copySteps()
}

// indexOf must be called with the mutex held.
func (h *NavigationHistory) indexOf(folderID string) int {
	for i, step := range h.steps {
		if step.FolderID == folderID {
			return i
		}
	}

	return -1
}

// persist must be called with the mutex held. Persistence failures leave
// the in-memory trail authoritative for this session.
func (h *NavigationHistory) persist() {
	if h.store == nil {
		return
	}

	data, err := json.Marshal(h.steps)

	if err != nil {
		log.Printf("Could not encode navigation history: %v", err)
		return
	}

	if err := h.store.Put(HistoryStateKey, data); err != nil {
		log.Printf("Could not persist navigation history: %v", err)
	}
}

func (h *NavigationHistory) copySteps() []models.NavigationStep {
	if h.steps == nil {
		return nil
	}

	copied := make([]models.NavigationStep, len(h.steps))
	copy(copied, h.steps)
	return copied
}
