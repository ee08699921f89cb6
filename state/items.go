// Package state holds the in-memory session state of a wavevault client:
// the items mirror, the folder navigation history and the dialog registry.
// The catalog remains the source of truth; everything here is rebuilt from
// it on the next sync. Nothing in this package performs I/O on the item
// collections and none of the mutators can fail.
package state

import (
	"sync"

	"wavevault/models"
)

// ItemStore mirrors the visible items of the current session. Files and
// folders live in one collection, projects in another, and the starred
// view is recomputed after every mutation so it never drifts.
type ItemStore struct {
	mutex           sync.Mutex
	filesAndFolders []models.Item
	projects        []models.Item
	starred         []models.Item
	listeners       map[int]func()
	nextListenerID  int
}

func NewItemStore() *ItemStore {
	return &ItemStore{
		listeners: make(map[int]func()),
	}
}

// Subscribe registers a change listener and returns its unsubscribe func.
func (s *ItemStore) Subscribe(listener func()) func() {
	s.mutex.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	s.mutex.Unlock()

	return func() {
		s.mutex.Lock()
		delete(s.listeners, id)
		s.mutex.Unlock()
	}
}

// Replace hydrates the mirror from a catalog listing.
func (s *ItemStore) Replace(items []models.Item) {
	s.mutex.Lock()

	s.filesAndFolders = nil
	s.projects = nil

	for _, item := range items {
		if item.Kind == models.KindProject {
			s.projects = append(s.projects, item)
		} else {
			s.filesAndFolders = append(s.filesAndFolders, item)
		}
	}

	s.refreshStarred()
	s.mutex.Unlock()

	s.notify()
}

// Add appends the item to the collection its kind belongs to. Callers must
// supply a fresh ID; duplicates are a caller error and are not detected.
func (s *ItemStore) Add(item models.Item) {
	s.mutex.Lock()

	if item.Kind == models.KindProject {
		s.projects = append(s.projects, item)
	} else {
		s.filesAndFolders = append(s.filesAndFolders, item)
	}

	s.refreshStarred()
	s.mutex.Unlock()

	s.notify()
}

// Remove filters the ID out of both collections. Removing an absent ID is
// a no-op, and removing a folder never cascades to its children.
func (s *ItemStore) Remove(id string) {
	s.mutex.Lock()

	s.filesAndFolders = withoutItem(s.filesAndFolders, id)
	s.projects = withoutItem(s.projects, id)

	s.refreshStarred()
	s.mutex.Unlock()

	s.notify()
}

// Update merges the partial update into the matching item. At most one
// item matches; an absent ID is a no-op.
func (s *ItemStore) Update(id string, update models.ItemUpdate) {
	s.mutex.Lock()

	if item := findItem(s.filesAndFolders, id); item != nil {
		update.Apply(item)
	}

	if item := findItem(s.projects, id); item != nil {
		update.Apply(item)
	}

	s.refreshStarred()
	s.mutex.Unlock()

	s.notify()
}

// ToggleStarred flips the starred flag on the matching item.
func (s *ItemStore) ToggleStarred(id string) {
	s.mutex.Lock()

	if item := findItem(s.filesAndFolders, id); item != nil {
		item.Starred = !item.Starred
	}

	if item := findItem(s.projects, id); item != nil {
		item.Starred = !item.Starred
	}

	s.refreshStarred()
	s.mutex.Unlock()

	s.notify()
}

func (s *ItemStore) FilesAndFolders() []models.Item {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return copyItems(s.filesAndFolders)
}

func (s *ItemStore) Projects() []models.Item {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return copyItems(s.projects)
}

// StarredItems is the starred filter over both collections.
func (s *ItemStore) StarredItems() []models.Item {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return copyItems(s.starred)
}

func (s *ItemStore) Get(id string) (models.Item, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if item := findItem(s.filesAndFolders, id); item != nil {
		return *item, true
	}

	if item := findItem(s.projects, id); item != nil {
		return *item, true
	}

	return models.Item{}, false
}

// refreshStarred must be called with the mutex held.
func (s *ItemStore) refreshStarred() {
	s.starred = nil

	for _, item := range s.filesAndFolders {
		if item.Starred {
			s.starred = append(s.starred, item)
		}
	}

	for _, item := range s.projects {
		if item.Starred {
			s.starred = append(s.starred, item)
		}
	}
}

// notify runs listeners outside the lock so they may read the store.
func (s *ItemStore) notify() {
	s.mutex.Lock()
	listeners := make([]func(), 0, len(s.listeners))

	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}

	s.mutex.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

func findItem(items []models.Item, id string) *models.Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}

	return nil
}

func withoutItem(items []models.Item, id string) []models.Item {
	filtered := items[:0]

	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func copyItems(items []models.Item) []models.Item {
	if items == nil {
		return nil
	}

	copied := make([]models.Item, len(items))
	copy(copied, items)
	return copied
}
