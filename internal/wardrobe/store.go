package wardrobe

import (
	"sync"
)

// Store is the wardrobe storage abstraction. A persistent implementation
// can be substituted without touching the matching logic.
type Store interface {
	// Add appends an item to the user's wardrobe, creating the user and
	// category buckets on first use.
	Add(userID string, item ClothingItem)

	// Items returns the user's items for one category in insertion order.
	Items(userID string, category Category) []ClothingItem

	// All returns the user's full wardrobe keyed by category, each list in
	// insertion order. An unknown user yields an empty map, not an error.
	All(userID string) map[Category][]ClothingItem

	// Users returns the number of users with at least one item.
	Users() int

	// Counts returns the total item count and the distribution of items
	// per colour name across all users.
	Counts() (total int, byColour map[string]int)
}

// MemoryStore keeps wardrobes in process memory. A single RWMutex guards
// all buckets; expected concurrency is low enough that per-user locking
// is not worth the bookkeeping.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*userWardrobe
}

type userWardrobe struct {
	// categories holds insertion order of first use so All() is stable.
	categories []Category
	items      map[Category][]ClothingItem
}

// NewMemoryStore creates an empty in-memory wardrobe store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*userWardrobe),
	}
}

// Add appends an item to the user's wardrobe.
func (s *MemoryStore) Add(userID string, item ClothingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.users[userID]
	if !ok {
		w = &userWardrobe{items: make(map[Category][]ClothingItem)}
		s.users[userID] = w
	}

	if _, ok := w.items[item.Category]; !ok {
		w.categories = append(w.categories, item.Category)
	}
	w.items[item.Category] = append(w.items[item.Category], item)
}

// Items returns the user's items for one category in insertion order.
func (s *MemoryStore) Items(userID string, category Category) []ClothingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.users[userID]
	if !ok {
		return nil
	}

	items := w.items[category]
	out := make([]ClothingItem, len(items))
	copy(out, items)
	return out
}

// All returns the user's full wardrobe keyed by category.
func (s *MemoryStore) All(userID string) map[Category][]ClothingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Category][]ClothingItem)
	w, ok := s.users[userID]
	if !ok {
		return out
	}

	for _, cat := range w.categories {
		items := make([]ClothingItem, len(w.items[cat]))
		copy(items, w.items[cat])
		out[cat] = items
	}
	return out
}

// Users returns the number of users with at least one item.
func (s *MemoryStore) Users() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Counts returns the total item count and per-colour distribution.
func (s *MemoryStore) Counts() (int, map[string]int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	byColour := make(map[string]int)
	for _, w := range s.users {
		for _, items := range w.items {
			total += len(items)
			for _, item := range items {
				byColour[item.ColourName]++
			}
		}
	}
	return total, byColour
}
