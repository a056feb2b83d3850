package store

import (
	"sync"

	"laundrypro/internal/models"
)

// MemoryStore is an in-memory implementation of Store. It backs tests and
// any run that should not touch disk.
type MemoryStore struct {
	mu      sync.RWMutex
	users   []models.User
	session *models.User
	orders  []models.Order
	current *models.Order
	theme   string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Users returns all registered users.
func (s *MemoryStore) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// SaveUsers replaces the user collection.
func (s *MemoryStore) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]models.User, len(users))
	copy(s.users, users)
	return nil
}

// Session returns the logged-in user snapshot, or nil.
func (s *MemoryStore) Session() (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	user := *s.session
	return &user, nil
}

// SaveSession stores the logged-in user snapshot.
func (s *MemoryStore) SaveSession(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *user
	s.session = &snapshot
	return nil
}

// ClearSession drops the session; clearing an absent one is a no-op.
func (s *MemoryStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// Orders returns the order history in insertion order.
func (s *MemoryStore) Orders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}

// SaveOrders replaces the order history.
func (s *MemoryStore) SaveOrders(orders []models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]models.Order, len(orders))
	copy(s.orders, orders)
	return nil
}

// CurrentOrder returns the in-progress draft, or nil.
func (s *MemoryStore) CurrentOrder() (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, nil
	}
	order := *s.current
	return &order, nil
}

// SaveCurrentOrder stores the in-progress draft.
func (s *MemoryStore) SaveCurrentOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := *order
	s.current = &draft
	return nil
}

// ClearCurrentOrder discards the in-progress draft.
func (s *MemoryStore) ClearCurrentOrder() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}

// Theme returns the display preference.
func (s *MemoryStore) Theme() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

// SaveTheme stores the display preference.
func (s *MemoryStore) SaveTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}
