// Package memory provides an in-process implementation of the storage.Store interface.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps friends in a slice, in insertion order.
type Store struct {
	mu      sync.RWMutex
	friends []models.Friend
	index   map[int]int // friend ID -> position in friends
}

// New creates an empty Store.
func New() *Store {
	return &Store{index: make(map[int]int)}
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// CreateFriend appends a friend.
func (s *Store) CreateFriend(ctx context.Context, friend *models.Friend) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[friend.ID]; exists {
		return fmt.Errorf("%w: %d", storage.ErrDuplicateID, friend.ID)
	}

	s.index[friend.ID] = len(s.friends)
	s.friends = append(s.friends, *friend)
	return nil
}

// GetFriend returns a copy of the friend with the given ID.
func (s *Store) GetFriend(ctx context.Context, id int) (*models.Friend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}
	friend := s.friends[pos]
	return &friend, nil
}

// ListFriends returns a copy of all friends.
func (s *Store) ListFriends(ctx context.Context) ([]models.Friend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends := make([]models.Friend, len(s.friends))
	copy(friends, s.friends)
	return friends, nil
}

// UpdateBalance replaces the balance of one friend.
func (s *Store) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}
	s.friends[pos].Balance = balance
	return nil
}
