// Package storage provides abstractions for friend storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/models"
)

var (
	// ErrNotFound is returned when no friend has the requested ID.
	ErrNotFound = errors.New("friend not found")
	// ErrDuplicateID is returned when a friend with the same ID already exists.
	ErrDuplicateID = errors.New("friend id already exists")
)

// Store defines the interface for friend storage operations.
// This abstraction allows swapping storage backends (memory, SQLite)
// without changing the ledger.
//
// Implementations keep friends in insertion order.
type Store interface {
	// CreateFriend appends a new friend.
	// Returns ErrDuplicateID if the ID is taken.
	CreateFriend(ctx context.Context, friend *models.Friend) error

	// GetFriend retrieves a friend by ID.
	// Returns ErrNotFound if the friend does not exist.
	GetFriend(ctx context.Context, id int) (*models.Friend, error)

	// ListFriends returns all friends in insertion order.
	ListFriends(ctx context.Context) ([]models.Friend, error)

	// UpdateBalance sets the balance of an existing friend.
	// Returns ErrNotFound if the friend does not exist.
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error

	// Close releases any resources held by the store.
	Close() error
}
