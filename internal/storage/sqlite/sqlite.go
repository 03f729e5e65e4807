// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/storage"
)

// MemoryDSN opens a private in-memory database that disappears with the process.
const MemoryDSN = ":memory:"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewInMemory creates a SQLiteStore backed by an in-memory database.
func NewInMemory() (*SQLiteStore, error) {
	return open(MemoryDSN)
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	return open(dbPath)
}

func open(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is its own database, so keep exactly one.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateFriend inserts a new friend at the end of the list.
func (s *SQLiteStore) CreateFriend(ctx context.Context, friend *models.Friend) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM friends WHERE id = ?", friend.ID).Scan(&count); err != nil {
		return fmt.Errorf("failed to check friend id: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d", storage.ErrDuplicateID, friend.ID)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO friends (id, name, image, balance) VALUES (?, ?, ?, ?)",
		friend.ID, friend.Name, friend.Image, friend.Balance.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetFriend retrieves a friend by ID.
func (s *SQLiteStore) GetFriend(ctx context.Context, id int) (*models.Friend, error) {
	friend := &models.Friend{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, image, balance FROM friends WHERE id = ?",
		id,
	).Scan(&friend.ID, &friend.Name, &friend.Image, &friend.Balance)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	return friend, nil
}

// ListFriends returns all friends in insertion order.
func (s *SQLiteStore) ListFriends(ctx context.Context) ([]models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, image, balance FROM friends ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.Name, &f.Image, &f.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return friends, nil
}

// UpdateBalance sets a friend's balance.
func (s *SQLiteStore) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE friends SET balance = ? WHERE id = ?",
		balance.String(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}

	return nil
}
