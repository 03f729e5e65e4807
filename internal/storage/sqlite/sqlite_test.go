package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "splitneat-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateFriend and GetFriend round trip", func(t *testing.T) {
		original := &models.Friend{
			ID:      7,
			Name:    "Dana",
			Image:   "http://x/img?=7",
			Balance: decimal.RequireFromString("-12.25"),
		}

		if err := store.CreateFriend(ctx, original); err != nil {
			t.Fatalf("CreateFriend failed: %v", err)
		}

		retrieved, err := store.GetFriend(ctx, 7)
		if err != nil {
			t.Fatalf("GetFriend failed: %v", err)
		}

		if retrieved.Name != original.Name {
			t.Errorf("Name mismatch: got %s, want %s", retrieved.Name, original.Name)
		}
		if retrieved.Image != original.Image {
			t.Errorf("Image mismatch: got %s, want %s", retrieved.Image, original.Image)
		}
		if !retrieved.Balance.Equal(original.Balance) {
			t.Errorf("Balance mismatch: got %s, want %s", retrieved.Balance, original.Balance)
		}
	})

	t.Run("CreateFriend rejects duplicate ID", func(t *testing.T) {
		err := store.CreateFriend(ctx, &models.Friend{ID: 7, Name: "Other", Image: "x"})
		if !errors.Is(err, storage.ErrDuplicateID) {
			t.Errorf("Expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("ListFriends keeps insertion order", func(t *testing.T) {
		// IDs deliberately out of numeric order
		for _, id := range []int{900, 3, 41} {
			if err := store.CreateFriend(ctx, &models.Friend{ID: id, Name: "F", Image: "x", Balance: decimal.Zero}); err != nil {
				t.Fatalf("CreateFriend(%d) failed: %v", id, err)
			}
		}

		friends, err := store.ListFriends(ctx)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}

		want := []int{7, 900, 3, 41}
		if len(friends) != len(want) {
			t.Fatalf("Expected %d friends, got %d", len(want), len(friends))
		}
		for i, id := range want {
			if friends[i].ID != id {
				t.Errorf("friends[%d].ID = %d, want %d", i, friends[i].ID, id)
			}
		}
	})

	t.Run("UpdateBalance", func(t *testing.T) {
		if err := store.UpdateBalance(ctx, 900, decimal.NewFromInt(-36)); err != nil {
			t.Fatalf("UpdateBalance failed: %v", err)
		}
		f, err := store.GetFriend(ctx, 900)
		if err != nil {
			t.Fatalf("GetFriend failed: %v", err)
		}
		if f.Balance.String() != "-36" {
			t.Errorf("Balance = %s, want -36", f.Balance)
		}
	})

	t.Run("Unknown friend", func(t *testing.T) {
		if _, err := store.GetFriend(ctx, 12345); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetFriend: expected ErrNotFound, got %v", err)
		}
		if err := store.UpdateBalance(ctx, 12345, decimal.Zero); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateBalance: expected ErrNotFound, got %v", err)
		}
	})
}

func TestNewInMemory(t *testing.T) {
	ctx := context.Background()

	store, err := NewInMemory()
	if err != nil {
		t.Fatalf("NewInMemory failed: %v", err)
	}
	defer store.Close()

	friends, err := store.ListFriends(ctx)
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}
	if len(friends) != 0 {
		t.Errorf("Expected empty store, got %d friends", len(friends))
	}

	for _, f := range models.SeedFriends() {
		f := f
		if err := store.CreateFriend(ctx, &f); err != nil {
			t.Fatalf("CreateFriend failed: %v", err)
		}
	}

	friends, err = store.ListFriends(ctx)
	if err != nil {
		t.Fatalf("ListFriends failed: %v", err)
	}
	if len(friends) != 3 {
		t.Errorf("Expected 3 friends, got %d", len(friends))
	}
}
