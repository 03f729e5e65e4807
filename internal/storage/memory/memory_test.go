package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	for _, f := range models.SeedFriends() {
		f := f
		if err := store.CreateFriend(ctx, &f); err != nil {
			t.Fatalf("CreateFriend failed: %v", err)
		}
	}

	t.Run("ListFriends keeps insertion order", func(t *testing.T) {
		friends, err := store.ListFriends(ctx)
		if err != nil {
			t.Fatalf("ListFriends failed: %v", err)
		}
		if len(friends) != 3 {
			t.Fatalf("expected 3 friends, got %d", len(friends))
		}
		for i, want := range []int{1, 2, 3} {
			if friends[i].ID != want {
				t.Errorf("friends[%d].ID = %d, want %d", i, friends[i].ID, want)
			}
		}
	})

	t.Run("CreateFriend rejects duplicate ID", func(t *testing.T) {
		err := store.CreateFriend(ctx, &models.Friend{ID: 2, Name: "Other Bob"})
		if !errors.Is(err, storage.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("UpdateBalance changes only one friend", func(t *testing.T) {
		if err := store.UpdateBalance(ctx, 2, decimal.NewFromInt(53)); err != nil {
			t.Fatalf("UpdateBalance failed: %v", err)
		}
		bob, err := store.GetFriend(ctx, 2)
		if err != nil {
			t.Fatalf("GetFriend failed: %v", err)
		}
		if bob.Balance.String() != "53" {
			t.Errorf("Bob balance = %s, want 53", bob.Balance)
		}
		charlie, _ := store.GetFriend(ctx, 3)
		if charlie.Balance.String() != "14" {
			t.Errorf("Charlie balance = %s, want 14", charlie.Balance)
		}
	})

	t.Run("returned friends are copies", func(t *testing.T) {
		alice, _ := store.GetFriend(ctx, 1)
		alice.Name = "Mallory"
		again, _ := store.GetFriend(ctx, 1)
		if again.Name != "Alice Johnson" {
			t.Errorf("store mutated through returned pointer: %q", again.Name)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		if _, err := store.GetFriend(ctx, 999); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetFriend: expected ErrNotFound, got %v", err)
		}
		if err := store.UpdateBalance(ctx, 999, decimal.Zero); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateBalance: expected ErrNotFound, got %v", err)
		}
	})
}
