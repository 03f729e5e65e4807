// Package ledger holds the single source of truth for the friend list,
// the current selection and the add-friend panel.
//
// All mutation goes through Ledger methods so the invariants (unique IDs,
// at most one selected friend) are enforced in one place. Calls are
// serialized, so concurrent callers observe events one at a time.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/calculator"
	"github.com/mmynk/splitneat/internal/metrics"
	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/storage"
)

var (
	// ErrInvalidFriend is returned by AddFriend when the name or image is empty.
	ErrInvalidFriend = errors.New("friend name and image are required")
	// ErrNoSelection is returned by SplitBill when no friend is selected.
	ErrNoSelection = errors.New("no friend selected")
	// ErrFriendNotFound is returned by SelectFriend for an unknown ID.
	ErrFriendNotFound = errors.New("friend not found")
)

const (
	// Friend IDs are drawn from [1, maxFriendID).
	maxFriendID = 10000

	maxIDAttempts = 100
)

// Snapshot is a consistent view of the ledger state.
type Snapshot struct {
	Friends       []models.Friend
	Selected      *models.Friend // nil when no friend is selected
	ShowAddFriend bool
}

// IsSelected reports whether the friend with the given ID is selected.
func (s Snapshot) IsSelected(id int) bool {
	return s.Selected != nil && s.Selected.ID == id
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDSource overrides the random friend ID generator.
func WithIDSource(next func() int) Option {
	return func(l *Ledger) {
		l.nextID = next
	}
}

// WithMetrics records ledger activity in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// Ledger owns the friends, the selection and the add-friend panel flag.
type Ledger struct {
	mu      sync.Mutex
	store   storage.Store
	nextID  func() int
	metrics *metrics.Metrics

	selectedID    int
	hasSelection  bool
	showAddFriend bool
}

// New creates a Ledger on top of the given store.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		nextID: randomID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func randomID() int {
	return rand.IntN(maxFriendID-1) + 1
}

// Seed appends the given friends as-is, keeping their IDs and balances.
func (l *Ledger) Seed(ctx context.Context, friends []models.Friend) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range friends {
		friend := friends[i]
		if err := l.store.CreateFriend(ctx, &friend); err != nil {
			return fmt.Errorf("failed to seed friend %q: %w", friend.Name, err)
		}
	}

	slog.Info("Ledger seeded", "friends_count", len(friends))
	return nil
}

// AddFriend creates a friend with a fresh unique ID and a zero balance,
// appends it to the list and closes the add-friend panel.
// Returns ErrInvalidFriend, leaving everything untouched, when name or
// image is empty.
func (l *Ledger) AddFriend(ctx context.Context, name, image string) (*models.Friend, error) {
	if name == "" || image == "" {
		return nil, ErrInvalidFriend
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		friend := models.NewFriend(l.nextID(), name, image)

		err := l.store.CreateFriend(ctx, friend)
		if errors.Is(err, storage.ErrDuplicateID) {
			slog.Debug("Friend ID collision, retrying", "friend_id", friend.ID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to add friend: %w", err)
		}

		l.showAddFriend = false
		l.metrics.FriendAdded()
		slog.Info("Friend added", "friend_id", friend.ID, "name", friend.Name)
		return friend, nil
	}

	return nil, fmt.Errorf("failed to allocate a friend id after %d attempts", maxIDAttempts)
}

// ToggleAddFriendPanel flips the add-friend panel visibility and returns the new value.
func (l *Ledger) ToggleAddFriendPanel() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.showAddFriend = !l.showAddFriend
	slog.Debug("Add friend panel toggled", "visible", l.showAddFriend)
	return l.showAddFriend
}

// SelectFriend selects the friend, or clears the selection if that friend
// is already selected. The add-friend panel is always closed.
func (l *Ledger) SelectFriend(ctx context.Context, id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.store.GetFriend(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrFriendNotFound, id)
		}
		return fmt.Errorf("failed to select friend: %w", err)
	}

	if l.hasSelection && l.selectedID == id {
		l.hasSelection = false
		l.selectedID = 0
	} else {
		l.hasSelection = true
		l.selectedID = id
	}
	l.showAddFriend = false

	slog.Debug("Selection changed", "friend_id", id, "selected", l.hasSelection)
	return nil
}

// SplitBill moves the selected friend's balance by amount: up when the user
// paid, down when the friend paid. The selection is cleared afterwards.
// The amount is applied as given; callers compute it (see forms.SplitBill).
// Returns ErrNoSelection when no friend is selected.
func (l *Ledger) SplitBill(ctx context.Context, amount decimal.Decimal, payer models.Payer) (*models.Friend, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.hasSelection {
		return nil, ErrNoSelection
	}

	friend, err := l.store.GetFriend(ctx, l.selectedID)
	if errors.Is(err, storage.ErrNotFound) {
		// The selected friend is gone; drop the dangling reference.
		l.clearSelection()
		return nil, ErrNoSelection
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load selected friend: %w", err)
	}

	previous := friend.Balance
	friend.Balance = calculator.ApplySplit(friend.Balance, amount, payer)
	if err := l.store.UpdateBalance(ctx, friend.ID, friend.Balance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	l.clearSelection()
	l.metrics.BillSplit(string(payer))
	slog.Info("Bill split",
		"friend_id", friend.ID,
		"payer", payer,
		"amount", amount.String(),
		"previous_balance", previous.String(),
		"balance", friend.Balance.String(),
	)
	return friend, nil
}

// Snapshot returns the current friends, selection and panel state.
func (l *Ledger) Snapshot(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	friends, err := l.store.ListFriends(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list friends: %w", err)
	}

	snap := Snapshot{
		Friends:       friends,
		ShowAddFriend: l.showAddFriend,
	}

	if l.hasSelection {
		for i := range friends {
			if friends[i].ID == l.selectedID {
				selected := friends[i]
				snap.Selected = &selected
				break
			}
		}
		if snap.Selected == nil {
			l.clearSelection()
		}
	}

	return snap, nil
}

func (l *Ledger) clearSelection() {
	l.hasSelection = false
	l.selectedID = 0
}
