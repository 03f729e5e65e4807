package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Friend represents one person the user splits bills with.
type Friend struct {
	// ID is the unique identifier for the friend.
	// Assigned once at creation and never changed.
	ID int `json:"id" yaml:"id"`

	// Name is the display name of the friend (e.g., "Alice Johnson").
	Name string `json:"name" yaml:"name"`

	// Image is the avatar URL. Friends added at runtime get their ID
	// appended so two friends never share a cached avatar.
	Image string `json:"image" yaml:"image"`

	// Balance is the running signed total between the user and this friend.
	// See the package documentation for the sign convention.
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// NewFriend builds a friend with a zero balance and an ID-suffixed image URL.
func NewFriend(id int, name, image string) *Friend {
	return &Friend{
		ID:      id,
		Name:    name,
		Image:   AvatarURL(image, id),
		Balance: decimal.Zero,
	}
}

// AvatarURL appends the friend ID to an image URL.
func AvatarURL(image string, id int) string {
	return fmt.Sprintf("%s?=%d", image, id)
}

// Owed returns the tagged form of the friend's balance.
func (f Friend) Owed() Owed {
	return OwedFromBalance(f.Balance)
}

// SeedFriends returns the friends a fresh ledger starts with.
func SeedFriends() []Friend {
	return []Friend{
		{
			ID:      1,
			Name:    "Alice Johnson",
			Image:   "https://i.pravatar.cc/150?u=alice",
			Balance: decimal.Zero,
		},
		{
			ID:      2,
			Name:    "Bob Smith",
			Image:   "https://i.pravatar.cc/150?u=bob",
			Balance: decimal.NewFromInt(-7),
		},
		{
			ID:      3,
			Name:    "Charlie Rose",
			Image:   "https://i.pravatar.cc/150?u=charlie",
			Balance: decimal.NewFromInt(14),
		},
	}
}
