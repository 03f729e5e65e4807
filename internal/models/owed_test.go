package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOwedFromBalance(t *testing.T) {
	tests := []struct {
		name          string
		balance       decimal.Decimal
		wantDirection Direction
		wantAmount    string
	}{
		{name: "positive balance - friend owes user", balance: decimal.NewFromInt(14), wantDirection: FriendOwesUser, wantAmount: "14"},
		{name: "negative balance - user owes friend", balance: decimal.NewFromInt(-7), wantDirection: UserOwesFriend, wantAmount: "7"},
		{name: "zero balance - settled", balance: decimal.Zero, wantDirection: Settled, wantAmount: "0"},
		{name: "fractional balance", balance: decimal.RequireFromString("-2.5"), wantDirection: UserOwesFriend, wantAmount: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owed := OwedFromBalance(tt.balance)
			if owed.Direction != tt.wantDirection {
				t.Errorf("direction = %v, want %v", owed.Direction, tt.wantDirection)
			}
			if owed.Amount.String() != tt.wantAmount {
				t.Errorf("amount = %s, want %s", owed.Amount, tt.wantAmount)
			}
			if !owed.Balance().Equal(tt.balance) {
				t.Errorf("Balance() = %s, want %s", owed.Balance(), tt.balance)
			}
		})
	}
}

func TestParsePayer(t *testing.T) {
	tests := []struct {
		in      string
		want    Payer
		wantErr bool
	}{
		{in: "", want: PayerUser},
		{in: "user", want: PayerUser},
		{in: "friend", want: PayerFriend},
		{in: "someone", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePayer(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePayer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePayer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewFriend(t *testing.T) {
	f := NewFriend(42, "Dana", "http://x/img")

	if f.Image != "http://x/img?=42" {
		t.Errorf("image = %q, want id suffix", f.Image)
	}
	if !f.Balance.IsZero() {
		t.Errorf("balance = %s, want 0", f.Balance)
	}
}
