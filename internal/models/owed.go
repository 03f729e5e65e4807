package models

import "github.com/shopspring/decimal"

// Direction says which way a debt points.
type Direction int

const (
	// Settled means nobody owes anything.
	Settled Direction = iota
	// FriendOwesUser means the friend owes the user.
	FriendOwesUser
	// UserOwesFriend means the user owes the friend.
	UserOwesFriend
)

// String returns a short label for logs.
func (d Direction) String() string {
	switch d {
	case FriendOwesUser:
		return "friend_owes_user"
	case UserOwesFriend:
		return "user_owes_friend"
	default:
		return "settled"
	}
}

// Owed is a balance with its direction made explicit.
// Amount is never negative.
type Owed struct {
	Direction Direction
	Amount    decimal.Decimal
}

// OwedFromBalance converts a signed balance into an Owed.
func OwedFromBalance(balance decimal.Decimal) Owed {
	switch balance.Sign() {
	case 1:
		return Owed{Direction: FriendOwesUser, Amount: balance}
	case -1:
		return Owed{Direction: UserOwesFriend, Amount: balance.Abs()}
	default:
		return Owed{Direction: Settled, Amount: decimal.Zero}
	}
}

// Balance converts the Owed back into a signed balance.
func (o Owed) Balance() decimal.Decimal {
	switch o.Direction {
	case FriendOwesUser:
		return o.Amount
	case UserOwesFriend:
		return o.Amount.Neg()
	default:
		return decimal.Zero
	}
}
