package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/models"
)

// Summary aggregates balances across all friends.
type Summary struct {
	OwedToUser decimal.Decimal // Sum of what friends owe the user
	UserOwes   decimal.Decimal // Sum of what the user owes friends
	Net        decimal.Decimal // OwedToUser - UserOwes
	Settled    int             // Friends with a zero balance
}

// Summarize computes the overall position of the user.
//
// Algorithm:
// - Friends owing the user add to OwedToUser
// - Friends the user owes add to UserOwes
// - Net = OwedToUser - UserOwes
func Summarize(friends []models.Friend) Summary {
	s := Summary{
		OwedToUser: decimal.Zero,
		UserOwes:   decimal.Zero,
	}

	for _, f := range friends {
		owed := f.Owed()
		switch owed.Direction {
		case models.FriendOwesUser:
			s.OwedToUser = s.OwedToUser.Add(owed.Amount)
		case models.UserOwesFriend:
			s.UserOwes = s.UserOwes.Add(owed.Amount)
		default:
			s.Settled++
		}
	}

	s.Net = s.OwedToUser.Sub(s.UserOwes)
	return s
}
