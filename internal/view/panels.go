package view

import (
	"fmt"

	"github.com/mmynk/splitneat/internal/calculator"
	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/models"
)

// AddFriendButtonLabel is the label of the button that opens and closes
// the add-friend panel.
func AddFriendButtonLabel(open bool) string {
	if open {
		return "Close"
	}
	return "➕ Add Friend"
}

// SplitBillLabels holds the friend-specific text of the split-bill form.
type SplitBillLabels struct {
	Heading      string
	FriendField  string
	FriendOption string
	UserOption   string
}

// SplitBillFor returns the labels for splitting a bill with f.
func SplitBillFor(f models.Friend) SplitBillLabels {
	return SplitBillLabels{
		Heading:      fmt.Sprintf("Split a bill with %s", f.Name),
		FriendField:  fmt.Sprintf("%s's expense", f.Name),
		FriendOption: f.Name,
		UserOption:   "You",
	}
}

// Summary is the overall position shown under the list.
type Summary struct {
	OwedToUser string
	UserOwes   string
	Message    string
	Tone       Tone
}

// SummaryOf totals the balances in the snapshot.
func SummaryOf(snap ledger.Snapshot) Summary {
	s := calculator.Summarize(snap.Friends)

	out := Summary{
		OwedToUser: s.OwedToUser.String(),
		UserOwes:   s.UserOwes.String(),
	}
	switch s.Net.Sign() {
	case 1:
		out.Message = fmt.Sprintf("Overall you are owed $%s", s.Net)
		out.Tone = TonePositive
	case -1:
		out.Message = fmt.Sprintf("Overall you owe $%s", s.Net.Abs())
		out.Tone = ToneWarning
	default:
		out.Message = "Overall you are even"
		out.Tone = ToneNeutral
	}
	return out
}
