// Package view derives what the rendering surfaces show from a ledger
// snapshot. It knows nothing about HTML or terminals.
package view

import (
	"fmt"

	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/models"
)

// Tone is the visual style of a balance message.
type Tone string

const (
	ToneWarning  Tone = "warning"  // the user owes the friend
	TonePositive Tone = "positive" // the friend owes the user
	ToneNeutral  Tone = "neutral"  // even
)

// FriendRow is one rendered entry of the friend list.
type FriendRow struct {
	ID          int
	Name        string
	Image       string
	Message     string
	Tone        Tone
	Selected    bool
	ButtonLabel string
}

// BalanceMessage describes a friend's balance from the user's point of view.
// Amounts are printed as-is, without currency formatting.
func BalanceMessage(f models.Friend) (string, Tone) {
	owed := f.Owed()
	switch owed.Direction {
	case models.UserOwesFriend:
		return fmt.Sprintf("You owe %s $%s", f.Name, owed.Amount), ToneWarning
	case models.FriendOwesUser:
		return fmt.Sprintf("%s owes you $%s", f.Name, owed.Amount), TonePositive
	default:
		return fmt.Sprintf("You and %s are even", f.Name), ToneNeutral
	}
}

// FriendList renders every friend in ledger order.
func FriendList(snap ledger.Snapshot) []FriendRow {
	rows := make([]FriendRow, 0, len(snap.Friends))
	for _, f := range snap.Friends {
		msg, tone := BalanceMessage(f)
		selected := snap.IsSelected(f.ID)

		label := "Select"
		if selected {
			label = "Deselect"
		}

		rows = append(rows, FriendRow{
			ID:          f.ID,
			Name:        f.Name,
			Image:       f.Image,
			Message:     msg,
			Tone:        tone,
			Selected:    selected,
			ButtonLabel: label,
		})
	}
	return rows
}
