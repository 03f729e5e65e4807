// Package forms holds the input state of the add-friend and split-bill
// forms and turns a submission into a ledger call.
//
// Forms reject bad input silently: Submit returns an error wrapping
// ErrRejected, the ledger is not touched and the inputs are kept so the
// user can fix them. Rendering surfaces show nothing for a rejection.
package forms

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/models"
)

// ErrRejected marks a submission that was ignored because of its input.
var ErrRejected = errors.New("submission rejected")

// FriendAdder is the part of the ledger the add-friend form needs.
type FriendAdder interface {
	AddFriend(ctx context.Context, name, image string) (*models.Friend, error)
}

// BillSplitter is the part of the ledger the split-bill form needs.
type BillSplitter interface {
	SplitBill(ctx context.Context, amount decimal.Decimal, payer models.Payer) (*models.Friend, error)
}
