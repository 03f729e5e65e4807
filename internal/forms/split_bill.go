package forms

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/calculator"
	"github.com/mmynk/splitneat/internal/models"
)

// SplitBill is the input state of the split-bill form.
// Bill and PaidByUser hold raw text as typed.
type SplitBill struct {
	Bill       string
	PaidByUser string
	Payer      models.Payer
}

// NewSplitBill returns an empty form with the user as payer.
func NewSplitBill() SplitBill {
	return SplitBill{Payer: models.PayerUser}
}

// PaidByFriend is the friend's expense, bill - paidByUser, derived from the
// other two fields. It is "" until both parse as numbers.
func (f SplitBill) PaidByFriend() string {
	if f.Bill == "" || f.PaidByUser == "" {
		return ""
	}
	bill, err := calculator.ParseAmount(f.Bill)
	if err != nil {
		return ""
	}
	paid, err := calculator.ParseAmount(f.PaidByUser)
	if err != nil {
		return ""
	}
	return calculator.FriendExpense(bill, paid).String()
}

// Amount validates the inputs and returns the balance shift and payer.
func (f SplitBill) Amount() (decimal.Decimal, models.Payer, error) {
	payer, err := models.ParsePayer(string(f.Payer))
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: %v", ErrRejected, err)
	}

	bill, err := calculator.ParseAmount(f.Bill)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: bill: %w", ErrRejected, err)
	}
	paidByUser, err := calculator.ParseAmount(f.PaidByUser)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: your expense: %w", ErrRejected, err)
	}

	amount, err := calculator.SplitAmount(bill, paidByUser, payer)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("%w: %w", ErrRejected, err)
	}
	return amount, payer, nil
}

// Submit splits the bill with the selected friend and resets the form.
// Invalid input is rejected and the form is left as is.
func (f *SplitBill) Submit(ctx context.Context, splitter BillSplitter) (*models.Friend, error) {
	amount, payer, err := f.Amount()
	if err != nil {
		return nil, err
	}

	friend, err := splitter.SplitBill(ctx, amount, payer)
	if err != nil {
		return nil, err
	}

	f.Reset()
	return friend, nil
}

// Reset restores the initial values.
func (f *SplitBill) Reset() {
	*f = NewSplitBill()
}
