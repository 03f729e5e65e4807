package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitneat/internal/models"
)

var (
	// ErrMissingAmount is returned for empty amount text.
	ErrMissingAmount = errors.New("amount is required")
	// ErrInvalidAmount is returned for text that is not a usable number.
	ErrInvalidAmount = errors.New("amount must be a number")
	// ErrAmountOutOfRange is returned alongside ErrInvalidAmount for amounts
	// too large or too precise to handle.
	ErrAmountOutOfRange = errors.New("amount is out of range")
	// ErrExpenseExceedsBill is returned when the user's expense is above the bill.
	ErrExpenseExceedsBill = errors.New("your expense cannot be more than the bill")
)

// Accepted amounts: |d| <= 10^15 with at most 12 decimal places.
// The exponent is checked before any comparison so a huge exponent is
// never expanded.
var maxAmount = decimal.New(1, 15)

const (
	minExponent = -12
	maxExponent = 15
)

// ParseAmount parses a form amount such as "100" or "12.50".
// Amounts beyond 10^15 or finer than 10^-12 are rejected with
// ErrAmountOutOfRange, which also matches ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrMissingAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, ErrAmountOutOfRange)
	}
	if d.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, ErrAmountOutOfRange)
	}
	return d, nil
}

// FriendExpense is the friend's part of the bill: bill - paidByUser.
func FriendExpense(bill, paidByUser decimal.Decimal) decimal.Decimal {
	return bill.Sub(paidByUser)
}

// SplitAmount computes how far a bill moves the friend's balance.
//
// If the user paid, the friend now owes their own expense (bill - paidByUser).
// If the friend paid, the user now owes their expense (paidByUser).
// The caller applies the amount in the direction given by the payer.
func SplitAmount(bill, paidByUser decimal.Decimal, payer models.Payer) (decimal.Decimal, error) {
	if paidByUser.GreaterThan(bill) {
		return decimal.Zero, ErrExpenseExceedsBill
	}
	if payer == models.PayerFriend {
		return paidByUser, nil
	}
	return FriendExpense(bill, paidByUser), nil
}

// ApplySplit returns the balance after a split of amount paid by payer.
func ApplySplit(balance, amount decimal.Decimal, payer models.Payer) decimal.Decimal {
	if payer == models.PayerFriend {
		return balance.Sub(amount)
	}
	return balance.Add(amount)
}
