package models

import "fmt"

// Payer identifies who physically paid a bill.
type Payer string

const (
	// PayerUser means the user fronted the money.
	PayerUser Payer = "user"
	// PayerFriend means the selected friend fronted the money.
	PayerFriend Payer = "friend"
)

// ParsePayer converts a form or wire value into a Payer.
// An empty value defaults to PayerUser.
func ParsePayer(s string) (Payer, error) {
	switch Payer(s) {
	case "", PayerUser:
		return PayerUser, nil
	case PayerFriend:
		return PayerFriend, nil
	default:
		return "", fmt.Errorf("unknown payer %q", s)
	}
}

// Other returns the opposite party.
func (p Payer) Other() Payer {
	if p == PayerFriend {
		return PayerUser
	}
	return PayerFriend
}
