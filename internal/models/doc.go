// Package models defines the core domain models for SplitNeat.
//
// # Models
//
//   - Friend: one person in the ledger with a running balance
//   - Payer: which party fronted the money for a bill
//   - Owed: a tagged view of a balance (who owes whom, and how much)
//
// # Balance Sign
//
// Friend.Balance is a signed amount from the user's point of view:
//   - positive: the friend owes the user
//   - negative: the user owes the friend
//   - zero: settled
//
// Code that needs the direction should go through Friend.Owed rather than
// comparing the sign by hand.
package models
