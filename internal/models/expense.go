package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitType selects how an expense is divided among members.
type SplitType string

const (
	// SplitEqual divides the amount evenly across the folder's active members.
	SplitEqual SplitType = "equal"
	// SplitCustom uses explicit per-member amounts supplied by the caller.
	SplitCustom SplitType = "custom"
)

// ParseSplitType converts a wire value into a SplitType. Empty means equal.
func ParseSplitType(s string) (SplitType, error) {
	switch SplitType(s) {
	case "", SplitEqual:
		return SplitEqual, nil
	case SplitCustom:
		return SplitCustom, nil
	default:
		return "", fmt.Errorf("unknown split type %q", s)
	}
}

// Expense is a single payment made by one member on behalf of the folder.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// FolderID is the folder the expense belongs to.
	FolderID string

	// Description is what the money was spent on.
	Description string

	// Amount is the total paid, always > 0 with two fractional digits.
	Amount decimal.Decimal

	// PaidBy is the ID of the paying member. It must belong to FolderID.
	PaidBy string

	// SplitType records how the shares were produced.
	SplitType SplitType

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseShare is one member's portion of an expense.
// The shares of one expense always sum exactly to the expense amount.
type ExpenseShare struct {
	// ID is the unique identifier for the share (UUID format).
	ID string

	// ExpenseID is the expense this share belongs to.
	ExpenseID string

	// MemberID is the member who owes this share.
	MemberID string

	// Amount is the owed portion, >= 0.
	Amount decimal.Decimal
}
