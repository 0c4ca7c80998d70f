// Package calculator holds the pure money logic of SplitPayment: splitting an
// expense into shares, aggregating balances, and building folder summaries.
// Nothing here performs I/O; bad input is reported as apperr validation errors.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/models"
)

// Share is one member's allocated portion of an expense.
type Share struct {
	MemberID string
	Amount   decimal.Decimal
}

// Allocate produces the shares for an expense.
//
// For SplitEqual the amount is divided across memberIDs (see AllocateEqual),
// unless the caller supplied explicit shares, which are then validated like a
// custom split. For SplitCustom the supplied shares are validated and returned.
func Allocate(amount decimal.Decimal, splitType models.SplitType, memberIDs []string, supplied []Share) ([]Share, error) {
	switch splitType {
	case models.SplitEqual:
		if len(supplied) > 0 {
			return ValidateCustom(amount, supplied)
		}
		return AllocateEqual(amount, memberIDs)
	case models.SplitCustom:
		return ValidateCustom(amount, supplied)
	default:
		return nil, apperr.Validationf("unknown split type %q", splitType)
	}
}

// AllocateEqual splits amount evenly across memberIDs so the shares sum exactly
// to amount.
//
// Every member gets floor(amount/n) to the cent; the leftover cents are handed
// out one each to the first members in the given order. 10.00 across three
// members yields 3.34, 3.33, 3.33.
func AllocateEqual(amount decimal.Decimal, memberIDs []string) ([]Share, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if len(memberIDs) == 0 {
		return nil, apperr.Validationf("equal split needs at least one member")
	}
	if err := checkDistinct(memberIDs); err != nil {
		return nil, err
	}

	cents := amount.Shift(2).IntPart()
	n := int64(len(memberIDs))
	base, remainder := cents/n, cents%n

	shares := make([]Share, len(memberIDs))
	for i, id := range memberIDs {
		c := base
		if int64(i) < remainder {
			c++
		}
		shares[i] = Share{MemberID: id, Amount: decimal.New(c, -2)}
	}
	return shares, nil
}

// ValidateCustom checks caller-supplied shares against amount and returns them
// in the given order.
//
// Each share needs a member and a non-negative amount below MaxAmount with
// cent precision. A member may appear once. The shares must sum to amount within less than one
// cent, which at cent precision means exactly.
func ValidateCustom(amount decimal.Decimal, shares []Share) ([]Share, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if len(shares) == 0 {
		return nil, apperr.Validationf("custom split needs at least one share")
	}

	ids := make([]string, len(shares))
	sum := decimal.Zero
	out := make([]Share, len(shares))
	for i, s := range shares {
		if s.MemberID == "" {
			return nil, apperr.Validationf("share %d has no member", i+1)
		}
		if err := validateShareAmount(s.Amount); err != nil {
			return nil, apperr.Validationf("share for member %s: %v", s.MemberID, err)
		}
		ids[i] = s.MemberID
		sum = sum.Add(s.Amount)
		out[i] = s
	}
	if err := checkDistinct(ids); err != nil {
		return nil, err
	}

	if sum.Sub(amount).Abs().GreaterThanOrEqual(Cent) {
		return nil, apperr.Validationf("shares sum to %s, expense amount is %s", Format(sum), Format(amount))
	}
	return out, nil
}

func checkDistinct(ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return apperr.Validationf("member %s appears more than once", id)
		}
		seen[id] = true
	}
	return nil
}
