package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/echuwok12/SplitPayment/internal/apperr"
)

var (
	// Cent is the smallest currency unit.
	Cent = decimal.New(1, -2)

	// MaxAmount bounds a single expense (the ten-digit, two-scale column of the schema).
	MaxAmount = decimal.New(100_000_000, 0)
)

const (
	// maxAmountLength bounds the text of an amount before it is parsed.
	maxAmountLength = 32

	// Exponent range accepted before any rounding or comparison. Values outside
	// it are either below a cent or at least MaxAmount, and rescaling them
	// would cost time proportional to the exponent.
	minExponent = -maxAmountLength
	maxExponent = 8
)

// ParseAmount parses a positive amount with at most two fractional digits.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := parseDecimal("amount", s)
	if err != nil {
		return decimal.Zero, err
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidateAmount checks an expense amount: > 0, below MaxAmount, two fractional digits at most.
func ValidateAmount(d decimal.Decimal) error {
	if err := checkMagnitude("amount", d); err != nil {
		return err
	}
	if !d.IsPositive() {
		return apperr.Validationf("amount must be greater than zero, got %s", d.String())
	}
	if d.GreaterThanOrEqual(MaxAmount) {
		return apperr.Validationf("amount %s exceeds maximum of %s", d.String(), Format(MaxAmount.Sub(Cent)))
	}
	if !hasCentPrecision(d) {
		return apperr.Validationf("amount %s has more than two decimal places", d.String())
	}
	return nil
}

// ParseShareAmount parses a share amount: >= 0, below MaxAmount, with at most
// two fractional digits.
func ParseShareAmount(s string) (decimal.Decimal, error) {
	d, err := parseDecimal("share amount", s)
	if err != nil {
		return decimal.Zero, err
	}
	if err := validateShareAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func validateShareAmount(d decimal.Decimal) error {
	if err := checkMagnitude("share amount", d); err != nil {
		return err
	}
	if d.IsNegative() {
		return apperr.Validationf("share amount must not be negative, got %s", d.String())
	}
	if d.GreaterThanOrEqual(MaxAmount) {
		return apperr.Validationf("share amount %s exceeds maximum of %s", d.String(), Format(MaxAmount.Sub(Cent)))
	}
	if !hasCentPrecision(d) {
		return apperr.Validationf("share amount %s has more than two decimal places", d.String())
	}
	return nil
}

// Format renders an amount with exactly two fractional digits, e.g. "-3.40".
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// parseDecimal parses s, quoting it in errors only while it is short.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, apperr.Validationf("%s is required", field)
	}
	if len(s) > maxAmountLength {
		return decimal.Zero, apperr.Validationf("%s is longer than %d characters", field, maxAmountLength)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validationf("malformed %s %q", field, s)
	}
	return d, nil
}

// checkMagnitude rejects values whose exponent alone puts them out of range.
// It only inspects the sign and exponent, so it is cheap for any input.
func checkMagnitude(field string, d decimal.Decimal) error {
	switch exp := d.Exponent(); {
	case exp > maxExponent && d.Sign() != 0:
		return apperr.Validationf("%s exceeds maximum of %s", field, Format(MaxAmount.Sub(Cent)))
	case exp > maxExponent, exp < minExponent:
		return apperr.Validationf("%s is out of range", field)
	}
	return nil
}

func hasCentPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
