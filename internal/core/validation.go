package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ParseAmount converts user input into a strictly positive amount.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be empty", ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, amount)
	}

	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}

	return value, nil
}

func IsValidAmount(amount string) bool {
	_, err := ParseAmount(amount)
	return err == nil
}
