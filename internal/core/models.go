package core

import (
	"github.com/shopspring/decimal"
)

type Account struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if !a.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Transfer withdraws from a before depositing into recipient. The withdrawal
// rejects every amount the deposit could reject, so a failed transfer leaves
// both accounts untouched.
func (a *Account) Transfer(recipient *Account, amount decimal.Decimal) error {
	if recipient == nil {
		return ErrInvalidRecipient
	}

	if err := a.Withdraw(amount); err != nil {
		return err
	}

	return recipient.Deposit(amount)
}
