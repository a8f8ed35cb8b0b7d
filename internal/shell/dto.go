package shell

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

type CreateAccountRequest struct {
	Name           string `validate:"required,accountname"`
	InitialBalance string `validate:"required,amount"`
}

type AmountRequest struct {
	AccountID string `validate:"required"`
	Amount    string `validate:"required,amount"`
}

type TransferRequest struct {
	SenderID    string `validate:"required"`
	RecipientID string `validate:"required"`
	Amount      string `validate:"required,amount"`
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails on an empty tag or a nil func
	_ = validate.RegisterValidation("accountname", func(fl validator.FieldLevel) bool {
		return core.IsValidName(fl.Field().String())
	})
	_ = validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return core.IsValidAmount(fl.Field().String())
	})

	return validate
}

func (req CreateAccountRequest) ToDomain() (string, decimal.Decimal, error) {
	balance, err := core.ParseAmount(req.InitialBalance)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("invalid initial balance %s: %w", req.InitialBalance, err)
	}

	return req.Name, balance, nil
}

func (req AmountRequest) ToDomain() (decimal.Decimal, error) {
	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %s: %w", req.Amount, err)
	}

	return amount, nil
}

func (req TransferRequest) ToDomain() (decimal.Decimal, error) {
	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %s: %w", req.Amount, err)
	}

	return amount, nil
}
