package shell

import (
	"context"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=service.go -destination=service_mock.go -package=shell

type Ledger interface {
	CreateAccount(ctx context.Context, name string, initialBalance decimal.Decimal) (string, error)
	GetAccountByID(id string) (core.Account, bool)
	Deposit(ctx context.Context, id string, amount decimal.Decimal) (core.Account, error)
	Withdraw(ctx context.Context, id string, amount decimal.Decimal) (core.Account, error)
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (core.Account, error)
	Accounts() []core.Account
}

type Exporter interface {
	Export(ctx context.Context, accounts []core.Account) (string, error)
}
