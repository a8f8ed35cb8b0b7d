package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger owns every account. All reads and mutations go through mu, and every
// mutation is followed by a full snapshot save.
type Ledger struct {
	mu       sync.Mutex
	store    SnapshotStore
	accounts map[string]*Account
	order    []string
	newID    func() string
}

func NewLedger(ctx context.Context, store SnapshotStore) (*Ledger, error) {
	l := &Ledger{
		store:    store,
		accounts: make(map[string]*Account),
		newID:    uuid.NewString,
	}

	if err := l.Load(ctx); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Ledger) CreateAccount(ctx context.Context, name string, initialBalance decimal.Decimal) (string, error) {
	if !IsValidName(name) {
		return "", ErrInvalidName
	}

	if initialBalance.IsNegative() {
		return "", ErrNegativeInitialBalance
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.newID()
	l.accounts[id] = &Account{ID: id, Name: name, Balance: initialBalance}
	l.order = append(l.order, id)

	if err := l.save(ctx); err != nil {
		return "", err
	}

	return id, nil
}

// GetAccountByID returns a copy of the account and whether it exists.
func (l *Ledger) GetAccountByID(id string) (Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return Account{}, false
	}

	return *account, true
}

func (l *Ledger) Accounts() []Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshot()
}

func (l *Ledger) Deposit(ctx context.Context, id string, amount decimal.Decimal) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}

	if err := account.Deposit(amount); err != nil {
		return Account{}, err
	}

	if err := l.save(ctx); err != nil {
		return Account{}, err
	}

	return *account, nil
}

func (l *Ledger) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}

	if err := account.Withdraw(amount); err != nil {
		return Account{}, err
	}

	if err := l.save(ctx); err != nil {
		return Account{}, err
	}

	return *account, nil
}

// Transfer moves amount from fromID to toID and returns the sender afterwards.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sender, ok := l.accounts[fromID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}

	// a nil recipient is rejected by Account.Transfer
	recipient := l.accounts[toID]

	if err := sender.Transfer(recipient, amount); err != nil {
		return Account{}, err
	}

	if err := l.save(ctx); err != nil {
		return Account{}, err
	}

	return *sender, nil
}

func (l *Ledger) Save(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.save(ctx)
}

// Load replaces the in-memory accounts with the stored snapshot. Rows with an
// empty or repeated id, an invalid name or a negative balance fail the whole
// load with ErrMalformedSnapshot.
func (l *Ledger) Load(ctx context.Context) error {
	stored, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts := make(map[string]*Account, len(stored))
	order := make([]string, 0, len(stored))
	for i, account := range stored {
		account := account
		if account.ID == "" {
			return fmt.Errorf("%w: row %d has an empty account id", ErrMalformedSnapshot, i+1)
		}
		if _, exists := accounts[account.ID]; exists {
			return fmt.Errorf("%w: duplicate account id %s", ErrMalformedSnapshot, account.ID)
		}
		if !IsValidName(account.Name) {
			return fmt.Errorf("%w: account %s has an invalid name", ErrMalformedSnapshot, account.ID)
		}
		if account.Balance.IsNegative() {
			return fmt.Errorf("%w: account %s has a negative balance", ErrMalformedSnapshot, account.ID)
		}

		accounts[account.ID] = &account
		order = append(order, account.ID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts = accounts
	l.order = order

	return nil
}

func (l *Ledger) save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.snapshot()); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}

	return nil
}

func (l *Ledger) snapshot() []Account {
	accounts := make([]Account, 0, len(l.order))
	for _, id := range l.order {
		accounts = append(accounts, *l.accounts[id])
	}

	return accounts
}
