package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

// AccountStore keeps the account snapshot in the accounts table. Save
// replaces every row inside one transaction.
type AccountStore struct {
	db     *sql.DB
	tx     *sql.Tx
	logger core.Logger
}

func NewAccountStore(db *sql.DB, logger core.Logger) AccountStore {
	return AccountStore{
		db:     db,
		logger: logger,
	}
}

func (s AccountStore) Load(ctx context.Context) ([]core.Account, error) {
	query := `
		SELECT account_id, name, balance
		FROM accounts
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var (
			account core.Account
			balance string
		)
		if err = rows.Scan(&account.ID, &account.Name, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		account.Balance, err = decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("%w: account %s has balance %q", core.ErrMalformedSnapshot, account.ID, balance)
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	s.logger.InfoContext(ctx, "Accounts loaded", "count", len(accounts))

	return accounts, nil
}

func (s AccountStore) Save(ctx context.Context, accounts []core.Account) error {
	err := s.Atomic(ctx, func(r AccountStore) error {
		if err := r.deleteAccounts(ctx); err != nil {
			return err
		}

		return r.addAccounts(ctx, accounts)
	})
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "Accounts saved", "count", len(accounts))

	return nil
}

func (s AccountStore) deleteAccounts(ctx context.Context) error {
	if s.tx == nil {
		return errors.New("deleteAccounts must be called within Atomic transaction")
	}

	if _, err := s.tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("failed to delete accounts: %w", err)
	}

	return nil
}

func (s AccountStore) addAccounts(ctx context.Context, accounts []core.Account) error {
	if s.tx == nil {
		return errors.New("addAccounts must be called within Atomic transaction")
	}

	// SQLite has a limit of 999 parameters (SQLITE_MAX_VARIABLE_NUMBER)
	// With 4 parameters per account, 100 rows per statement stays well below it
	const batchSize = 100
	for i := 0; i < len(accounts); i += batchSize {
		end := min(i+batchSize, len(accounts))
		if err := s.insertAccounts(ctx, i, accounts[i:end]); err != nil {
			return err
		}
	}

	return nil
}

func (s AccountStore) insertAccounts(ctx context.Context, offset int, accounts []core.Account) error {
	baseQuery := `
		INSERT INTO accounts (
			position,
			account_id,
			name,
			balance
		) VALUES `

	valuePlaceholder := "(?, ?, ?, ?)"

	query := baseQuery + valuePlaceholder
	for i := 1; i < len(accounts); i++ {
		query += ", " + valuePlaceholder
	}

	args := make([]any, 0, len(accounts)*4)
	for i, account := range accounts {
		args = append(args,
			offset+i,
			account.ID,
			account.Name,
			account.Balance.String(),
		)
	}

	if _, err := s.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert accounts: %w", err)
	}

	return nil
}

func (s AccountStore) Atomic(ctx context.Context, cb func(AccountStore) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := AccountStore{
		db:     s.db,
		tx:     tx,
		logger: s.logger,
	}

	if err = cb(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
