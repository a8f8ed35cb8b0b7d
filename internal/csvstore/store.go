// Package csvstore keeps the account snapshot in a flat CSV file with the
// header account_id,name,balance. Every save rewrites the whole file.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

var header = []string{"account_id", "name", "balance"}

type Store struct {
	path   string
	logger core.Logger
}

func NewStore(config Config, logger core.Logger) Store {
	return Store{
		path:   config.Path,
		logger: logger,
	}
}

// Load returns no accounts when the file does not exist yet.
func (s Store) Load(ctx context.Context) ([]core.Account, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.InfoContext(ctx, "No account file found, starting empty", "path", s.path)
			return nil, nil
		}

		return nil, fmt.Errorf("failed to open account file: %w", err)
	}
	defer file.Close()

	accounts, err := Decode(file)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Accounts loaded", "path", s.path, "count", len(accounts))

	return accounts, nil
}

// Save truncates the file and writes the full snapshot. A crash mid-write can
// leave a truncated file behind.
func (s Store) Save(ctx context.Context, accounts []core.Account) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create account file: %w", err)
	}

	if err = Encode(file, accounts); err != nil {
		file.Close()
		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close account file: %w", err)
	}

	s.logger.DebugContext(ctx, "Accounts saved", "path", s.path, "count", len(accounts))

	return nil
}

func Encode(w io.Writer, accounts []core.Account) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, account := range accounts {
		record := []string{account.ID, account.Name, account.Balance.String()}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write account %s: %w", account.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush accounts: %w", err)
	}

	return nil
}

// Decode skips the header row and reads the remaining rows positionally. A row
// with the wrong number of columns or a non-numeric balance fails the decode.
func Decode(r io.Reader) ([]core.Account, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", core.ErrMalformedSnapshot, err)
	}

	var accounts []core.Account
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrMalformedSnapshot, err)
		}

		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", core.ErrMalformedSnapshot, line, len(record), len(header))
		}

		balance, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d has balance %q", core.ErrMalformedSnapshot, line, record[2])
		}

		accounts = append(accounts, core.Account{
			ID:      record[0],
			Name:    record[1],
			Balance: balance,
		})
	}

	return accounts, nil
}
