package csvstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ledger/internal/core"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "accounts.csv")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewStore(Config{Path: path}, logger), path
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	accounts, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestStore_SaveWritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)

	err := store.Save(context.Background(), []core.Account{
		{ID: "id-1", Name: "Grace", Balance: decimal.RequireFromString("800")},
		{ID: "id-2", Name: "Hannah Lee", Balance: decimal.RequireFromString("700.25")},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "account_id,name,balance\nid-1,Grace,800\nid-2,Hannah Lee,700.25\n", string(content))
}

func TestStore_SaveOverwritesPreviousSnapshot(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []core.Account{
		{ID: "id-1", Name: "Grace", Balance: decimal.RequireFromString("1")},
		{ID: "id-2", Name: "Hannah", Balance: decimal.RequireFromString("2")},
	}))
	require.NoError(t, store.Save(ctx, []core.Account{
		{ID: "id-3", Name: "Ivy", Balance: decimal.RequireFromString("3")},
	}))

	accounts, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, "id-3", accounts[0].ID)
}

func TestStore_LedgerRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	ledger, err := core.NewLedger(ctx, store)
	require.NoError(t, err)

	idA, err := ledger.CreateAccount(ctx, "Alice", decimal.RequireFromString("1000"))
	require.NoError(t, err)
	idB, err := ledger.CreateAccount(ctx, "Bob", decimal.RequireFromString("500"))
	require.NoError(t, err)
	require.NoError(t, ledger.Save(ctx))

	reloaded, err := core.NewLedger(ctx, store)
	require.NoError(t, err)

	a, ok := reloaded.GetAccountByID(idA)
	require.True(t, ok)
	require.Equal(t, "Alice", a.Name)
	require.True(t, decimal.RequireFromString("1000").Equal(a.Balance))

	b, ok := reloaded.GetAccountByID(idB)
	require.True(t, ok)
	require.Equal(t, "Bob", b.Name)
	require.True(t, decimal.RequireFromString("500").Equal(b.Balance))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		content       string
		expected      []core.Account
		expectedError error
	}{
		{
			name:     "empty_file",
			content:  "",
			expected: nil,
		},
		{
			name:     "header_only",
			content:  "account_id,name,balance\n",
			expected: nil,
		},
		{
			name:    "float_balances_and_crlf",
			content: "account_id,name,balance\r\nid-1,Grace,1000.0\r\nid-2,Hannah,0.5\r\n",
			expected: []core.Account{
				{ID: "id-1", Name: "Grace", Balance: decimal.RequireFromString("1000")},
				{ID: "id-2", Name: "Hannah", Balance: decimal.RequireFromString("0.5")},
			},
		},
		{
			name:          "too_few_columns",
			content:       "account_id,name,balance\nid-1,Grace\n",
			expectedError: core.ErrMalformedSnapshot,
		},
		{
			name:          "too_many_columns",
			content:       "account_id,name,balance\nid-1,Grace,1,extra\n",
			expectedError: core.ErrMalformedSnapshot,
		},
		{
			name:          "non_numeric_balance",
			content:       "account_id,name,balance\nid-1,Grace,lots\n",
			expectedError: core.ErrMalformedSnapshot,
		},
		{
			name:          "broken_quoting",
			content:       "account_id,name,balance\nid-1,\"Grace,1\n",
			expectedError: core.ErrMalformedSnapshot,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			accounts, err := Decode(strings.NewReader(tt.content))
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Len(t, accounts, len(tt.expected))
			for i, want := range tt.expected {
				require.Equal(t, want.ID, accounts[i].ID)
				require.Equal(t, want.Name, accounts[i].Name)
				require.True(t, want.Balance.Equal(accounts[i].Balance))
			}
		})
	}
}
