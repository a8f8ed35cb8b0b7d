package report

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ledger/internal/core"
)

func TestWriteWorkbook(t *testing.T) {
	t.Parallel()

	accounts := []core.Account{
		{ID: "id-1", Name: "Grace", Balance: decimal.RequireFromString("800")},
		{ID: "id-2", Name: "Hannah Lee", Balance: decimal.RequireFromString("700.25")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, accounts))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Account ID", "Name", "Balance"},
		{"id-1", "Grace", "800"},
		{"id-2", "Hannah Lee", "700.25"},
	}, rows)
}

func TestWriteWorkbook_NoAccounts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "accounts.xlsx")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	exporter := NewExporter(Config{Path: path}, logger)

	written, err := exporter.Export(context.Background(), []core.Account{
		{ID: "id-1", Name: "Grace", Balance: decimal.RequireFromString("1000")},
	})
	require.NoError(t, err)
	require.Equal(t, path, written)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	require.Equal(t, "Grace", name)
}

func TestExporter_ExportUnwritablePath(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	exporter := NewExporter(Config{Path: filepath.Join(t.TempDir(), "missing", "accounts.xlsx")}, logger)

	_, err := exporter.Export(context.Background(), nil)
	require.Error(t, err)
}
