// Package report exports the account set as an Excel workbook.
package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"ledger/internal/core"
)

const sheetName = "Accounts"

var columns = []string{"Account ID", "Name", "Balance"}

type Exporter struct {
	path   string
	logger core.Logger
}

func NewExporter(config Config, logger core.Logger) Exporter {
	return Exporter{
		path:   config.Path,
		logger: logger,
	}
}

// Export overwrites the configured workbook and returns its path.
func (e Exporter) Export(ctx context.Context, accounts []core.Account) (string, error) {
	file, err := os.Create(e.path)
	if err != nil {
		return "", fmt.Errorf("failed to create workbook: %w", err)
	}

	if err = WriteWorkbook(file, accounts); err != nil {
		file.Close()
		return "", err
	}

	if err = file.Close(); err != nil {
		return "", fmt.Errorf("failed to close workbook: %w", err)
	}

	e.logger.InfoContext(ctx, "Accounts exported", "path", e.path, "count", len(accounts))

	return e.path, nil
}

func WriteWorkbook(w io.Writer, accounts []core.Account) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// built-in format 2 is "0.00"
	balanceStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("failed to create balance style: %w", err)
	}

	for i, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, column)
	}

	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, first, last, headerStyle)

	for i, account := range accounts {
		row := i + 2

		idCell, _ := excelize.CoordinatesToCellName(1, row)
		nameCell, _ := excelize.CoordinatesToCellName(2, row)
		balanceCell, _ := excelize.CoordinatesToCellName(3, row)

		f.SetCellValue(sheetName, idCell, account.ID)
		f.SetCellValue(sheetName, nameCell, account.Name)
		f.SetCellFloat(sheetName, balanceCell, account.Balance.InexactFloat64(), -1, 64)
		f.SetCellStyle(sheetName, balanceCell, balanceCell, balanceStyle)
	}

	f.SetColWidth(sheetName, "A", "A", 40)
	f.SetColWidth(sheetName, "B", "C", 20)

	if err = f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
