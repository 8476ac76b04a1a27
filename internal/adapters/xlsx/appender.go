package xlsx

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"ordersync/internal/application"
	"ordersync/internal/domain"
	"ordersync/internal/ports"
)

// Appender writes rows to a local .xlsx workbook. Used as an offline
// stand-in for the Google Sheets backend (SHEET_BACKEND=xlsx).
type Appender struct {
	path      string
	sheetName string
}

// Ensure Appender implements RowAppender
var _ ports.RowAppender = (*Appender)(nil)

// New creates an appender for the workbook at path. The file is created on
// first append if it does not exist. sheetName may be empty, in which case
// the first sheet is used.
func New(path, sheetName string) *Appender {
	return &Appender{path: path, sheetName: sheetName}
}

// AppendRow writes the record after the last populated row and saves the
// workbook. Existing rows are never touched.
func (a *Appender) AppendRow(ctx context.Context, rec domain.SyncRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", a.wrap(application.ErrSheetAppend, err)
	}

	f, created, err := a.open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	sheet := a.sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return "", a.wrap(application.ErrSheetNotFound, fmt.Errorf("no sheet named %q", sheet))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", a.wrap(application.ErrSheetAppend, err)
	}

	rowNum := len(rows) + 1
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return "", a.wrap(application.ErrSheetAppend, err)
	}
	if err := f.SetSheetRow(sheet, cell, &[]any{rec.RangeLabel, rec.AmountA.InexactFloat64(), rec.AmountB.InexactFloat64()}); err != nil {
		return "", a.wrap(application.ErrSheetAppend, err)
	}

	if created {
		err = f.SaveAs(a.path)
	} else {
		err = f.Save()
	}
	if err != nil {
		return "", a.wrap(application.ErrSheetAppend, err)
	}

	return fmt.Sprintf("%s!A%d", sheet, rowNum), nil
}

func (a *Appender) open() (f *excelize.File, created bool, err error) {
	f, err = excelize.OpenFile(a.path)
	if err == nil {
		return f, false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		f = excelize.NewFile()
		if a.sheetName != "" {
			if err := f.SetSheetName(f.GetSheetName(0), a.sheetName); err != nil {
				f.Close()
				return nil, false, a.wrap(application.ErrSheetAppend, err)
			}
		}
		return f, true, nil
	}
	return nil, false, a.wrap(application.ErrSheetAppend, err)
}

func (a *Appender) wrap(kind error, err error) error {
	return &application.SheetError{Doc: a.path, Kind: kind, Err: err}
}
