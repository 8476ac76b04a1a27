package gsheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"ordersync/internal/application"
	"ordersync/internal/domain"
	"ordersync/internal/ports"
)

// Appender implements ports.RowAppender against the Google Sheets v4 API
// using a service-account credentials file.
type Appender struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// Ensure Appender implements RowAppender
var _ ports.RowAppender = (*Appender)(nil)

// New builds the Sheets service from the credentials file. sheetName may be
// empty, in which case rows go to the first sheet of the document.
func New(ctx context.Context, spreadsheetID, credentialsFile, sheetName string) (*Appender, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, &application.SheetError{Doc: spreadsheetID, Kind: application.ErrSheetAuth, Err: err}
	}

	return &Appender{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendRow inserts the record after the last populated row of the target
// sheet. The returned rowRef is the updated range the API reports, which
// doubles as a cheap verification that the row landed.
func (a *Appender) AppendRow(ctx context.Context, rec domain.SyncRecord) (string, error) {
	target := "A1"
	if a.sheetName != "" {
		target = fmt.Sprintf("'%s'!A1", a.sheetName)
	}

	vr := &sheets.ValueRange{Values: [][]any{rec.Cells()}}

	resp, err := a.svc.Spreadsheets.Values.Append(a.spreadsheetID, target, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return "", &application.SheetError{Doc: a.spreadsheetID, Kind: classify(err), Err: err}
	}

	if resp.Updates != nil {
		return resp.Updates.UpdatedRange, nil
	}
	return "", nil
}

// classify maps an API failure to its error kind: 401/403 are authorization
// problems, 404 means the document does not exist, a blown deadline is a
// timeout, everything else is an append failure.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return application.ErrTimeout
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return application.ErrSheetAuth
		case http.StatusNotFound:
			return application.ErrSheetNotFound
		}
	}

	return application.ErrSheetAppend
}
