package cmd

import (
	"errors"
	"testing"

	"ordersync/internal/application"
	"ordersync/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation failure",
			err:  &application.ValidationError{Field: "to-date", Message: "must not be before from-date"},
			want: exitValidation,
		},
		{
			name: "missing configuration",
			err:  &application.ConfigError{Missing: []string{"GOOGLE_SHEET_ID"}},
			want: exitConfig,
		},
		{
			name: "source connection failure",
			err: &application.SourceError{
				Source: domain.SourceB,
				Label:  "source-b",
				Kind:   application.ErrConnection,
				Err:    errors.New("dial tcp: connection refused"),
			},
			want: exitSource,
		},
		{
			name: "source timeout",
			err: &application.SourceError{
				Source: domain.SourceA,
				Label:  "source-a",
				Kind:   application.ErrTimeout,
				Err:    errors.New("context deadline exceeded"),
			},
			want: exitSource,
		},
		{
			name: "spreadsheet failure",
			err:  &application.SheetError{Doc: "doc-123", Kind: application.ErrSheetAppend, Err: errors.New("500")},
			want: exitSheet,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: exitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
