package application

import (
	"errors"
	"fmt"
	"strings"

	"ordersync/internal/domain"
)

// Sentinel errors classifying external failures
var (
	ErrConnection    = errors.New("connection failed")
	ErrQuery         = errors.New("query failed")
	ErrTimeout       = errors.New("timed out")
	ErrSheetAuth     = errors.New("spreadsheet authorization failed")
	ErrSheetNotFound = errors.New("spreadsheet not found")
	ErrSheetAppend   = errors.New("spreadsheet append failed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigError reports every missing or unusable environment variable at
// startup, so a single run surfaces the whole configuration problem.
type ConfigError struct {
	Missing []string
	Invalid []string
}

func (e *ConfigError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required environment variables: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid environment variables: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// SourceError represents a failure talking to one order data source.
// Kind is one of ErrConnection, ErrQuery or ErrTimeout.
type SourceError struct {
	Source domain.SourceID
	Label  string
	Kind   error
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s (%s): %v: %v", e.Source, e.Label, e.Kind, e.Err)
}

func (e *SourceError) Is(target error) bool {
	return target == e.Kind
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// SheetError represents a failure against the spreadsheet store.
// Kind is one of ErrSheetAuth, ErrSheetNotFound, ErrSheetAppend or ErrTimeout.
type SheetError struct {
	Doc  string
	Kind error
	Err  error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("spreadsheet %s: %v: %v", e.Doc, e.Kind, e.Err)
}

func (e *SheetError) Is(target error) bool {
	return target == e.Kind
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
