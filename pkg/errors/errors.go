package errors

import "fmt"

// ErrValidation is returned when manual input is malformed or misaligned
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// ErrFetch is returned when a remote storefront fetch fails (network error or non-2xx)
type ErrFetch struct {
	URL string
	Err error
}

func (e *ErrFetch) Error() string {
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Err)
}

func (e *ErrFetch) Unwrap() error {
	return e.Err
}

// ErrDecode is returned when a fetched body is not valid JSON
type ErrDecode struct {
	Source string
	Err    error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode failed for %s: %v", e.Source, e.Err)
}

func (e *ErrDecode) Unwrap() error {
	return e.Err
}

// ErrSchema is returned when an expected field is missing from fetched JSON
type ErrSchema struct {
	Source string
	Field  string
}

func (e *ErrSchema) Error() string {
	return fmt.Sprintf("unexpected schema from %s: missing %s", e.Source, e.Field)
}
