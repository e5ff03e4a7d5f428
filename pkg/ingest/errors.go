package ingest

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so the transport layer can branch on
// error kind instead of string matching. AI extraction has no kind here
// on purpose: it never fails outward.
type Kind string

const (
	KindInvalidPayload  Kind = "invalid_payload"
	KindDecodeFailure   Kind = "decode_failure"
	KindPDFParseFailure Kind = "pdf_parse_failure"
	KindStoreFailure    Kind = "store_failure"
)

// Error wraps an underlying cause with its pipeline failure kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the failure kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind, true
	}
	return "", false
}
