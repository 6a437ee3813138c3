package check

import (
	"errors"
	"fmt"
)

// Kind classifies why a check failed.
type Kind string

const (
	KindUsage      Kind = "usage"
	KindPageScript Kind = "page_script"
	KindRequest    Kind = "request"
	KindNavigation Kind = "navigation"
	KindCapture    Kind = "capture"
	KindUnexpected Kind = "unexpected"
)

// Error is a check failure with its classification.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func fail(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of err, KindUnexpected for unclassified errors
// and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// ExitCode maps the outcome of a run to the process exit status.
func ExitCode(err error) int {
	switch KindOf(err) {
	case "":
		return 0
	case KindUsage:
		return 1
	default:
		return 2
	}
}
