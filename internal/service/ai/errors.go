package ai

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a remote generation did not produce text.
type ErrorKind string

const (
	KindCredentialMissing ErrorKind = "credential_missing"
	KindNetworkFailure    ErrorKind = "network_failure"
	KindRemoteStatus      ErrorKind = "remote_status"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindSafetyBlocked     ErrorKind = "safety_blocked"
)

// GenerationError carries the kind of a remote failure and, for status errors, the HTTP code.
type GenerationError struct {
	Kind ErrorKind
	Code int
	Err  error
}

var (
	ErrCredentialMissing = &GenerationError{Kind: KindCredentialMissing}
	ErrNetworkFailure    = &GenerationError{Kind: KindNetworkFailure}
	ErrRemoteStatus      = &GenerationError{Kind: KindRemoteStatus}
	ErrMalformedResponse = &GenerationError{Kind: KindMalformedResponse}
	ErrSafetyBlocked     = &GenerationError{Kind: KindSafetyBlocked}
)

func (e *GenerationError) Error() string {
	msg := string(e.Kind)
	if e.Kind == KindRemoteStatus && e.Code != 0 {
		msg = fmt.Sprintf("%s(%d)", msg, e.Code)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is matches on kind; a zero Code in the target matches any status code.
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == 0 || t.Code == e.Code)
}

// KindOf returns the kind of err, or "" when err is not a GenerationError.
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

func networkError(err error) error {
	return &GenerationError{Kind: KindNetworkFailure, Err: err}
}

func statusError(code int, err error) error {
	return &GenerationError{Kind: KindRemoteStatus, Code: code, Err: err}
}

func malformedError(format string, args ...any) error {
	return &GenerationError{Kind: KindMalformedResponse, Err: fmt.Errorf(format, args...)}
}

func safetyError(format string, args ...any) error {
	return &GenerationError{Kind: KindSafetyBlocked, Err: fmt.Errorf(format, args...)}
}
