// Package errors provides coded errors for the failure classes the bot
// distinguishes internally. Codes never reach chat users.
package errors

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeUnknown  = "UNKNOWN"
	CodeConfig   = "CONFIG"
	CodeAPI      = "API"
	CodeResponse = "RESPONSE"
)

// CodedError is implemented by every error created in this package.
type CodedError interface {
	error
	Code() string
	Unwrap() error
}

// Error is a message with a code and an optional cause.
type Error struct {
	code    string
	message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}

	return e.message
}

func (e *Error) Code() string {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the code of the first CodedError in err's chain,
// or CodeUnknown if there is none.
func Code(err error) string {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return err != nil && Code(err) == code
}

// NewConfigError reports missing or invalid configuration.
func NewConfigError(message string, cause error) error {
	return &Error{code: CodeConfig, message: message, err: cause}
}

// NewAPIError reports a failed round trip to an external API: transport
// failure, timeout, non-2xx status or an undecodable body.
func NewAPIError(message string, cause error) error {
	return &Error{code: CodeAPI, message: message, err: cause}
}

// NewResponseError reports a decodable response that lacks the expected data.
func NewResponseError(message string) error {
	return &Error{code: CodeResponse, message: message}
}
