// Package apperror defines the error kinds shared by repositories, services and
// the HTTP error boundary, together with their localized messages.
package apperror

import (
	"errors"
	"net/http"
	"runtime/debug"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindCreateFailed
	KindUpdateFailed
	KindDeleteFailed
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindCreateFailed:
		return "CreateFailed"
	case KindUpdateFailed:
		return "UpdateFailed"
	case KindDeleteFailed:
		return "DeleteFailed"
	default:
		return "Internal"
	}
}

// Status is the HTTP status rendered for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest, KindCreateFailed, KindUpdateFailed, KindDeleteFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message is a catalog entry: a stable error code plus its text per language.
type Message struct {
	Code string
	Text map[string]string
}

// Localize returns the text for lang, falling back to English and then to the code.
func (m Message) Localize(lang string) string {
	if s, ok := m.Text[lang]; ok && s != "" {
		return s
	}
	if s, ok := m.Text["en"]; ok && s != "" {
		return s
	}
	return m.Code
}

type Error struct {
	Kind    Kind
	Message Message
	Data    any
	Err     error
	Stack   string
}

func New(kind Kind, msg Message) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg Message, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Internal wraps an unclassified failure and records the stack at the call site.
func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: MsgInternal,
		Err:     err,
		Stack:   string(debug.Stack()),
	}
}

func (e *Error) Error() string {
	text := e.Message.Localize("en")
	if e.Err != nil {
		return text + ": " + e.Err.Error()
	}
	return text
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Code() string {
	return e.Message.Code
}

func (e *Error) WithData(data any) *Error {
	cp := *e
	cp.Data = data
	return &cp
}

// As extracts an *Error from the chain. Anything else is reported as an
// internal error wrapping err.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

func IsNotFound(err error) bool {
	return Is(err, KindNotFound)
}

func IsConflict(err error) bool {
	return Is(err, KindConflict)
}

func StatusOf(err error) int {
	return KindOf(err).Status()
}
