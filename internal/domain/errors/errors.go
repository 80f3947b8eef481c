package errors

import (
	"net/http"

	"petkeeper/internal/errors"
)

// Kind is the error taxonomy exposed to callers of the callable operations.
type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidArgument    Kind = "invalid-argument"
	KindNotFound           Kind = "not-found"
	KindFailedPrecondition Kind = "failed-precondition"
	KindInternal           Kind = "internal"
)

// HTTPCode maps a kind to the status code used by the HTTP surface.
func (k Kind) HTTPCode() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Callable error kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, surfaced verbatim for non-internal kinds
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so errors derived via WithDetails
// still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the callable error kind
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Caller-related errors
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		"UNAUTHENTICATED",
		"Usuário não autenticado.",
		"",
	)

	ErrCallerNotFound = NewBaseError(
		KindNotFound,
		"CALLER_NOT_FOUND",
		"Usuário que fez a chamada não encontrado.",
		"",
	)

	ErrNoFamilyCode = NewBaseError(
		KindFailedPrecondition,
		"NO_FAMILY_CODE",
		"Usuário não tem um código de família.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado.",
		"",
	)

	// Pet-related errors
	ErrPetNotFound = NewBaseError(
		KindNotFound,
		"PET_NOT_FOUND",
		"Pet não encontrado.",
		"",
	)

	// Validation-related errors
	ErrInvalidArgument = NewBaseError(
		KindInvalidArgument,
		"INVALID_ARGUMENT",
		"Dados obrigatórios não fornecidos.",
		"",
	)

	ErrUnknownEventKind = NewBaseError(
		KindInvalidArgument,
		"UNKNOWN_EVENT_KIND",
		"Tipo de evento desconhecido.",
		"",
	)

	// General errors
	ErrInternal = NewBaseError(
		KindInternal,
		"INTERNAL",
		"Erro interno do servidor.",
		"",
	)
)

// InternalError carries an unexpected store or transport failure. The cause is
// kept for server-side logs; callers only ever see ErrInternal's message.
type InternalError struct {
	err     error
	details string
}

// NewInternalError creates an internal error around cause
func NewInternalError(err error, details string) AppError {
	return &InternalError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.err == nil {
		return e.details
	}

	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the cause
func (e *InternalError) Unwrap() error {
	return e.err
}

// Kind returns KindInternal
func (e *InternalError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *InternalError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *InternalError) ErrorCode() string {
	return ErrInternal.ErrorCode()
}

// Message returns the generic internal message
func (e *InternalError) Message() string {
	return ErrInternal.Message()
}

// Details returns detailed error information
func (e *InternalError) Details() string {
	return e.details
}

// AsInternal returns err unchanged when it already is an AppError and wraps it
// as an InternalError otherwise.
func AsInternal(err error, details string) error {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return err
	}

	return NewInternalError(err, details)
}

// KindOf reports the kind of err; anything that is not an AppError is internal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
