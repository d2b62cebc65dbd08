package domain

import "fmt"

type ErrKind string

const (
	KindValidation ErrKind = "validation"
	KindNotFound   ErrKind = "not_found"
	KindForbidden  ErrKind = "forbidden"
	KindConflict   ErrKind = "conflict"
)

// AppError carries a stable machine-readable Code for API clients and a
// Kind for HTTP status mapping.
type AppError struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Meta)
}

func ErrValidation(code, msg string) error {
	return &AppError{Kind: KindValidation, Code: code, Message: msg}
}

func ErrValidationMeta(code, msg string, meta map[string]string) error {
	return &AppError{Kind: KindValidation, Code: code, Message: msg, Meta: meta}
}

func ErrNotFound(code, msg string) error {
	return &AppError{Kind: KindNotFound, Code: code, Message: msg}
}

func ErrForbidden(code, msg string) error {
	return &AppError{Kind: KindForbidden, Code: code, Message: msg}
}

func ErrConflict(code, msg string) error {
	return &AppError{Kind: KindConflict, Code: code, Message: msg}
}

func ErrNoSuchEvent() error {
	return ErrNotFound("NO_SUCH_EVENT", "no such event")
}

func ErrNoSuchFile() error {
	return ErrNotFound("NO_SUCH_FILE", "no such file")
}

func ErrAccessDenied() error {
	return ErrForbidden("ACCESS_DENIED", "access denied")
}

func ErrEventEnded() error {
	return ErrConflict("EVENT_ENDED", "this event has already ended")
}

func ErrAlreadyParticipating() error {
	return ErrConflict("ALREADY_PARTICIPATING", "you are already participating in this event")
}

func ErrNotParticipating() error {
	return ErrNotFound("NOT_PARTICIPATING", "you are not participating in this event")
}

func ErrEndsAtNotInFuture() error {
	return ErrValidation("ENDS_AT_SHOULD_BE_IN_FUTURE", "end date should be in the future")
}

func ErrInvalidType() error {
	return ErrValidation("INVALID_TYPE", "invalid event type")
}
