package service

import (
	"errors"
	"fmt"
)

// Виды ошибок сервисного слоя. Проверяются через errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream error")
	ErrIntegrity  = errors.New("integrity error")
)

var (
	ErrDistrictUnresolved = &Error{Kind: ErrNotFound, Message: "unable to detect district for provided coordinates"}
	ErrNoIncidentsFound   = &Error{Kind: ErrNotFound, Message: "No incidents found for heatmap generation"}
)

// Error - ошибка сервиса со стабильным сообщением для клиента.
// Kind задает вид ошибки, Err - внутреннюю причину, которая только логируется.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service: %s: %v", e.Message, e.Err)
	}
	return "service: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func validationError(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func upstreamError(message string, err error) error {
	return &Error{Kind: ErrUpstream, Message: message, Err: err}
}
