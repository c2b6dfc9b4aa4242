package failure

import (
	"errors"
	"strings"
)

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidKey      = errors.New("invalid key")
	ErrIO              = errors.New("i/o failure")
	ErrConfiguration   = errors.New("configuration error")
)

// Error is a classified failure. Marker is one of the sentinels above.
type Error struct {
	Marker error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Marker.Error())
	b.WriteString(": ")
	b.WriteString(e.Detail)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Marker}
	}
	return []error{e.Marker, e.Err}
}

// Wrap builds a classified error from component and operation context. A nil
// marker is treated as an I/O failure.
func Wrap(marker error, component, operation, message string, err error) error {
	if marker == nil {
		marker = ErrIO
	}
	return &Error{Marker: marker, Detail: buildDetail(component, operation, message), Err: err}
}

// New is shorthand for Wrap without component context or cause.
func New(marker error, message string) error {
	return Wrap(marker, "", "", message, nil)
}

// Message returns the error text without the marker prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var classified *Error
	if errors.As(err, &classified) {
		if classified.Err != nil {
			return classified.Detail + ": " + classified.Err.Error()
		}
		return classified.Detail
	}
	return err.Error()
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "unspecified failure"
	}
	return strings.Join(parts, ": ")
}
