package erroring

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindIO         Kind = "IOError"
	KindExtraction Kind = "ExtractionError"
	KindConfig     Kind = "ConfigError"
)

var (
	ErrIO         = errors.New(string(KindIO))
	ErrExtraction = errors.New(string(KindExtraction))
	ErrConfig     = errors.New(string(KindConfig))
)

// Error is a fatal failure of one pipeline stage. Items are ordered from the
// innermost cause outwards.
type Error struct {
	Kind  Kind         `json:"kind"`
	Items []*ErrorItem `json:"items,omitempty"`
}

type ErrorItem struct {
	Trace   *Caller `json:"trace,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   error   `json:"error,omitempty"`
}

func (r *Error) Error() string {
	var builder strings.Builder
	builder.WriteString(string(r.Kind))
	for i := len(r.Items) - 1; i >= 0; i-- {
		item := r.Items[i]
		if item.Message != nil {
			builder.WriteString(": ")
			builder.WriteString(*item.Message)
		}
		if item.Error != nil {
			builder.WriteString(": ")
			builder.WriteString(item.Error.Error())
		}
	}
	return builder.String()
}

func (r *Error) Unwrap() error {
	return r.Items[0].Error
}

func (r *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return r.Kind == KindIO
	case ErrExtraction:
		return r.Kind == KindExtraction
	case ErrConfig:
		return r.Kind == KindConfig
	}
	return false
}

// Trace returns the recorded callers, innermost first.
func (r *Error) Trace() []string {
	traces := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		if item.Trace != nil {
			traces = append(traces, item.Trace.String())
		}
	}
	return traces
}

// New records a failure of the given kind. When err is already an *Error the
// message is appended to its chain and the original kind is kept.
func New(kind Kind, message string, err error) error {
	return build(2, kind, message, err)
}

func IO(message string, err error) error {
	return build(2, KindIO, message, err)
}

func Extraction(message string, err error) error {
	return build(2, KindExtraction, message, err)
}

func Config(message string, err error) error {
	return build(2, KindConfig, message, err)
}

func build(skip int, kind Kind, message string, err error) error {
	trace := NewCaller(skip)

	var e *Error
	if errors.As(err, &e) {
		e.Items = append(e.Items, &ErrorItem{
			Trace:   trace,
			Message: &message,
			Error:   nil,
		})
		return e
	}

	return &Error{
		Kind: kind,
		Items: []*ErrorItem{
			{
				Trace:   trace,
				Message: &message,
				Error:   err,
			},
		},
	}
}
