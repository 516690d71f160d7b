package blog

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers both absent entities and entities the viewer may not see.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned when a mutation comes from the anonymous viewer.
	ErrUnauthenticated = errors.New("authentication required")
)

// FieldErrors maps a submitted field name to a message suitable for display.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

// ValidationError reports submitted fields that violate a constraint.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Outcome classifies the result of any core operation.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeNotFound
	OutcomeUnauthenticated
	OutcomeSoftDenial
	OutcomeValidationFailure
	OutcomeStoreFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeSoftDenial:
		return "soft_denial"
	case OutcomeValidationFailure:
		return "validation_failure"
	default:
		return "store_failure"
	}
}

// Classify maps an error returned by this package to exactly one outcome. Errors that
// are not ours are store failures.
func Classify(err error) Outcome {
	var vErr *ValidationError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrUnauthenticated):
		return OutcomeUnauthenticated
	case errors.As(err, &vErr):
		return OutcomeValidationFailure
	default:
		return OutcomeStoreFailure
	}
}
