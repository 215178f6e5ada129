package optspec

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel error kinds. Declaration-time failures surface immediately to the
// declaring caller; parse-time failures abort the whole Parse or Handle call.
// All of them are wrapped with context, so match with errors.Is.
var (
	// ErrInvalidName is returned when an empty name or alias is given to a
	// registration method.
	ErrInvalidName = errors.New("optspec: invalid name")

	// ErrDuplicateName is returned when a name collides with a registered
	// name or alias in the same namespace.
	ErrDuplicateName = errors.New("optspec: duplicate name")

	// ErrDuplicateAlias is returned when an alias collides with a
	// registered name or alias in the same namespace.
	ErrDuplicateAlias = errors.New("optspec: duplicate alias")

	// ErrConflictingProperty is returned when an Option combines Bool with
	// List, Check, or Transform.
	ErrConflictingProperty = errors.New("optspec: conflicting properties")

	// ErrInvalidDefault is returned when a default is a composite value
	// not wrapped in a zero-argument function.
	ErrInvalidDefault = errors.New("optspec: invalid default")

	// ErrInvalidCheck is returned when a check rule is neither a regular
	// expression, a predicate, nor one of the Check* keywords.
	ErrInvalidCheck = errors.New("optspec: invalid check rule")

	// ErrMissingHandler is returned when an Argument is declared without a
	// handler.
	ErrMissingHandler = errors.New("optspec: missing handler")

	// ErrUnknownName is returned when a token matches no registered name
	// or alias, not even as a prefix.
	ErrUnknownName = errors.New("optspec: unknown name")

	// ErrMissingValue is returned when a non-boolean option consumes past
	// the end of the token stream.
	ErrMissingValue = errors.New("optspec: missing value")

	// ErrUnknownDescribeTarget is returned when Describe references a name
	// that is not registered under the given kind.
	ErrUnknownDescribeTarget = errors.New("optspec: unknown describe target")
)

// AmbiguousNameError reports a token that is a prefix of more than one
// distinct canonical name. Candidates is sorted lexicographically.
type AmbiguousNameError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("optspec: ambiguous name %q: matches %s",
		e.Name, strings.Join(e.Candidates, ", "))
}

// ValidationError reports every value of an option that failed its check
// rule. Rule is one of "regexp", "function", "file", "dir", or "number".
type ValidationError struct {
	Option string
	Rule   string
	Values []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("optspec: option %q failed %s check: %s",
		e.Option, e.Rule, strings.Join(e.Values, ", "))
}
