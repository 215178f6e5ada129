package optspec

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// optionToken matches one or more leading dashes, a key containing no further
// dash or equals sign, and an optional =value.
var optionToken = regexp.MustCompile(`^-+([^-=]+)(=(.*))?$`)

// rawValues is the scanner's accumulation map: bool for bare boolean flags,
// string for scalars, []string for list options.
type rawValues map[string]any

// scan walks tokens once, left to right, splitting options from positionals.
// A bare "--" makes every later token a literal positional. The first
// positional is resolved to a canonical argument name; everything after it is
// the rest of the command line and is kept verbatim.
func (r *Registry) scan(tokens []string) (rawValues, []string, error) {
	raw := make(rawValues)
	var positionals []string
	literalsOnly := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// "--" sets the literals gate; repeats are idempotent.
		if tok == "--" {
			literalsOnly = true
			continue
		}

		if !literalsOnly {
			if m := optionToken.FindStringSubmatch(tok); m != nil {
				var err error
				i, err = r.scanOption(raw, tokens, i, m)
				if err != nil {
					return nil, nil, err
				}
				continue
			}
		}

		if len(positionals) == 0 {
			// Partial or aliased command names normalize to canonical
			// form. This is the only option-like interpretation a
			// positional token ever receives.
			name, err := r.resolveArgument(tok)
			if err != nil {
				return nil, nil, err
			}
			positionals = append(positionals, name)
			continue
		}
		positionals = append(positionals, tok)
	}

	logger.Debug("scanned tokens", "options", len(raw), "positionals", len(positionals))
	return raw, positionals, nil
}

// scanOption consumes one option token (and, for a valueless non-boolean
// option, the following token) starting at index i. It returns the index of
// the last token consumed.
func (r *Registry) scanOption(raw rawValues, tokens []string, i int, m []string) (int, error) {
	name, err := r.resolveOption(m[1])
	if err != nil {
		return i, err
	}
	spec := r.opts[name]
	value, hasValue := m[3], m[2] != ""

	if spec.Bool {
		if hasValue {
			// An explicit =value is kept as-is, in string form.
			raw[name] = value
		} else {
			// Bare presence inverts a truthy literal default and sets
			// truth otherwise.
			raw[name] = !truthy(spec.Default)
		}
		return i, nil
	}

	if !hasValue {
		if i+1 >= len(tokens) {
			return i, errors.Wrapf(ErrMissingValue, "option %q", name)
		}
		i++
		value = tokens[i]
	}
	if spec.List {
		prev, _ := raw[name].([]string)
		raw[name] = append(prev, splitList(value)...)
	} else {
		raw[name] = value
	}
	return i, nil
}

// splitList splits a collected value on commas, trimming surrounding
// whitespace from each piece.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// truthy reports whether a static literal default counts as set for boolean
// inversion. Function defaults are never invoked here, so they never invert.
func truthy(def any) bool {
	switch v := def.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	}
	rv := reflect.ValueOf(def)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return false
}
