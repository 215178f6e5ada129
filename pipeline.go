package optspec

import (
	"fmt"
	"os"
	"reflect"
	"regexp"

	"github.com/pkg/errors"
)

// finalize runs the value pipeline over the whole option namespace, in
// declaration order: default substitution, per-value transform, check
// evaluation, list/scalar flattening, trigger notification. Preparse runs it
// with hooks disabled, which skips the transform and trigger stages only.
//
// Options neither present in raw nor carrying a default stay out of the
// result. A failure at any stage aborts the whole invocation.
func (r *Registry) finalize(consumer any, raw rawValues, hooks bool) (Options, error) {
	out := make(Options, len(r.optOrder))
	for _, name := range r.optOrder {
		spec := r.opts[name]
		value, present := raw[name]
		if !present {
			if spec.Default == nil {
				continue
			}
			value = evalDefault(spec.Default)
			logger.Debug("applied default", "option", name)
		}

		if spec.Bool {
			// Boolean options carry no check or transform; the value
			// passes through as scanned or defaulted.
			out[name] = value
		} else {
			final, err := r.finalizeValue(consumer, name, spec, value, hooks)
			if err != nil {
				return nil, err
			}
			if final == nil {
				continue
			}
			out[name] = final
		}

		if hooks && spec.Trigger != nil {
			if err := spec.Trigger(consumer, name, out[name], out); err != nil {
				return nil, errors.Wrapf(err, "option %q: trigger", name)
			}
		}
	}
	return out, nil
}

// finalizeValue transforms, validates, and flattens one non-boolean option
// value. Scalars travel as singleton lists internally so that list and scalar
// options share the element stages.
func (r *Registry) finalizeValue(consumer any, name string, spec *Option, value any, hooks bool) (any, error) {
	elems := normalize(value)

	if hooks && spec.Transform != nil {
		for i, el := range elems {
			s, err := spec.Transform(consumer, render(el))
			if err != nil {
				return nil, errors.Wrapf(err, "option %q: transform", name)
			}
			elems[i] = s
		}
	}

	if err := runCheck(name, spec.Check, elems); err != nil {
		return nil, err
	}

	if spec.List {
		list := make([]string, len(elems))
		for i, el := range elems {
			list[i] = render(el)
		}
		return list, nil
	}
	if len(elems) == 0 {
		return nil, nil
	}
	return elems[0], nil
}

// runCheck applies a check rule to every element, collecting all failures
// into one ValidationError.
func runCheck(name string, rule any, elems []any) error {
	if rule == nil {
		return nil
	}
	var failed []string
	for _, el := range elems {
		s := render(el)
		if !ruleHolds(rule, s) {
			failed = append(failed, s)
		}
	}
	if len(failed) > 0 {
		return &ValidationError{Option: name, Rule: ruleName(rule), Values: failed}
	}
	return nil
}

func ruleName(rule any) string {
	switch rule.(type) {
	case *regexp.Regexp:
		return "regexp"
	case func(string) bool:
		return "function"
	}
	return rule.(string)
}

func ruleHolds(rule any, s string) bool {
	switch c := rule.(type) {
	case *regexp.Regexp:
		return c.MatchString(s)
	case func(string) bool:
		return c(s)
	case string:
		switch c {
		case CheckFile:
			fi, err := os.Stat(s)
			return err == nil && fi.Mode().IsRegular()
		case CheckDir:
			fi, err := os.Stat(s)
			return err == nil && fi.IsDir()
		case CheckNumber:
			return allDigits(s)
		}
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalize views a raw value as its element list: comma-split or repeated
// list values, a slice-valued default, or a singleton scalar.
func normalize(value any) []any {
	switch v := value.(type) {
	case []string:
		elems := make([]any, len(v))
		for i, s := range v {
			elems[i] = s
		}
		return elems
	case []any:
		return append([]any(nil), v...)
	}
	rv := reflect.ValueOf(value)
	if value != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return elems
	}
	return []any{value}
}

// render yields the string form of an element for transforms, check rules,
// and list flattening.
func render(el any) string {
	if s, ok := el.(string); ok {
		return s
	}
	return fmt.Sprint(el)
}

// evalDefault produces an option's default value, invoking zero-argument
// function defaults and passing literals through.
func evalDefault(def any) any {
	rv := reflect.ValueOf(def)
	if rv.Kind() != reflect.Func {
		return def
	}
	return rv.Call(nil)[0].Interface()
}
