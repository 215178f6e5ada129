package optspec

import (
	"reflect"
	"regexp"

	"github.com/pkg/errors"
)

// DefaultDescription is used for any option or argument declared without a
// description.
const DefaultDescription = "No Description."

// Check rule keywords. A string-valued Option.Check must be one of these.
const (
	CheckFile   = "file"
	CheckDir    = "dir"
	CheckNumber = "number"
)

// HandlerFunc runs a registered argument. It receives the consumer passed to
// Run or Handle, the canonical argument name, the finalized option map, and
// the remaining positional tokens. Its result becomes the result of the
// invocation.
type HandlerFunc func(consumer any, name string, opts Options, rest []string) (any, error)

// TransformFunc rewrites a single option value before validation. It receives
// the consumer so it can reference consumer state.
type TransformFunc func(consumer any, value string) (string, error)

// TriggerFunc observes an option's final value once it is known, even when
// the value came from a default. opts is the finalized map as built so far:
// options declared earlier hold final values, later ones are not present yet.
type TriggerFunc func(consumer any, name string, value any, opts Options) error

// Options maps canonical option names to finalized values: bool for bare
// boolean flags, []string for list options, and the scalar value otherwise.
type Options map[string]any

// Option configures a named command-line option.
//
// Bool and List are mutually exclusive, and a Bool option admits neither
// Check nor Transform. Default is a scalar literal or a zero-argument
// function returning one value; composite defaults must be wrapped in such a
// function. A bare boolean flag on the command line yields the negation of a
// truthy literal Default, and true otherwise; function defaults never take
// part in the inversion.
type Option struct {
	Aliases     []string
	Bool        bool
	List        bool
	Default     any
	Check       any // *regexp.Regexp, func(string) bool, or a Check* keyword
	Transform   TransformFunc
	Trigger     TriggerFunc
	Description string
}

// Argument configures a named positional command. Handler is required.
type Argument struct {
	Aliases     []string
	Description string
	Handler     HandlerFunc
}

// Kind selects a Describe namespace.
type Kind int

const (
	KindOption Kind = iota
	KindArgument
)

// Registry holds declared options and arguments. The two namespaces are
// independent, so an option and an argument may share a surface name.
// Aliases are a lookup layer over a single registered spec per canonical
// name: updating a spec through any alias updates the one underlying record.
//
// A Registry is not safe for concurrent mutation; declare everything up
// front, then parse.
type Registry struct {
	opts     map[string]*Option
	optAlias map[string]string // alias -> canonical name
	optOrder []string          // canonical names in declaration order

	args     map[string]*Argument
	argAlias map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		opts:     make(map[string]*Option),
		optAlias: make(map[string]string),
		args:     make(map[string]*Argument),
		argAlias: make(map[string]string),
	}
}

// AddOption declares an option under name and under each of its aliases.
// Name and aliases must be unique across the whole option namespace. On any
// failure the registry is left unchanged.
func (r *Registry) AddOption(name string, opt Option) error {
	if name == "" {
		return errors.Wrap(ErrInvalidName, "option")
	}
	if opt.Bool && opt.List {
		return errors.Wrapf(ErrConflictingProperty, "option %q: bool and list", name)
	}
	if opt.Bool && opt.Check != nil {
		return errors.Wrapf(ErrConflictingProperty, "option %q: bool and check", name)
	}
	if opt.Bool && opt.Transform != nil {
		return errors.Wrapf(ErrConflictingProperty, "option %q: bool and transform", name)
	}
	if err := validateDefault(name, opt.Default); err != nil {
		return err
	}
	if err := validateCheck(name, opt.Check); err != nil {
		return err
	}
	if r.optionTaken(name) {
		return errors.Wrapf(ErrDuplicateName, "option %q", name)
	}
	seen := map[string]bool{name: true}
	for _, alias := range opt.Aliases {
		if alias == "" {
			return errors.Wrapf(ErrInvalidName, "option %q: empty alias", name)
		}
		if seen[alias] || r.optionTaken(alias) {
			return errors.Wrapf(ErrDuplicateAlias, "option %q: alias %q", name, alias)
		}
		seen[alias] = true
	}

	if opt.Description == "" {
		opt.Description = DefaultDescription
	}
	r.opts[name] = &opt
	r.optOrder = append(r.optOrder, name)
	for _, alias := range opt.Aliases {
		r.optAlias[alias] = name
	}
	logger.Debug("registered option", "name", name, "aliases", opt.Aliases)
	return nil
}

// AddArgument declares an argument under name and under each of its aliases.
// On any failure the registry is left unchanged.
func (r *Registry) AddArgument(name string, arg Argument) error {
	if name == "" {
		return errors.Wrap(ErrInvalidName, "argument")
	}
	if arg.Handler == nil {
		return errors.Wrapf(ErrMissingHandler, "argument %q", name)
	}
	if r.argumentTaken(name) {
		return errors.Wrapf(ErrDuplicateName, "argument %q", name)
	}
	seen := map[string]bool{name: true}
	for _, alias := range arg.Aliases {
		if alias == "" {
			return errors.Wrapf(ErrInvalidName, "argument %q: empty alias", name)
		}
		if seen[alias] || r.argumentTaken(alias) {
			return errors.Wrapf(ErrDuplicateAlias, "argument %q: alias %q", name, alias)
		}
		seen[alias] = true
	}

	if arg.Description == "" {
		arg.Description = DefaultDescription
	}
	r.args[name] = &arg
	for _, alias := range arg.Aliases {
		r.argAlias[alias] = name
	}
	logger.Debug("registered argument", "name", name, "aliases", arg.Aliases)
	return nil
}

// AddHandler declares an argument whose entire configuration is a handler.
func (r *Registry) AddHandler(name string, fn HandlerFunc) error {
	return r.AddArgument(name, Argument{Handler: fn})
}

// Describe overwrites the description of a registered option or argument and
// returns it. The spec may be addressed through any of its aliases; an empty
// text leaves the description unchanged.
func (r *Registry) Describe(kind Kind, name, text string) (string, error) {
	switch kind {
	case KindOption:
		canonical, ok := r.optionName(name)
		if !ok {
			return "", errors.Wrapf(ErrUnknownDescribeTarget, "option %q", name)
		}
		o := r.opts[canonical]
		if text != "" {
			o.Description = text
		}
		return o.Description, nil
	case KindArgument:
		canonical, ok := r.argumentName(name)
		if !ok {
			return "", errors.Wrapf(ErrUnknownDescribeTarget, "argument %q", name)
		}
		a := r.args[canonical]
		if text != "" {
			a.Description = text
		}
		return a.Description, nil
	}
	return "", errors.Wrapf(ErrUnknownDescribeTarget, "unknown kind %d", kind)
}

// optionName maps an exact name or alias to its canonical option name.
func (r *Registry) optionName(name string) (string, bool) {
	if _, ok := r.opts[name]; ok {
		return name, true
	}
	canonical, ok := r.optAlias[name]
	return canonical, ok
}

// argumentName maps an exact name or alias to its canonical argument name.
func (r *Registry) argumentName(name string) (string, bool) {
	if _, ok := r.args[name]; ok {
		return name, true
	}
	canonical, ok := r.argAlias[name]
	return canonical, ok
}

func (r *Registry) optionTaken(name string) bool {
	_, ok := r.optionName(name)
	return ok
}

func (r *Registry) argumentTaken(name string) bool {
	_, ok := r.argumentName(name)
	return ok
}

// validateDefault rejects composite defaults that are not wrapped in a
// zero-argument function returning a single value.
func validateDefault(name string, def any) error {
	if def == nil {
		return nil
	}
	v := reflect.ValueOf(def)
	switch v.Kind() {
	case reflect.Func:
		t := v.Type()
		if t.NumIn() != 0 || t.NumOut() != 1 {
			return errors.Wrapf(ErrInvalidDefault,
				"option %q: default functions take no arguments and return one value", name)
		}
		return nil
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	}
	return errors.Wrapf(ErrInvalidDefault,
		"option %q: composite defaults must be wrapped in a function", name)
}

// validateCheck rejects check rules that are neither a regular expression, a
// predicate, nor one of the Check* keywords.
func validateCheck(name string, rule any) error {
	switch c := rule.(type) {
	case nil, *regexp.Regexp, func(string) bool:
		return nil
	case string:
		switch c {
		case CheckFile, CheckDir, CheckNumber:
			return nil
		}
		return errors.Wrapf(ErrInvalidCheck, "option %q: unknown check keyword %q", name, c)
	}
	return errors.Wrapf(ErrInvalidCheck,
		"option %q: check must be a regexp, a predicate, or one of file, dir, number", name)
}
