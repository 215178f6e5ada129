package optspec

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// resolveOption maps a possibly partial token to a canonical option name.
func (r *Registry) resolveOption(token string) (string, error) {
	// An exact match always wins, even when the token is also a prefix of
	// other names.
	if canonical, ok := r.optionName(token); ok {
		return canonical, nil
	}
	return resolvePrefix("option", token, keys(r.opts), r.optAlias)
}

// resolveArgument maps a possibly partial token to a canonical argument name.
func (r *Registry) resolveArgument(token string) (string, error) {
	if canonical, ok := r.argumentName(token); ok {
		return canonical, nil
	}
	return resolvePrefix("argument", token, keys(r.args), r.argAlias)
}

// resolvePrefix matches token as a literal prefix of the registered names and
// aliases, collapsing matches that reach the same canonical spec. It succeeds
// only when exactly one distinct canonical name remains.
func resolvePrefix(kind, token string, canonical []string, aliases map[string]string) (string, error) {
	matched := make(map[string]bool)
	for _, name := range canonical {
		if strings.HasPrefix(name, token) {
			matched[name] = true
		}
	}
	for alias, name := range aliases {
		if strings.HasPrefix(alias, token) {
			matched[name] = true
		}
	}

	switch len(matched) {
	case 0:
		return "", errors.Wrapf(ErrUnknownName, "%s %q", kind, token)
	case 1:
		for name := range matched {
			logger.Debug("resolved prefix", "kind", kind, "token", token, "name", name)
			return name, nil
		}
	}

	candidates := make([]string, 0, len(matched))
	for name := range matched {
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)
	return "", &AmbiguousNameError{Name: token, Candidates: candidates}
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
