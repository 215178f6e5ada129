package optspec

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Usage renders the declared options and arguments as two aligned blocks,
// each sorted lexicographically by canonical name, one line per spec no
// matter how many aliases it was registered under. Option lines carry a
// value placeholder: empty for boolean options, "XXX,..." for lists, "XXX"
// otherwise.
func (r *Registry) Usage() string {
	var b strings.Builder

	if len(r.opts) > 0 {
		b.WriteString("Options\n")
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, name := range sortedKeys(r.opts) {
			o := r.opts[name]
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", nameList(name, o.Aliases), placeholder(o), o.Description)
		}
		tw.Flush()
	}

	if len(r.args) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Arguments\n")
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, name := range sortedKeys(r.args) {
			a := r.args[name]
			fmt.Fprintf(tw, "  %s\t%s\n", nameList(name, a.Aliases), a.Description)
		}
		tw.Flush()
	}

	return b.String()
}

func nameList(name string, aliases []string) string {
	if len(aliases) == 0 {
		return name
	}
	sorted := append([]string(nil), aliases...)
	sort.Strings(sorted)
	return name + ", " + strings.Join(sorted, ", ")
}

func placeholder(o *Option) string {
	switch {
	case o.Bool:
		return ""
	case o.List:
		return "XXX,..."
	default:
		return "XXX"
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := keys(m)
	sort.Strings(names)
	return names
}
