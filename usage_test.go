package optspec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usageLines(t *testing.T, r *Registry) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(r.Usage(), "\n"), "\n")
}

func TestUsageListsEverySpecOnceSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("verbose", Option{Bool: true, Aliases: []string{"v", "loud"}}))
	require.NoError(t, r.AddOption("output", Option{Description: "where to write"}))
	require.NoError(t, r.AddHandler("sort", nopHandler))
	require.NoError(t, r.AddArgument("serve", Argument{Aliases: []string{"srv"}, Handler: nopHandler}))

	out := r.Usage()
	assert.Equal(t, 1, strings.Count(out, "verbose"))
	assert.Equal(t, 1, strings.Count(out, "serve"))

	// Options sorted, then arguments sorted.
	idx := func(s string) int { return strings.Index(out, s) }
	assert.Less(t, idx("Options"), idx("output"))
	assert.Less(t, idx("output"), idx("verbose"))
	assert.Less(t, idx("verbose"), idx("Arguments"))
	assert.Less(t, idx("Arguments"), idx("serve"))
	assert.Less(t, idx("serve"), idx("sort"))
}

func TestUsagePlaceholders(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("verbose", Option{Bool: true}))
	require.NoError(t, r.AddOption("types", Option{List: true}))
	require.NoError(t, r.AddOption("output", Option{}))

	lines := usageLines(t, r)
	var byName = map[string]string{}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			byName[fields[0]] = line
		}
	}

	assert.Contains(t, byName["types"], "XXX,...")
	assert.Contains(t, byName["output"], "XXX")
	assert.NotContains(t, byName["verbose"], "XXX")
}

func TestUsageDescriptionsNeverBlank(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("quiet", Option{Bool: true}))
	require.NoError(t, r.AddHandler("sort", nopHandler))

	out := r.Usage()
	assert.Equal(t, 2, strings.Count(out, DefaultDescription))
}

func TestUsageShowsAliasesWithCanonicalName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("verbose", Option{Bool: true, Aliases: []string{"v"}}))

	assert.Contains(t, r.Usage(), "verbose, v")
}

func TestUsageEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "", r.Usage())
}
