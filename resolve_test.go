package optspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactMatchBeatsPrefix(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("ty", Option{}))
	require.NoError(t, r.AddOption("tyalpha", Option{}))

	name, err := r.resolveOption("ty")
	require.NoError(t, err)
	assert.Equal(t, "ty", name)
}

func TestResolveUniquePrefix(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("tyaaaa", Option{}))
	require.NoError(t, r.AddOption("tybbbbb", Option{}))

	name, err := r.resolveOption("tya")
	require.NoError(t, err)
	assert.Equal(t, "tyaaaa", name)
}

func TestResolveAmbiguousPrefix(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("tybbbbb", Option{}))
	require.NoError(t, r.AddOption("tyaaaa", Option{}))

	_, err := r.resolveOption("ty")
	var ambiguous *AmbiguousNameError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "ty", ambiguous.Name)
	assert.Equal(t, []string{"tyaaaa", "tybbbbb"}, ambiguous.Candidates)
}

func TestResolveUnknownName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("verbose", Option{Bool: true}))

	_, err := r.resolveOption("quiet")
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), `"quiet"`)
}

func TestResolveExactAliasWins(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("verbose", Option{Bool: true, Aliases: []string{"v"}}))
	require.NoError(t, r.AddOption("version", Option{Bool: true}))

	name, err := r.resolveOption("v")
	require.NoError(t, err)
	assert.Equal(t, "verbose", name)
}

func TestResolveAliasPrefixesCollapseToOneCanonical(t *testing.T) {
	r := NewRegistry()
	// Several aliases of the same spec match the prefix; that is one
	// candidate, not three.
	require.NoError(t, r.AddOption("output", Option{Aliases: []string{"outfile", "outdir"}}))

	name, err := r.resolveOption("out")
	require.NoError(t, err)
	assert.Equal(t, "output", name)
}

func TestResolveArgumentNamespace(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddHandler("sort", nopHandler))

	name, err := r.resolveArgument("so")
	require.NoError(t, err)
	assert.Equal(t, "sort", name)

	// The option namespace knows nothing about it.
	_, err = r.resolveOption("sort")
	assert.ErrorIs(t, err, ErrUnknownName)
}
