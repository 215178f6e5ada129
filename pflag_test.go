package optspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPFlagSetMirrorsOptions(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("verbose", Option{Bool: true, Description: "say more"}))
	require.NoError(t, r.AddOption("types", Option{
		List:    true,
		Default: func() any { return []string{"txt", "jpg"} },
	}))
	require.NoError(t, r.AddOption("output", Option{Default: "report.txt"}))

	fs := r.PFlagSet("test")

	f := fs.Lookup("verbose")
	require.NotNil(t, f)
	assert.Equal(t, "bool", f.Value.Type())
	assert.Equal(t, "say more", f.Usage)

	f = fs.Lookup("types")
	require.NotNil(t, f)
	assert.Equal(t, "stringSlice", f.Value.Type())
	assert.Equal(t, "[txt,jpg]", f.DefValue)

	f = fs.Lookup("output")
	require.NotNil(t, f)
	assert.Equal(t, "report.txt", f.DefValue)
}

func TestPFlagSetParsesWithMirroredDefaults(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("port", Option{Default: "8080"}))

	fs := r.PFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--port", "9090"}))

	got, err := fs.GetString("port")
	require.NoError(t, err)
	assert.Equal(t, "9090", got)
}

func TestPFlagSetBoolDefaultFromTruthyLiteral(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddOption("color", Option{Bool: true, Default: true}))

	fs := r.PFlagSet("test")
	got, err := fs.GetBool("color")
	require.NoError(t, err)
	assert.True(t, got)
}
