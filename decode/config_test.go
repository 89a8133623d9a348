package decode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sevenseg/decode"
)

// TestParseConfig_Valid decodes both fields and applies them.
func TestParseConfig_Valid(t *testing.T) {
	c, err := decode.ParseConfig([]byte("workers: 3\npolicy: collect\n"))
	require.NoError(t, err)
	require.Equal(t, decode.Config{Workers: 3, Policy: decode.CollectFailed}, c)

	o := decode.DefaultOptions()
	for _, opt := range c.Options() {
		opt(&o)
	}
	require.Equal(t, 3, o.Workers)
	require.Equal(t, decode.CollectFailed, o.Policy)
}

// TestParseConfig_Defaults keeps defaults for absent fields.
func TestParseConfig_Defaults(t *testing.T) {
	c, err := decode.ParseConfig([]byte("{}"))
	require.NoError(t, err)

	o := decode.DefaultOptions()
	for _, opt := range c.Options() {
		opt(&o)
	}
	require.Equal(t, decode.DefaultOptions().Workers, o.Workers)
	require.Equal(t, decode.FailFast, o.Policy)

	sum, err := decode.Aggregate(context.Background(), sampleRecords(t), c.Options()...)
	require.NoError(t, err)
	require.Equal(t, 61229, sum.Sum)
}

// TestParseConfig_Errors rejects unknown policies and negative workers.
func TestParseConfig_Errors(t *testing.T) {
	_, err := decode.ParseConfig([]byte("policy: retry\n"))
	require.ErrorIs(t, err, decode.ErrUnknownPolicy)
	require.Contains(t, err.Error(), "line 1")

	_, err = decode.ParseConfig([]byte("workers: -2\n"))
	require.ErrorIs(t, err, decode.ErrBadWorkers)

	_, err = decode.ParseConfig([]byte("workers: [1"))
	require.Error(t, err)
}

// TestPolicy_YAMLRoundTrip encodes policies by name.
func TestPolicy_YAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(decode.Config{Workers: 2, Policy: decode.SkipFailed})
	require.NoError(t, err)
	require.Equal(t, "workers: 2\npolicy: skip\n", string(out))

	c, err := decode.ParseConfig(out)
	require.NoError(t, err)
	require.Equal(t, decode.SkipFailed, c.Policy)
}

// TestParsePolicy covers every name and a miss.
func TestParsePolicy(t *testing.T) {
	for _, p := range []decode.Policy{decode.FailFast, decode.SkipFailed, decode.CollectFailed} {
		got, err := decode.ParsePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	_, err := decode.ParsePolicy("")
	require.ErrorIs(t, err, decode.ErrUnknownPolicy)
}
