package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Targets
	}{
		{"web", Targets{TargetWeb}},
		{"ue", Targets{TargetEngine}},
		{"UE, web", Targets{TargetWeb, TargetEngine}},
		{"web,,web,", Targets{TargetWeb}},
		{"", Targets{}},
	}
	for _, tt := range tests {
		got, err := ParseTargets(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseTargetsUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseTargets("bogus")
	require.ErrorIs(t, err, ErrUnknownTarget)

	_, err = ParseTargets("web,zzz,bogus,zzz")
	require.ErrorIs(t, err, ErrUnknownTarget)
	assert.Contains(t, err.Error(), "bogus, zzz")
}

func TestTargetsHas(t *testing.T) {
	t.Parallel()

	ts := Targets{TargetWeb}
	assert.True(t, ts.Has(TargetWeb))
	assert.False(t, ts.Has(TargetEngine))
	assert.Equal(t, "web,ue", Targets{TargetWeb, TargetEngine}.String())
}
