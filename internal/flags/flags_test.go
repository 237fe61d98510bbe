package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{"default on", New(nil), FlagAutoStart, true},
		{"default off", New(nil), FlagForceOSC52, false},
		{"turned off", New(map[string]bool{FlagAutoStart: false}), FlagAutoStart, false},
		{"turned on", New(map[string]bool{FlagForceOSC52: true}), FlagForceOSC52, true},
		{"unknown flag", New(nil), "unknown-flag", false},
		{"nil registry", nil, FlagAutoStart, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_All_ReturnsCopy(t *testing.T) {
	r := New(map[string]bool{FlagForceOSC52: true})

	all := r.All()
	all[FlagForceOSC52] = false
	all["new-flag"] = true

	require.True(t, r.Enabled(FlagForceOSC52))
	require.False(t, r.Enabled("new-flag"))
	require.Equal(t, map[string]bool{FlagAutoStart: true, FlagForceOSC52: true}, r.All())
}

func TestRegistry_NilAll(t *testing.T) {
	var r *Registry
	require.Equal(t, map[string]bool{}, r.All())
}

func TestDefaults_IsACopy(t *testing.T) {
	d := Defaults()
	d[FlagAutoStart] = false
	require.True(t, Defaults()[FlagAutoStart])
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(nil))
	require.NoError(t, Validate(map[string]bool{FlagAutoStart: false}))

	err := Validate(map[string]bool{"auto-strat": true})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown feature flag "auto-strat"`)
}
