package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr string
	}{
		{
			name: "valid minimal config",
			cfg:  Config{PatchPath: "patch.hcl"},
		},
		{
			name: "valid render config",
			cfg:  Config{PatchPath: "patch.hcl", OutPath: "out.wav", Ticks: 100},
		},
		{
			name:      "missing patch path",
			cfg:       Config{},
			expectErr: "PatchPath is a required configuration field",
		},
		{
			name:      "negative ticks",
			cfg:       Config{PatchPath: "patch.hcl", Ticks: -1},
			expectErr: "Ticks cannot be negative",
		},
		{
			name:      "render and play together",
			cfg:       Config{PatchPath: "patch.hcl", OutPath: "out.wav", Play: true, Ticks: 10},
			expectErr: "mutually exclusive",
		},
		{
			name:      "render without a tick count",
			cfg:       Config{PatchPath: "patch.hcl", OutPath: "out.wav"},
			expectErr: "requires a positive tick count",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)

			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tc.cfg.PatchPath, cfg.PatchPath)
		})
	}
}
