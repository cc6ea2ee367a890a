package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/mediadeck/internal/infra/config"
)

func TestNewFactory(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.EngineConfig
		wantErr string
	}{
		{
			name: "simulated defaults",
			cfg:  config.EngineConfig{Type: TypeSimulated},
		},
		{
			name: "simulated with settings",
			cfg: config.EngineConfig{
				Type: TypeSimulated,
				Settings: map[string]any{
					"load_delay_ms": 5,
					"duration_ms":   100,
					"fail_load":     []any{"bad.wav"},
				},
			},
		},
		{
			name: "simulated invalid duration",
			cfg: config.EngineConfig{
				Type:     TypeSimulated,
				Settings: map[string]any{"duration_ms": -5},
			},
			wantErr: "validation failed",
		},
		{
			name: "simulated wrong type",
			cfg: config.EngineConfig{
				Type:     TypeSimulated,
				Settings: map[string]any{"duration_ms": "long"},
			},
			wantErr: "failed to decode settings",
		},
		{
			name: "beep invalid rate",
			cfg: config.EngineConfig{
				Type:     TypeBeep,
				Settings: map[string]any{"sample_rate": 100},
			},
			wantErr: "validation failed",
		},
		{
			name:    "unknown type",
			cfg:     config.EngineConfig{Type: "vlc"},
			wantErr: "unsupported engine type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := NewFactory(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, factory)
		})
	}
}

func TestNewFactory_SimulatedBuildsFreshEngines(t *testing.T) {
	factory, err := NewFactory(config.EngineConfig{Type: TypeSimulated})
	require.NoError(t, err)

	a, err := factory()
	require.NoError(t, err)
	b, err := factory()
	require.NoError(t, err)
	defer a.Close()
	defer b.Close()

	assert.NotSame(t, a, b)
}

func TestDecodeSettings_Defaults(t *testing.T) {
	var sc SimulatedConfig
	require.NoError(t, decodeSettings(nil, &sc))
	assert.Equal(t, 50, sc.LoadDelayMs)
	assert.Equal(t, 3000, sc.DurationMs)

	var bc BeepConfig
	require.NoError(t, decodeSettings(map[string]any{"buffer_ms": 200}, &bc))
	assert.Equal(t, 44100, bc.SampleRate)
	assert.Equal(t, 200, bc.BufferMs)
	assert.Equal(t, 4, bc.ResampleQuality)
}

func TestTypes(t *testing.T) {
	assert.Equal(t, []string{"simulated", "beep"}, Types())
}
