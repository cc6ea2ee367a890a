// Package engine provides playback engine backends.
package engine

import (
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/mediadeck/internal/app/playback"
	"github.com/osa030/mediadeck/internal/infra/config"
)

const (
	TypeSimulated = "simulated"
	TypeBeep      = "beep"
)

// Types returns the supported engine types.
func Types() []string {
	return []string{TypeSimulated, TypeBeep}
}

// NewFactory validates the engine configuration and returns a constructor
// that builds one engine per call.
func NewFactory(cfg config.EngineConfig) (func() (playback.Engine, error), error) {
	zlog.Debug().Msgf("creating engine factory: type=%s settings=%+v", cfg.Type, cfg.Settings)

	switch cfg.Type {
	case TypeSimulated:
		var sc SimulatedConfig
		if err := decodeSettings(cfg.Settings, &sc); err != nil {
			return nil, errors.Wrapf(err, "invalid settings for engine %s", cfg.Type)
		}
		return func() (playback.Engine, error) {
			return NewSimulated(sc), nil
		}, nil

	case TypeBeep:
		var bc BeepConfig
		if err := decodeSettings(cfg.Settings, &bc); err != nil {
			return nil, errors.Wrapf(err, "invalid settings for engine %s", cfg.Type)
		}
		return func() (playback.Engine, error) {
			return NewBeep(bc)
		}, nil

	default:
		return nil, errors.Newf("unsupported engine type: %s", cfg.Type)
	}
}

// decodeSettings fills out from an untyped settings map, then applies
// defaults and validation.
func decodeSettings(settings map[string]any, out any) error {
	if len(settings) > 0 {
		if err := mapstructure.Decode(settings, out); err != nil {
			return errors.Wrap(err, "failed to decode settings")
		}
	}
	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}
