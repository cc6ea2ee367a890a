// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Playback PlaybackConfig `yaml:"playback"`
	Engine   EngineConfig   `yaml:"engine"`
	Store    StoreConfig    `yaml:"store"`
	Messages MessagesConfig `yaml:"messages"`
}

// ServerConfig represents the control server configuration.
type ServerConfig struct {
	Addr  string      `yaml:"addr" default:"127.0.0.1:8090"`
	Token string      `yaml:"token"`
	Hooks HooksConfig `yaml:"hooks"`
}

// HooksConfig represents lifecycle hooks configuration.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// PlaybackConfig represents per-session playback behaviour.
type PlaybackConfig struct {
	Loop       *bool    `yaml:"loop" default:"true"`
	MuteOnLoad *bool    `yaml:"mute_on_load" default:"true"`
	Volume     *float64 `yaml:"volume" default:"1.0" validate:"omitempty,gte=0,lte=1"`
	EventQueue int      `yaml:"event_queue" default:"32" validate:"gte=1,lte=4096"`
}

// EngineConfig selects the playback engine backend.
type EngineConfig struct {
	Type     string         `yaml:"type" default:"simulated" validate:"required,oneof=simulated beep"`
	Settings map[string]any `yaml:"settings"`
}

// StoreConfig represents playlist persistence configuration.
type StoreConfig struct {
	Path    string `yaml:"path" default:"mediadeck-playlist.yaml" validate:"required"`
	Restore *bool  `yaml:"restore" default:"true"`
}

// MessagesConfig represents user-facing messages.
type MessagesConfig struct {
	DefaultError    string `yaml:"default_error" default:"Something went wrong"`
	EmptyPlaylist   string `yaml:"empty_playlist" default:"No items in playlist!"`
	IndexOutOfRange string `yaml:"index_out_of_range" default:"No such playlist entry"`
	LoadFailed      string `yaml:"load_failed" default:"Couldn't load file!"`
	PlayFailed      string `yaml:"play_failed" default:"Couldn't play movie!"`
	PauseFailed     string `yaml:"pause_failed" default:"Couldn't pause movie!"`
	LoopFailed      string `yaml:"loop_failed" default:"Couldn't loop movie!"`
	LastSession     string `yaml:"last_session" default:"Cannot close main page"`
	UnknownSession  string `yaml:"unknown_session" default:"No such session"`
	Closed          string `yaml:"closed" default:"Session is closed"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	return finish(&cfg)
}

// Default returns the built-in configuration with environment overrides applied.
func Default() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	cfg.overrideFromEnv()

	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("MEDIADECK_TOKEN"); v != "" {
		c.Server.Token = v
	}
	if v := os.Getenv("MEDIADECK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("MEDIADECK_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("MEDIADECK_ENGINE"); v != "" {
		c.Engine.Type = strings.ToLower(v)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// LoopEnabled reports whether sessions start with looping enabled.
func (c *Config) LoopEnabled() bool {
	return c.Playback.Loop == nil || *c.Playback.Loop
}

// MuteOnLoad reports whether the engine is muted once a load starts playing.
func (c *Config) MuteOnLoad() bool {
	return c.Playback.MuteOnLoad == nil || *c.Playback.MuteOnLoad
}

// PlaybackVolume returns the level applied after load when MuteOnLoad is off.
func (c *Config) PlaybackVolume() float64 {
	if c.Playback.Volume == nil {
		return 1.0
	}
	return *c.Playback.Volume
}

// RestorePlaylist reports whether the persisted playlist is restored at startup.
func (c *Config) RestorePlaylist() bool {
	return c.Store.Restore == nil || *c.Store.Restore
}

// GetMessage returns the message for the given code.
func (c *Config) GetMessage(code string) string {
	switch code {
	case "empty_playlist":
		return c.Messages.EmptyPlaylist
	case "index_out_of_range":
		return c.Messages.IndexOutOfRange
	case "load_failed":
		return c.Messages.LoadFailed
	case "play_failed":
		return c.Messages.PlayFailed
	case "pause_failed":
		return c.Messages.PauseFailed
	case "loop_failed":
		return c.Messages.LoopFailed
	case "last_session":
		return c.Messages.LastSession
	case "unknown_session":
		return c.Messages.UnknownSession
	case "closed":
		return c.Messages.Closed
	default:
		return c.Messages.DefaultError
	}
}
