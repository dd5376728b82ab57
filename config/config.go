// Package config loads tuning and program settings with viper: an optional
// TOML file, AIENTITY_* environment variables, then built-in defaults
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/ai-entity/parameter"
)

const (
	EnvPrefix = "AIENTITY"
	FileName  = "ai-entity"
	FileType  = "toml"
)

// Config is the whole configuration file
type Config struct {
	Physics parameter.PhysicsTuning `mapstructure:"physics" toml:"physics"`
	Reveal  parameter.RevealTuning  `mapstructure:"reveal" toml:"reveal"`
	Hit     parameter.HitTuning     `mapstructure:"hit" toml:"hit"`
	Layout  parameter.LayoutTuning  `mapstructure:"layout" toml:"layout"`

	Render RenderConfig `mapstructure:"render" toml:"render"`
	Audio  AudioConfig  `mapstructure:"audio" toml:"audio"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

type RenderConfig struct {
	FPS   int    `mapstructure:"fps" toml:"fps"`
	Color string `mapstructure:"color" toml:"color"` // auto, truecolor, 256
	Seed  int64  `mapstructure:"seed" toml:"seed"`   // 0 seeds from the clock
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled" toml:"enabled"`
	Volume  float64 `mapstructure:"volume" toml:"volume"`
}

type LogConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled"`
	Level      string `mapstructure:"level" toml:"level"`
	Path       string `mapstructure:"path" toml:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// Default returns the configuration used when no file or env overrides exist
func Default() Config {
	t := parameter.Default()
	return Config{
		Physics: t.Physics,
		Reveal:  t.Reveal,
		Hit:     t.Hit,
		Layout:  t.Layout,
		Render: RenderConfig{
			FPS:   parameter.DefaultFPS,
			Color: "auto",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1,
		},
		Log: LogConfig{
			Level:      "debug",
			Path:       filepath.Join("logs", "ai-entity.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Tuning extracts the sanitized entity constants
func (c Config) Tuning() parameter.Tuning {
	return parameter.Tuning{
		Physics: c.Physics,
		Reveal:  c.Reveal,
		Hit:     c.Hit,
		Layout:  c.Layout,
	}.Sanitize()
}

// Sanitize repairs out-of-range program settings
func (c Config) Sanitize() Config {
	d := Default()
	if c.Render.FPS <= 0 || c.Render.FPS > parameter.MaxFPS {
		c.Render.FPS = d.Render.FPS
	}
	switch c.Render.Color {
	case "auto", "truecolor", "256":
	default:
		c.Render.Color = d.Render.Color
	}
	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	if c.Log.Path == "" {
		c.Log.Path = d.Log.Path
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = d.Log.MaxSizeMB
	}
	if c.Log.MaxBackups < 0 {
		c.Log.MaxBackups = d.Log.MaxBackups
	}
	if c.Log.MaxAgeDays < 0 {
		c.Log.MaxAgeDays = d.Log.MaxAgeDays
	}
	return c
}

// Encode writes c as TOML
func Encode(w io.Writer, c Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(err, "config: encode")
	}
	return nil
}

// Store owns the viper instance and the last decoded configuration
type Store struct {
	v   *viper.Viper
	log *zap.Logger

	mu  sync.RWMutex
	cfg Config
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Load reads configuration. An empty path searches the working directory and
// the user config dir for ai-entity.toml; a missing file there is not an error.
// An explicit path must exist
func Load(path string, opts ...Option) (*Store, error) {
	s := &Store{
		v:   viper.New(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	v := s.v
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := setDefaults(v, Default()); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(FileType)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType(FileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "config: read")
		}
	}

	cfg, err := s.decode()
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	s.log.Debug("config loaded", zap.String("file", v.ConfigFileUsed()))
	return s, nil
}

// setDefaults registers every key of d, so env overrides and Unmarshal see
// the full key set
func setDefaults(v *viper.Viper, d Config) error {
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return err
	}
	var tree map[string]any
	if _, err := toml.NewDecoder(&buf).Decode(&tree); err != nil {
		return errors.Wrap(err, "config: decode defaults")
	}
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, val := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if sub, ok := val.(map[string]any); ok {
				walk(key, sub)
				continue
			}
			v.SetDefault(key, val)
		}
	}
	walk("", tree)
	return nil
}

func (s *Store) decode() (Config, error) {
	var cfg Config
	if err := s.v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal")
	}
	return cfg.Sanitize(), nil
}

// Config returns the last successfully decoded configuration
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// File returns the config file in use, empty when running on defaults
func (s *Store) File() string {
	return s.v.ConfigFileUsed()
}

// Watch reloads on file changes and hands each good configuration to fn.
// fn runs on the watcher goroutine. No-op without a config file
func (s *Store) Watch(fn func(Config)) bool {
	if s.File() == "" || fn == nil {
		return false
	}
	s.v.OnConfigChange(func(ev fsnotify.Event) {
		s.changed(ev, fn)
	})
	s.v.WatchConfig()
	return true
}

func (s *Store) changed(ev fsnotify.Event, fn func(Config)) {
	cfg, err := s.decode()
	if err != nil {
		s.log.Warn("config reload rejected", zap.String("file", ev.Name), zap.Error(err))
		return
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	s.log.Debug("config reloaded", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
	fn(cfg)
}
