package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEvent    = "valentine"
	DefaultDelay    = 2 * time.Second
	DefaultTimeout  = 20 * time.Second
	DefaultProvider = "gemini"
	DefaultModel    = "gemini-3-flash-preview"
	DefaultLevel    = "info"
	DefaultTheme    = "midnight"
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Event      EventConfig      `yaml:"event"`
	Activation ActivationConfig `yaml:"activation"`
	Sim        SimConfig        `yaml:"sim"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Log        LogConfig        `yaml:"log"`
	UI         UIConfig         `yaml:"ui"`
}

// EventConfig places the cutoff: the end of Day in Month, this year.
type EventConfig struct {
	Name     string     `yaml:"name"`
	Month    time.Month `yaml:"month"`
	Day      int        `yaml:"day"`
	Location string     `yaml:"location" env:"AURA_TZ"`
}

// ActivationConfig gates the whole experience to a span of days. It is off
// unless Enforce is set.
type ActivationConfig struct {
	Enforce  bool `yaml:"enforce" env:"AURA_ENFORCE_WINDOW"`
	StartDay int  `yaml:"start_day"`
}

type SimConfig struct {
	Delay time.Duration `yaml:"delay" env:"AURA_SIM_DELAY"`
	Seed  int64         `yaml:"seed" env:"AURA_SEED"`
}

type GeneratorConfig struct {
	Provider string        `yaml:"provider" env:"AURA_PROVIDER"`
	Model    string        `yaml:"model" env:"AURA_MODEL"`
	Timeout  time.Duration `yaml:"timeout" env:"AURA_TIMEOUT"`
	APIKey   string        `yaml:"-" env:"API_KEY"`
	AltKey   string        `yaml:"-" env:"GEMINI_API_KEY"`
}

type LogConfig struct {
	File  string `yaml:"file" env:"AURA_LOG_FILE"`
	Level string `yaml:"level" env:"AURA_LOG_LEVEL"`
}

type UIConfig struct {
	Theme string `yaml:"theme" env:"AURA_THEME"`
}

func DefaultConfig() *Config {
	ev := Presets[DefaultEvent]
	return &Config{
		Event: EventConfig{
			Name:  DefaultEvent,
			Month: ev.Month,
			Day:   ev.Day,
		},
		Activation: ActivationConfig{StartDay: ev.StartDay},
		Sim:        SimConfig{Delay: DefaultDelay},
		Generator: GeneratorConfig{
			Provider: DefaultProvider,
			Model:    DefaultModel,
			Timeout:  DefaultTimeout,
		},
		Log: LogConfig{Level: DefaultLevel},
		UI:  UIConfig{Theme: DefaultTheme},
	}
}

// Load reads a yaml file over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadWithEnv loads the file, a .env file if present, and then the process
// environment, which wins over both. Callers validate once their own overrides
// are applied.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	_ = godotenv.Load()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// UsePreset replaces the event with a named preset.
func (c *Config) UsePreset(name string) error {
	ev, ok := Presets[name]
	if !ok {
		return fmt.Errorf("unknown event preset: %s (available: %v)", name, ListPresets())
	}
	c.Event.Name = name
	c.Event.Month = ev.Month
	c.Event.Day = ev.Day
	c.Activation.StartDay = ev.StartDay
	return nil
}

// Credential is the generator key, preferring API_KEY over GEMINI_API_KEY.
func (c *Config) Credential() string {
	if c.Generator.APIKey != "" {
		return c.Generator.APIKey
	}
	return c.Generator.AltKey
}

// Location resolves the event time zone; empty means local time.
func (c *Config) Location() (*time.Location, error) {
	if c.Event.Location == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Event.Location)
}

func (c *Config) Validate() error {
	if c.Event.Month < time.January || c.Event.Month > time.December {
		return fmt.Errorf("%w: event month %d", ErrInvalidConfig, c.Event.Month)
	}
	if !dayExists(c.Event.Month, c.Event.Day) {
		return fmt.Errorf("%w: event day %d of %s", ErrInvalidConfig, c.Event.Day, c.Event.Month)
	}
	if c.Activation.Enforce && (c.Activation.StartDay < 1 || c.Activation.StartDay > c.Event.Day) {
		return fmt.Errorf("%w: activation start day %d", ErrInvalidConfig, c.Activation.StartDay)
	}
	if c.Sim.Delay < 0 {
		return fmt.Errorf("%w: negative sim delay", ErrInvalidConfig)
	}
	if c.Generator.Timeout <= 0 {
		return fmt.Errorf("%w: generator timeout must be positive", ErrInvalidConfig)
	}
	switch c.Generator.Provider {
	case "gemini", "fallback", "static":
	default:
		return fmt.Errorf("%w: generator provider %q", ErrInvalidConfig, c.Generator.Provider)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: location: %v", ErrInvalidConfig, err)
	}
	return nil
}

// dayExists checks day against month in a common year, so a February 29
// cutoff is never accepted and then rolled into March.
func dayExists(month time.Month, day int) bool {
	if day < 1 {
		return false
	}
	return time.Date(2023, month, day, 0, 0, 0, 0, time.UTC).Day() == day
}
