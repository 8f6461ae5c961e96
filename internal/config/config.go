package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSize      = 30
	DefaultPattern   = "random"
	DefaultSpeed     = "normal"
	DefaultMinValue  = 5
	DefaultMaxValue  = 100
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Pattern   string `yaml:"pattern"`
	Seed      int64  `yaml:"seed"`
	Speed     string `yaml:"speed"`
	DelayMs   int    `yaml:"delay_ms"` // overrides Speed when positive
	MinValue  int    `yaml:"min_value"`
	MaxValue  int    `yaml:"max_value"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		Pattern:   DefaultPattern,
		Speed:     DefaultSpeed,
		MinValue:  DefaultMinValue,
		MaxValue:  DefaultMaxValue,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Normalized returns a copy with zero-valued fields filled from the
// defaults, so sparse presets are usable directly.
func (c *Config) Normalized() *Config {
	out := *c
	if out.Algorithm == "" {
		out.Algorithm = DefaultAlgorithm
	}
	if out.Size <= 0 {
		out.Size = DefaultSize
	}
	if out.Pattern == "" {
		out.Pattern = DefaultPattern
	}
	if out.Speed == "" {
		out.Speed = DefaultSpeed
	}
	if out.MinValue <= 0 {
		out.MinValue = DefaultMinValue
	}
	if out.MaxValue <= 0 {
		out.MaxValue = DefaultMaxValue
	}
	return &out
}

// Delay resolves the configured inter-step delay: an explicit DelayMs
// wins over the named speed preset, and everything is floored at 1ms.
func (c *Config) Delay() time.Duration {
	if c.DelayMs > 0 {
		d := time.Duration(c.DelayMs) * time.Millisecond
		if d < time.Millisecond {
			d = time.Millisecond
		}
		return d
	}
	if d, ok := SpeedDelay(c.Speed); ok {
		return d
	}
	d, _ := SpeedDelay(DefaultSpeed)
	return d
}
