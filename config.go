package sapling

import (
	"fmt"

	"github.com/phanxgames/sapling/input"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration a game may load from YAML. Input
// binding tables are not part of it; layouts are declared in code.
type Config struct {
	Run   RunConfig   `yaml:"run"`
	Input InputConfig `yaml:"input"`
}

// InputConfig tunes the input pipeline.
type InputConfig struct {
	// HistoryLength is the number of snapshots each history keeps.
	HistoryLength int               `yaml:"history_length"`
	Smash         input.SmashConfig `yaml:"smash"`
}

// DefaultConfig returns the configuration used for fields a YAML document
// leaves out.
func DefaultConfig() Config {
	return Config{
		Run: RunConfig{Title: "sapling", Width: 640, Height: 480, TPS: 60},
		Input: InputConfig{
			HistoryLength: input.DefaultHistoryLength,
			Smash:         input.DefaultSmash,
		},
	}
}

// LoadConfig parses YAML data over DefaultConfig.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Run.Width < 0 || c.Run.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", c.Run.Width, c.Run.Height)
	}
	if c.Run.TPS < 0 {
		return fmt.Errorf("tps %d is negative", c.Run.TPS)
	}
	if c.Input.HistoryLength < 1 {
		return fmt.Errorf("input.history_length %d must be at least 1", c.Input.HistoryLength)
	}
	if c.Input.Smash.Threshold < 0 || c.Input.Smash.Threshold > 1 {
		return fmt.Errorf("input.smash.threshold %v is outside [0, 1]", c.Input.Smash.Threshold)
	}
	if c.Input.Smash.Window < 0 {
		return fmt.Errorf("input.smash.window %d is negative", c.Input.Smash.Window)
	}
	return nil
}

// NewHistory returns a history with the configured length.
func (c InputConfig) NewHistory() *input.History {
	return input.NewHistory(c.HistoryLength)
}

// Layout returns a layout extending base whose bindings use the configured
// smash tuning.
func (c InputConfig) Layout(base *input.Layout) *input.Layout {
	smash := c.Smash
	return &input.Layout{Name: base.Name, Base: base, Smash: &smash}
}
