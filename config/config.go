// Package config loads the optional fetch.toml tuning file.
// Defaults reproduce the constants in the constant package; a missing
// file is not an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/fetch/constant"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Player  PlayerConfig  `toml:"player"`
	Dog     DogConfig     `toml:"dog"`
	Ball    BallConfig    `toml:"ball"`
	Throw   ThrowConfig   `toml:"throw"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

type PlayerConfig struct {
	Speed float64 `toml:"speed"`
}

type DogConfig struct {
	Speed float64 `toml:"speed"`
}

type BallConfig struct {
	Friction float64 `toml:"friction"` // per-60Hz-frame velocity retention, (0, 1]
}

type ThrowConfig struct {
	ChargeRate float64 `toml:"charge_rate"`
	MinSpeed   float64 `toml:"min_speed"`
	MaxSpeed   float64 `toml:"max_speed"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // zap level name; empty disables logging
	File  string `toml:"file"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  constant.DefaultWorldWidth,
			Height: constant.DefaultWorldHeight,
			Margin: constant.WorldMargin,
		},
		Player: PlayerConfig{Speed: constant.PlayerSpeed},
		Dog:    DogConfig{Speed: constant.DogSpeed},
		Ball:   BallConfig{Friction: constant.BallFriction},
		Throw: ThrowConfig{
			ChargeRate: constant.ChargeRate,
			MinSpeed:   constant.MinThrowSpeed,
			MaxSpeed:   constant.MaxThrowSpeed,
		},
		Audio: AudioConfig{Enabled: true},
		Logging: LoggingConfig{
			File: "fetch.log",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with
func (c Config) Validate() error {
	if c.World.Width <= 2*c.World.Margin || c.World.Height <= 2*c.World.Margin {
		return fmt.Errorf("world %gx%g too small for margin %g", c.World.Width, c.World.Height, c.World.Margin)
	}
	if c.Ball.Friction <= 0 || c.Ball.Friction > 1 {
		return fmt.Errorf("ball friction %g outside (0, 1]", c.Ball.Friction)
	}
	if c.Player.Speed <= 0 || c.Dog.Speed <= 0 {
		return fmt.Errorf("speeds must be positive")
	}
	if c.Throw.ChargeRate <= 0 {
		return fmt.Errorf("charge rate must be positive")
	}
	if c.Throw.MinSpeed <= 0 || c.Throw.MaxSpeed < c.Throw.MinSpeed {
		return fmt.Errorf("throw speeds must satisfy 0 < min <= max")
	}
	return nil
}
