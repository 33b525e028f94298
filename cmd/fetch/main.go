package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/fetch/audio"
	"github.com/lixenwraith/fetch/config"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/system"
)

var (
	configFlag  = flag.String("config", "fetch.toml", "Path to the tuning file")
	profileFlag = flag.Bool("profile", false, "Write a CPU profile to the working directory")
	silentFlag  = flag.Bool("silent", false, "Disable audio cues")
)

func main() {
	// Ensure the terminal is reset even if the game crashes
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "fetch crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	world := engine.NewWorld()
	world.Resources.Log = logger
	world.Resources.Config = engine.ConfigResource{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		Margin: cfg.World.Margin,
	}
	world.Resources.Tuning = engine.TuningResource{
		ChargeRate:    cfg.Throw.ChargeRate,
		MinThrowSpeed: cfg.Throw.MinSpeed,
		MaxThrowSpeed: cfg.Throw.MaxSpeed,
	}

	setupWorld(world, cfg)
	system.RegisterAll(world)

	var cues *audio.Engine
	if cfg.Audio.Enabled && !*silentFlag {
		cues, err = audio.NewEngine()
		if err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("audio init failed", zap.Error(err))
		}
		defer cues.Close()
	}

	logger.Info("starting",
		zap.Float64("world_w", cfg.World.Width),
		zap.Float64("world_h", cfg.World.Height),
	)

	runLoop(screen, world, cues)
}

// buildLogger writes structured logs to a file; a terminal game cannot
// log to stdout. An empty level disables logging entirely.
func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.Level == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
