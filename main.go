package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wormholes/pkg/engine/input"
	"wormholes/pkg/engine/spatial"
	"wormholes/pkg/engine/terminal"
	"wormholes/pkg/game/config"
	"wormholes/pkg/game/devtools"
	"wormholes/pkg/game/gameplay"
	"wormholes/pkg/game/renderer"
	ebitenrenderer "wormholes/pkg/game/renderer/ebiten"
	"wormholes/pkg/game/renderer/tui"
	"wormholes/pkg/game/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", os.Getenv("WORMHOLES_CONFIG"), "path to a .toml or .yaml config file")
	frontend := flag.String("frontend", "", "renderer to use: tui or ebiten (overrides the config)")
	scriptPath := flag.String("script", "", "Lua script that supplies moves instead of the keyboard")
	dumpPath := flag.String("dump", "", "write a debug dump of the final worm to this file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *frontend != "" {
		cfg.Render.Frontend = *frontend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Language, "default")

	if err := input.ApplyBindings(cfg.Bindings); err != nil {
		return fmt.Errorf("bindings: %w", err)
	}

	session, err := gameplay.BuildSession(cfg, log)
	if err != nil {
		return err
	}

	var script *input.ScriptSource
	if *scriptPath != "" {
		script, err = input.LoadScript(*scriptPath, observe(session), log)
		if err != nil {
			return err
		}
		defer script.Close()
	}

	switch cfg.Render.Frontend {
	case config.FrontendEbiten:
		err = runWindow(cfg, session, script, log)
	default:
		err = runTerminal(session, script)
	}
	if err != nil {
		return err
	}

	if *dumpPath != "" {
		path, err := devtools.DumpWormToFile(session, *dumpPath)
		if err != nil {
			return fmt.Errorf("dump worm: %w", err)
		}
		log.Info("worm dumped", zap.String("file", path))
	}
	return nil
}

// observe hands the script the session's tick and head position
func observe(s *state.Session) input.Observer {
	return func() (int, spatial.Vector3i) {
		return s.Tick, s.Worm.HeadPosition()
	}
}

func runTerminal(s *state.Session, script *input.ScriptSource) error {
	var src input.Source
	if script != nil {
		src = script
	} else {
		if !terminal.IsTerminal(os.Stdin) {
			return errors.New("stdin is not a terminal; pass -script to play without a keyboard")
		}
		src = input.NewTerminalSource()
	}

	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()
	return gameplay.Run(s, r, src)
}

func runWindow(cfg *config.Config, s *state.Session, script *input.ScriptSource, log *zap.Logger) error {
	opts := ebitenrenderer.Options{
		WindowWidth:  cfg.Render.WindowWidth,
		WindowHeight: cfg.Render.WindowHeight,
		Scale:        renderer.Scale{CellSize: cfg.Render.CellSize},
		StepFrames:   cfg.Render.StepFrames,
		Log:          log,
	}
	// a nil *ScriptSource must not become a non-nil Source
	if script != nil {
		opts.Script = script
	}

	r := ebitenrenderer.New(s, gameplay.ProcessIntent, opts)
	renderer.SetRenderer(r)
	renderer.Init()
	return r.Run()
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
