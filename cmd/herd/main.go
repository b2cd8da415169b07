package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"herd/internal/audio"
	"herd/internal/desktop"
	"herd/internal/game"
	"herd/internal/logger"
	"herd/internal/terminal"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "herd: %v\n", err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "herd"
	app.Usage = "Simulate a herd of horses that steer around each other"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "TOML config file"},
		cli.Uint64Flag{Name: "seed", Usage: "Random seed; 0 uses the clock"},
		cli.IntFlag{Name: "herd", Usage: "Number of horses"},
		cli.StringFlag{Name: "backend, b", Usage: "Rendering backend: gl or term"},
		cli.BoolFlag{Name: "paused", Usage: "Start with animation paused"},
		cli.BoolFlag{Name: "running", Usage: "Start with animation running"},
		cli.BoolFlag{Name: "debug-colors", Usage: "Colour horses by collision status"},
		cli.BoolFlag{Name: "no-audio", Usage: "Disable sound effects"},
		cli.StringFlag{Name: "log-level", Usage: "Log level (debug, info, warn, error)"},
		cli.StringFlag{Name: "log-format", Usage: "Log format: text or json"},
		cli.StringFlag{Name: "log-file", Usage: "Append logs to this file"},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		return run(cfg)
	}
	return app
}

// loadConfig reads the config file and applies the flags that were given on
// the command line.
func loadConfig(c *cli.Context) (game.Config, error) {
	cfg, err := game.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("herd") {
		cfg.Herd = c.Int("herd")
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.Bool("paused") {
		cfg.Paused = true
	}
	if c.Bool("running") {
		cfg.Paused = false
	}
	if c.Bool("debug-colors") {
		cfg.DebugColors = true
	}
	if c.Bool("no-audio") {
		cfg.Audio = false
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// logOutput picks where logs go. The terminal backend owns the tty, so its
// logs are dropped unless a file is given.
func logOutput(cfg game.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if cfg.Backend == game.BackendTerminal {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

func run(cfg game.Config) error {
	out, closeLog, err := logOutput(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.New(cfg.LogLevel, cfg.LogFormat, out)

	scene, err := game.NewScene(cfg, game.NewEventBus(), log)
	if err != nil {
		log.WithError(err).Error("building scene")
		return err
	}

	if cfg.Audio {
		sys, err := audio.New(log)
		if err != nil {
			log.WithError(err).Warn("audio init failed, continuing without sound")
		} else {
			sys.Attach(scene.Events())
		}
	}

	log.WithFields(logrus.Fields{"backend": cfg.Backend, "herd": cfg.Herd}).Info("starting")
	switch cfg.Backend {
	case game.BackendTerminal:
		err = terminal.Run(scene, log)
	default:
		err = desktop.Run(scene, cfg.Window, log)
	}
	if err != nil {
		log.WithError(err).Error("backend stopped")
	}
	return err
}
