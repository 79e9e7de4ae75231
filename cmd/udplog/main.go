package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/philipp01105/udplog/config"
	"github.com/philipp01105/udplog/formatter"
	"github.com/philipp01105/udplog/logger"
	"github.com/philipp01105/udplog/writer"
)

func main() {
	diag := writer.NewErrorLog()
	defer func() { _ = diag.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(diag).Run(ctx, os.Args); err != nil {
		diag.Error("udplog", zap.Error(err))
		stop()
		_ = diag.Sync()
		os.Exit(1)
	}
}

func newApp(diag *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "udplog",
		Usage: "Send and receive log lines over UDP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  "dest",
				Usage: "Destination host:port (overrides config)",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Minimum level: trace, debug, info, warn, error, fatal, panic",
			},
			&cli.BoolFlag{
				Name:  "buffered",
				Usage: "Queue lines and send them from a background worker",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Line format: line or json",
			},
		},
		Commands: []*cli.Command{
			sendCommand(diag),
			demoCommand(diag),
			listenCommand(),
			versionCommand(),
		},
	}
}

// loadConfig reads the config file, applies command-line overrides and
// validates the result, so a flag can correct a bad value in the file.
func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("dest") {
		cfg.Destination = c.String("dest")
	}
	if c.IsSet("level") {
		cfg.Level = c.String("level")
	}
	if c.IsSet("buffered") {
		cfg.Buffered = c.Bool("buffered")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildLogger creates a Logger from the effective configuration.
func buildLogger(c *cli.Command, diag *zap.Logger) (*logger.Logger, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return newLogger(cfg, diag)
}

func newLogger(cfg *config.Config, diag *zap.Logger) (*logger.Logger, error) {
	fcfg := formatter.Config{IncludeCaller: cfg.IncludeCaller}
	var f formatter.Formatter = formatter.NewLineFormatter(fcfg)
	if cfg.Format == config.FormatJSON {
		f = formatter.NewJSONFormatter(fcfg)
	}

	return logger.NewBuilder().
		WithDestination(cfg.Destination).
		WithBuffered(cfg.Buffered).
		WithDrainInterval(cfg.DrainInterval.Duration).
		WithDrainTimeout(cfg.DrainTimeout.Duration).
		WithErrorLog(diag).
		WithFormatter(f).
		WithLevel(cfg.ParsedLevel()).
		WithCaller(cfg.IncludeCaller).
		Build()
}
