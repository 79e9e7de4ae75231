package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/philipp01105/udplog/logger"
)

func demoCommand(diag *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Log a numbered line at a fixed interval until interrupted",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "every",
				Usage: "Pause between lines",
				Value: time.Second,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Stop after this many lines (0 runs until interrupted)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			l, err := buildLogger(c, diag)
			if err != nil {
				return err
			}
			if err := logger.Register(l); err != nil {
				_ = l.Close()
				return err
			}
			defer func() { _ = l.Close() }()

			return runDemo(ctx, c.Duration("every"), int(c.Int("count")))
		},
	}
}

// runDemo logs through the registered logger until ctx is done or count
// lines were sent.
func runDemo(ctx context.Context, every time.Duration, count int) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for i := 1; count == 0 || i <= count; i++ {
		logger.Infof("testing %d things", i)
		if count != 0 && i == count {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
