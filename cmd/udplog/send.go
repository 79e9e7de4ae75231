package main

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/logger"
)

func sendCommand(diag *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "Send a message, or each line of stdin, as one log event",
		ArgsUsage: "[message...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "at",
				Usage: "Level of the sent events",
				Value: "info",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			level, err := core.ParseLevel(c.String("at"))
			if err != nil {
				return err
			}
			l, err := buildLogger(c, diag)
			if err != nil {
				return err
			}

			if c.NArg() > 0 {
				l.Log(level, strings.Join(c.Args().Slice(), " "))
			} else {
				err = sendLines(ctx, l, level, os.Stdin)
			}
			return multierr.Combine(err, l.Close(), undelivered(l))
		},
	}
}

// undelivered reports datagrams that failed or were dropped. Call it
// after Close so the buffered queue has been drained.
func undelivered(l *logger.Logger) error {
	snap, ok := l.Stats()
	if !ok || snap.Failed+snap.Dropped == 0 {
		return nil
	}
	return errors.Errorf("%d of %d datagrams not delivered", snap.Failed+snap.Dropped, snap.Enqueued)
}

// sendLines logs every non-empty line read from in.
func sendLines(ctx context.Context, l *logger.Logger, level core.Level, in *os.File) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		l.Log(level, line)
	}
	return errors.Wrap(scanner.Err(), "read stdin")
}
