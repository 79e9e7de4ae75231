package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/philipp01105/udplog/transport"
)

var (
	timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	levelStyles = map[string]lipgloss.Style{
		"TRACE": lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"ERROR": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		"FATAL": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
		"PANIC": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
	}
)

func listenCommand() *cli.Command {
	return &cli.Command{
		Name:  "listen",
		Usage: "Print log datagrams received on a UDP address",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Local address to listen on",
				Value: "127.0.0.1:19999",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Exit after this many datagrams (0 runs until interrupted)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			addr, err := net.ResolveUDPAddr("udp", c.String("addr"))
			if err != nil {
				return errors.Wrapf(err, "resolve %q", c.String("addr"))
			}
			conn, err := net.ListenUDP("udp", addr)
			if err != nil {
				return errors.Wrap(err, "listen")
			}
			return listen(ctx, conn, os.Stdout, int(c.Int("count")))
		},
	}
}

// listen prints each datagram read from conn until ctx is done or count
// datagrams were printed. conn is closed on return.
func listen(ctx context.Context, conn *net.UDPConn, out io.Writer, count int) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()

	buf := make([]byte, transport.MaxDatagramSize)
	for n := 0; count == 0 || n < count; n++ {
		size, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "read datagram")
		}
		fmt.Fprintln(out, render(string(buf[:size])))
	}
	return nil
}

// render styles a received line. Lines not shaped like
// "LEVEL [timestamp] message" are returned unchanged, minus the newline.
func render(line string) string {
	line = strings.TrimRight(line, "\n")

	level, rest, ok := strings.Cut(line, " ")
	if !ok {
		return line
	}
	style, known := levelStyles[level]
	if !known {
		return line
	}
	styled := style.Render(fmt.Sprintf("%-5s", level))
	end := strings.Index(rest, "] ")
	if !strings.HasPrefix(rest, "[") || end < 0 {
		return styled + " " + rest
	}
	return styled + " " + timeStyle.Render(rest[:end+1]) + " " + rest[end+2:]
}
