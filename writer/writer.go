package writer

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/udplog/transport"
)

// ErrClosed is returned by Push once the writer has been closed.
var ErrClosed = errors.New("writer closed")

// Writer delivers formatted log lines. A Logger owns exactly one Writer
// and calls Push once per enabled event.
type Writer interface {
	// Push hands one formatted line to the writer
	Push(msg string) error

	// Close releases the writer's resources
	Close() error
}

// UDPConfig holds configuration for the UDP writers
type UDPConfig struct {
	// Destination is the host:port datagrams are sent to
	Destination string
	// Buffered selects the queue + background worker strategy (default: false)
	Buffered bool
	// DrainInterval is the pause between drain cycles (default: 50ms)
	DrainInterval time.Duration
	// DrainTimeout bounds the final drain on Close (default: 5s)
	DrainTimeout time.Duration
	// Sender overrides the UDP sender; Destination is ignored when set
	Sender transport.Sender
	// ErrorLog receives send-failure diagnostics (default: stderr at Warn)
	ErrorLog *zap.Logger
}

// applyUDPDefaults fills in zero-value fields with defaults.
func applyUDPDefaults(cfg *UDPConfig) {
	if cfg.DrainInterval <= 0 {
		cfg.DrainInterval = 50 * time.Millisecond
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
	if cfg.ErrorLog == nil {
		cfg.ErrorLog = NewErrorLog()
	}
}

// NewUDPWriter creates a new UDP writer.
// Returns an UnbufferedWriter when Buffered is false, or a BufferedWriter
// when Buffered is true. Resolve and bind errors are returned before any
// goroutine is started.
func NewUDPWriter(cfg UDPConfig) (Writer, error) {
	applyUDPDefaults(&cfg)

	sender := cfg.Sender
	if sender == nil {
		s, err := transport.NewUDPSender(cfg.Destination)
		if err != nil {
			return nil, err
		}
		sender = s
	}

	if cfg.Buffered {
		return newBufferedWriter(cfg, sender), nil
	}
	return newUnbufferedWriter(cfg, sender), nil
}

// NewUnbuffered creates an UnbufferedWriter sending to destination.
func NewUnbuffered(destination string) (*UnbufferedWriter, error) {
	w, err := NewUDPWriter(UDPConfig{Destination: destination})
	if err != nil {
		return nil, err
	}
	return w.(*UnbufferedWriter), nil
}

// NewBuffered creates a BufferedWriter sending to destination.
func NewBuffered(destination string) (*BufferedWriter, error) {
	w, err := NewUDPWriter(UDPConfig{Destination: destination, Buffered: true})
	if err != nil {
		return nil, err
	}
	return w.(*BufferedWriter), nil
}

// NewErrorLog builds the default diagnostic logger: console-encoded,
// written to stderr, Warn and above.
func NewErrorLog() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core).Named("udplog")
}
