package logger

import (
	"errors"
	"net"
	"strings"
	"testing"
	"time"
)

var osExitOriginal = osExit

func resetDefault(t *testing.T) {
	t.Helper()
	defaultLogger.Store(nil)
	t.Cleanup(func() {
		if l := defaultLogger.Swap(nil); l != nil {
			l.Close()
		}
	})
}

func TestRegister_Once(t *testing.T) {
	resetDefault(t)

	first, w := newTestLogger(t, InfoLevel)
	second, _ := newTestLogger(t, InfoLevel)

	if err := Register(first); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := Register(second); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("second Register() error = %v, want ErrAlreadyRegistered", err)
	}
	if Default() != first {
		t.Error("Default() is not the first registered logger")
	}

	Info("via package")
	Debugf("filtered %d", 1)
	if lines := w.Lines(); len(lines) != 1 || !strings.Contains(lines[0], "via package") {
		t.Errorf("package-level calls produced %q", lines)
	}
}

func TestRegister_Nil(t *testing.T) {
	resetDefault(t)
	if err := Register(nil); err == nil {
		t.Error("Register(nil) should fail")
	}
	if Default() != nil {
		t.Error("Register(nil) installed a logger")
	}
}

func TestPackageFunctions_NoLogger(t *testing.T) {
	resetDefault(t)
	// Must not panic.
	Trace("t")
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	Infof("%d", 1)
}

func TestTryInit(t *testing.T) {
	resetDefault(t)

	ln, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	l, err := TryInit(ln.LocalAddr().String(), InfoLevel)
	if err != nil {
		t.Fatalf("TryInit() error = %v", err)
	}
	if Default() != l {
		t.Fatal("TryInit() did not register the logger")
	}

	Info("This will get sent via UDP!")

	buf := make([]byte, 2048)
	ln.SetReadDeadline(time.Now().Add(time.Second))
	n, _, err := ln.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasSuffix(string(buf[:n]), "] This will get sent via UDP!\n") {
		t.Errorf("datagram = %q", buf[:n])
	}

	if _, err := TryBufferedInit(ln.LocalAddr().String(), InfoLevel); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("second init error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestTryBufferedInit(t *testing.T) {
	resetDefault(t)

	ln, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	l, err := TryBufferedInit(ln.LocalAddr().String(), WarnLevel)
	if err != nil {
		t.Fatalf("TryBufferedInit() error = %v", err)
	}
	if l.Level() != WarnLevel {
		t.Errorf("Level() = %v, want WARN", l.Level())
	}
	if _, ok := l.Writer().(interface{ Pending() int }); !ok {
		t.Errorf("TryBufferedInit() built %T, want a buffered writer", l.Writer())
	}

	Info("filtered")
	Warn("queued")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	buf := make([]byte, 2048)
	ln.SetReadDeadline(time.Now().Add(time.Second))
	n, _, err := ln.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(buf[:n]), "WARN [") || !strings.HasSuffix(string(buf[:n]), "] queued\n") {
		t.Errorf("datagram = %q", buf[:n])
	}
}

func TestTryInit_BadDestination(t *testing.T) {
	resetDefault(t)
	if _, err := TryInit("", InfoLevel); err == nil {
		t.Error("TryInit() with empty destination should fail")
	}
	if Default() != nil {
		t.Error("failed TryInit() registered a logger")
	}
}
