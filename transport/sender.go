package transport

import (
	"net"
	"sync"

	"github.com/pkg/errors"
)

// MaxDatagramSize is the largest UDP payload deliverable over IPv4.
const MaxDatagramSize = 65507

var (
	// ErrPayloadTooLarge is returned by Send for payloads over MaxDatagramSize.
	ErrPayloadTooLarge = errors.New("payload exceeds maximum datagram size")
	// ErrNoAddress is returned when a destination resolves to nothing usable.
	ErrNoAddress = errors.New("destination address not available")
	// ErrSenderClosed is returned by Send after Close.
	ErrSenderClosed = errors.New("sender closed")
)

// Sender transmits one payload per call to a fixed destination.
type Sender interface {
	// Send transmits payload as a single datagram.
	Send(payload []byte) error

	// Close releases the local endpoint.
	Close() error
}

// ResolveDestination resolves a host:port string into a UDP address.
func ResolveDestination(addr string) (*net.UDPAddr, error) {
	if addr == "" {
		return nil, errors.Wrap(ErrNoAddress, "empty destination")
	}
	dest, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve destination %q", addr)
	}
	if dest.IP == nil || dest.Port == 0 {
		return nil, errors.Wrapf(ErrNoAddress, "destination %q", addr)
	}
	return dest, nil
}

// UDPSender sends datagrams from one ephemeral local endpoint.
type UDPSender struct {
	conn      *net.UDPConn
	dest      *net.UDPAddr
	closeOnce sync.Once
	closeErr  error
}

// NewUDPSender resolves destination and binds the local endpoint.
func NewUDPSender(destination string) (*UDPSender, error) {
	dest, err := ResolveDestination(destination)
	if err != nil {
		return nil, err
	}
	return NewUDPSenderAddr(dest)
}

// NewUDPSenderAddr binds a local endpoint for an already resolved
// destination.
func NewUDPSenderAddr(dest *net.UDPAddr) (*UDPSender, error) {
	network := "udp4"
	if dest.IP.To4() == nil {
		network = "udp6"
	}
	conn, err := net.ListenUDP(network, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "bind local endpoint for %s", dest)
	}
	return &UDPSender{conn: conn, dest: dest}, nil
}

// Send transmits payload to the destination.
func (s *UDPSender) Send(payload []byte) error {
	if len(payload) > MaxDatagramSize {
		return errors.Wrapf(ErrPayloadTooLarge, "%d bytes", len(payload))
	}
	if _, err := s.conn.WriteToUDP(payload, s.dest); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return ErrSenderClosed
		}
		return errors.Wrapf(err, "send to %s", s.dest)
	}
	return nil
}

// Destination returns the resolved remote address.
func (s *UDPSender) Destination() *net.UDPAddr {
	return s.dest
}

// LocalAddr returns the bound local endpoint.
func (s *UDPSender) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// Close closes the local endpoint. Subsequent calls return the first
// result.
func (s *UDPSender) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
