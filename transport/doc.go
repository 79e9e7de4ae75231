// Package transport owns the network side of udplog: resolving a
// destination and sending datagrams to it.
//
// A UDPSender resolves its destination once and binds one ephemeral
// local endpoint when it is created. Every Send transmits exactly one
// datagram with no acknowledgment and no retry; the caller decides what
// to do with a failure. Payloads larger than MaxDatagramSize are refused
// before reaching the socket.
package transport
