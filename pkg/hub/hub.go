// Package hub provides the WebSocket JSON-RPC 2.0 transport to a Sprut.hub
// server. The client implements spruthub.Caller; everything above it is
// connection-agnostic.
package hub

import "errors"

var (
	// ErrNotConnected indicates a call was attempted before Connect succeeded
	// or after the connection dropped.
	ErrNotConnected = errors.New("not connected to hub")

	// ErrTimeout indicates the hub did not answer a request in time.
	ErrTimeout = errors.New("hub request timed out")

	// ErrClosed indicates the connection was closed while a request was in
	// flight.
	ErrClosed = errors.New("hub connection closed")
)
