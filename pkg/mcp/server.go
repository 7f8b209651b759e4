// Package mcp exposes the Sprut.hub controller as MCP tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Pillumz/spruthub-mcp-server/pkg/catalog"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// DialFunc establishes the shared hub connection. It is invoked lazily on
// the first tool call that needs the hub; method-catalog tools work without
// a connection.
type DialFunc func(ctx context.Context) (spruthub.Caller, error)

// Server wraps the MCP server with the Sprut.hub tool set.
type Server struct {
	mcpServer *server.MCPServer
	catalog   *catalog.Catalog
	dial      DialFunc

	mu         sync.Mutex
	caller     spruthub.Caller
	controller *spruthub.Controller
}

// NewServer creates a new MCP server. The dial function is called at most
// once per live connection; the resulting hub connection is shared across
// all tool invocations.
func NewServer(dial DialFunc, cat *catalog.Catalog) *Server {
	s := &Server{
		catalog: cat,
		dial:    dial,
	}

	s.mcpServer = server.NewMCPServer(
		"spruthub-mcp-server",
		"2.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// connect returns the shared controller, dialing the hub on first use. A
// dropped connection is re-dialed on the next call.
func (s *Server) connect(ctx context.Context) (*spruthub.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.caller != nil {
		probe, ok := s.caller.(interface{ IsConnected() bool })
		if !ok || probe.IsConnected() {
			return s.controller, nil
		}
	}

	caller, err := s.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Sprut.hub: %w", err)
	}
	s.caller = caller
	s.controller = spruthub.NewController(caller)
	return s.controller, nil
}

// ServeStdio starts the MCP server using stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Close tears down the hub connection, if one was established.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if closer, ok := s.caller.(interface{ Close() }); ok {
		closer.Close()
	}
	s.caller = nil
	s.controller = nil
}
