package spruthub

import (
	"context"
	"encoding/json"
)

// Caller is the hub query/command capability the controller depends on.
// The concrete implementation lives in pkg/hub; the controller itself is
// stateless and connection-agnostic.
type Caller interface {
	// CallMethod invokes a hub JSON-RPC method and returns its raw result.
	CallMethod(ctx context.Context, method string, params any) (json.RawMessage, error)
}
