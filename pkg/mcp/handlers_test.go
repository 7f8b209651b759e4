package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pillumz/spruthub-mcp-server/pkg/catalog"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// stubCaller is an in-memory hub: it records calls and answers from a
// scripted respond function.
type stubCaller struct {
	online  bool
	methods []string
	params  []any
	respond func(method string, params any) (json.RawMessage, error)
}

func (s *stubCaller) IsConnected() bool { return s.online }

func (s *stubCaller) CallMethod(_ context.Context, method string, params any) (json.RawMessage, error) {
	s.methods = append(s.methods, method)
	s.params = append(s.params, params)
	if s.respond == nil {
		return json.RawMessage(`{}`), nil
	}
	return s.respond(method, params)
}

func newTestServer(caller *stubCaller) (*Server, *int) {
	dials := 0
	dial := func(ctx context.Context) (spruthub.Caller, error) {
		dials++
		if caller == nil {
			return nil, errors.New("dial ws://spruthub.local:9090: connection refused")
		}
		return caller, nil
	}
	return NewServer(dial, catalog.New()), &dials
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content type %T", res.Content[0])
	return ""
}

func TestListMethods_WorksWithoutHub(t *testing.T) {
	s, dials := newTestServer(nil) // dialing would fail

	res, err := s.handleListMethods(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Zero(t, *dials)

	var out ListMethodsOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, len(out.Methods), out.TotalCount)
	assert.Equal(t, "all", out.Category)
	assert.Contains(t, out.AvailableCategories, "scenario")
}

func TestListMethods_CategoryFilter(t *testing.T) {
	s, _ := newTestServer(nil)

	res, err := s.handleListMethods(context.Background(), toolRequest(map[string]any{"category": "room"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out ListMethodsOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out.Methods, 1)
	assert.Equal(t, "room.list", out.Methods[0].Name)
	assert.Equal(t, "room", out.Category)
}

func TestListMethods_UnknownCategory(t *testing.T) {
	s, _ := newTestServer(nil)

	res, err := s.handleListMethods(context.Background(), toolRequest(map[string]any{"category": "plumbing"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Available categories")
}

func TestGetMethodSchema(t *testing.T) {
	s, _ := newTestServer(nil)

	res, err := s.handleGetMethodSchema(context.Background(), toolRequest(map[string]any{"methodName": "log.list"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"log.list"`)

	res, err = s.handleGetMethodSchema(context.Background(), toolRequest(map[string]any{"methodName": "nope"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not found")

	res, err = s.handleGetMethodSchema(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "methodName parameter is required")
}

func TestCallMethod_ValidatesBeforeDialing(t *testing.T) {
	s, dials := newTestServer(nil)

	// Unknown method never reaches the hub
	res, err := s.handleCallMethod(context.Background(), toolRequest(map[string]any{"methodName": "bogus.method"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, *dials)

	// Schema violation never reaches the hub either
	res, err = s.handleCallMethod(context.Background(), toolRequest(map[string]any{
		"methodName": "log.list",
		"parameters": map[string]any{"count": float64(500)},
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, *dials)
}

func TestCallMethod(t *testing.T) {
	caller := &stubCaller{online: true, respond: func(method string, _ any) (json.RawMessage, error) {
		return json.RawMessage(`{"data":{"rooms":[]}}`), nil
	}}
	s, dials := newTestServer(caller)

	res, err := s.handleCallMethod(context.Background(), toolRequest(map[string]any{
		"methodName": "room.list",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, 1, *dials)
	assert.Equal(t, []string{"room.list"}, caller.methods)

	var out CallMethodOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, "room.list", out.MethodName)
}

func TestConnect_DialsOnceAndReuses(t *testing.T) {
	caller := &stubCaller{online: true}
	s, dials := newTestServer(caller)

	_, err := s.connect(context.Background())
	require.NoError(t, err)
	_, err = s.connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, *dials)
}

func TestConnect_RedialsWhenConnectionDropped(t *testing.T) {
	caller := &stubCaller{online: true}
	s, dials := newTestServer(caller)

	_, err := s.connect(context.Background())
	require.NoError(t, err)

	caller.online = false
	_, err = s.connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, *dials)
}

func TestListAccessories_ConnectFailureSurfaces(t *testing.T) {
	s, _ := newTestServer(nil)

	res, err := s.handleListAccessories(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "failed to connect to Sprut.hub")
}

func TestGetLogs_DefaultCount(t *testing.T) {
	caller := &stubCaller{online: true, respond: func(method string, _ any) (json.RawMessage, error) {
		return json.RawMessage(`{"data":{"logs":[{"message":"boot"}]}}`), nil
	}}
	s, _ := newTestServer(caller)

	res, err := s.handleGetLogs(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	require.Len(t, caller.params, 1)
	assert.Equal(t, map[string]any{"count": 20}, caller.params[0])

	var out GetLogsOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, 1, out.Count)
}

func TestGetLogs_RejectsNonNumericCount(t *testing.T) {
	s, dials := newTestServer(nil)

	res, err := s.handleGetLogs(context.Background(), toolRequest(map[string]any{"count": "many"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "count must be a number")
	assert.Zero(t, *dials)
}

func TestControlAccessory_ParamValidation(t *testing.T) {
	s, dials := newTestServer(nil)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing id", map[string]any{"characteristic": "On", "value": true}, "id parameter is required"},
		{"missing characteristic", map[string]any{"id": float64(1), "value": true}, "characteristic parameter is required"},
		{"missing value", map[string]any{"id": float64(1), "characteristic": "On"}, "value parameter is required"},
		{"null value", map[string]any{"id": float64(1), "characteristic": "On", "value": nil}, "value parameter is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleControlAccessory(context.Background(), toolRequest(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
	assert.Zero(t, *dials)
}

func TestControlAccessory_FalseIsAValue(t *testing.T) {
	search := `{"data":{"accessories":[
		{"id": 1, "name": "Lamp", "services": [{"type": "Lightbulb", "characteristics": [
			{"aId": 1, "sId": 2, "cId": 3, "control": {"type": "On", "write": true}}
		]}]}
	]}}`
	caller := &stubCaller{online: true, respond: func(method string, _ any) (json.RawMessage, error) {
		switch method {
		case "accessory.search":
			return json.RawMessage(search), nil
		case "characteristic.update":
			return json.RawMessage(`{"isSuccess":true}`), nil
		}
		return nil, fmt.Errorf("unexpected method %s", method)
	}}
	s, _ := newTestServer(caller)

	res, err := s.handleControlAccessory(context.Background(), toolRequest(map[string]any{
		"id": float64(1), "characteristic": "On", "value": false,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out spruthub.ControlResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.True(t, out.Success)
	assert.Equal(t, false, out.Value)
	assert.Contains(t, caller.methods, "characteristic.update")
}

func TestRunScenario(t *testing.T) {
	caller := &stubCaller{online: true}
	s, _ := newTestServer(caller)

	res, err := s.handleRunScenario(context.Background(), toolRequest(map[string]any{"id": float64(5)}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out RunScenarioOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.True(t, out.Success)
	assert.Equal(t, 5, out.ScenarioID)
	assert.Equal(t, []string{"scenario.run"}, caller.methods)
}
