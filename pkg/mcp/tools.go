package mcp

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

// controlAccessorySchema is declared raw because "value" deliberately has no
// type: the characteristic decides whether it is a bool, number or string.
var controlAccessorySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"id": {"type": "number", "description": "Accessory ID (use spruthub_list_accessories to find IDs)"},
		"characteristic": {"type": "string", "description": "Characteristic type to set (e.g., \"On\", \"Brightness\", \"TargetTemperature\")"},
		"value": {"description": "New value for the characteristic (type depends on characteristic)"},
		"serviceType": {"type": "string", "description": "Optional: only search services of this type (e.g., \"Lightbulb\", \"Switch\")"}
	},
	"required": ["id", "characteristic", "value"]
}`)

var controlRoomSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"roomId": {"type": "number", "description": "Room ID (use spruthub_list_rooms to find IDs)"},
		"characteristic": {"type": "string", "description": "Characteristic type to set on all devices (e.g., \"On\", \"Brightness\")"},
		"value": {"description": "New value for the characteristic"},
		"serviceType": {"type": "string", "description": "Optional: filter by device type (e.g., \"Lightbulb\", \"Switch\", \"Thermostat\")"}
	},
	"required": ["roomId", "characteristic", "value"]
}`)

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Method catalog — these work without a hub connection
	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_list_methods",
			mcp.WithDescription("List all available Sprut.hub JSON-RPC API methods with their categories and descriptions"),
			mcp.WithString("category",
				mcp.Description("Filter methods by category (accessory, room, scenario, system)"),
			),
		),
		s.traced("spruthub_list_methods", s.handleListMethods),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_get_method_schema",
			mcp.WithDescription("Get detailed schema for a specific Sprut.hub API method including parameters, return type, examples"),
			mcp.WithString("methodName",
				mcp.Required(),
				mcp.Description("The method name (e.g., \"accessory.search\", \"characteristic.update\")"),
			),
		),
		s.traced("spruthub_get_method_schema", s.handleGetMethodSchema),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_call_method",
			mcp.WithDescription("Execute any Sprut.hub JSON-RPC API method. IMPORTANT: You MUST call spruthub_get_method_schema first to understand the exact parameter structure before calling this method. Never guess parameters."),
			mcp.WithString("methodName",
				mcp.Required(),
				mcp.Description("The method name to call (e.g., \"accessory.search\", \"characteristic.update\")"),
			),
			mcp.WithObject("parameters",
				mcp.Description("Method parameters exactly as defined in the method schema. MUST call spruthub_get_method_schema first to get the correct parameter structure. Do not guess parameter names or structure."),
			),
		),
		s.traced("spruthub_call_method", s.handleCallMethod),
	)

	// Discovery
	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_list_accessories",
			mcp.WithDescription("List all smart home accessories with shallow data (id, name, room, online status). Use this first to discover accessory IDs before controlling devices."),
		),
		s.traced("spruthub_list_accessories", s.handleListAccessories),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_get_accessory",
			mcp.WithDescription("Get full details for a single accessory including all services and characteristics. Requires accessory ID from spruthub_list_accessories."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Accessory ID (use spruthub_list_accessories to find IDs)"),
			),
		),
		s.traced("spruthub_get_accessory", s.handleGetAccessory),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_list_rooms",
			mcp.WithDescription("List all rooms in the smart home. Use this to discover room IDs before room-wide control."),
		),
		s.traced("spruthub_list_rooms", s.handleListRooms),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_list_scenarios",
			mcp.WithDescription("List all automation scenarios with shallow data (id, name, enabled). Use this to discover scenario IDs before running them."),
		),
		s.traced("spruthub_list_scenarios", s.handleListScenarios),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_get_scenario",
			mcp.WithDescription("Get full details for a single scenario including triggers, conditions, and actions. Requires scenario ID from spruthub_list_scenarios."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Scenario ID (use spruthub_list_scenarios to find IDs)"),
			),
		),
		s.traced("spruthub_get_scenario", s.handleGetScenario),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_get_logs",
			mcp.WithDescription("Get recent system logs. Default 20 entries, max 100."),
			mcp.WithNumber("count",
				mcp.Description("Number of log entries to retrieve (default: 20, max: 100)"),
			),
		),
		s.traced("spruthub_get_logs", s.handleGetLogs),
	)

	// Control
	s.mcpServer.AddTool(
		mcp.NewToolWithRawSchema("spruthub_control_accessory",
			"Control a single smart home device by setting a characteristic value. Requires accessory ID from spruthub_list_accessories.",
			controlAccessorySchema,
		),
		s.traced("spruthub_control_accessory", s.handleControlAccessory),
	)

	s.mcpServer.AddTool(
		mcp.NewToolWithRawSchema("spruthub_control_room",
			"Control all devices in a room at once. Optionally filter by device type. Requires room ID from spruthub_list_rooms.",
			controlRoomSchema,
		),
		s.traced("spruthub_control_room", s.handleControlRoom),
	)

	s.mcpServer.AddTool(
		mcp.NewTool("spruthub_run_scenario",
			mcp.WithDescription("Execute an automation scenario. Requires scenario ID from spruthub_list_scenarios."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Scenario ID (use spruthub_list_scenarios to find IDs)"),
			),
		),
		s.traced("spruthub_run_scenario", s.handleRunScenario),
	)
}

// traced tags every invocation of a tool with a correlation id so a
// multi-call hub exchange can be tied back to one tool call in the logs.
func (s *Server) traced(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		log.Debug().Str("tool", name).Str("call_id", callID).Msg("tool call started")
		result, err := h(ctx, request)
		if err != nil {
			log.Error().Str("tool", name).Str("call_id", callID).Err(err).Msg("tool call failed")
		} else {
			log.Debug().Str("tool", name).Str("call_id", callID).Msg("tool call finished")
		}
		return result, err
	}
}
