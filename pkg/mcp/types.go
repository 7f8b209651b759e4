package mcp

import (
	"encoding/json"

	"github.com/Pillumz/spruthub-mcp-server/pkg/catalog"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// --- Method Catalog Tools ---

// MethodSummary is one entry in the list_methods output.
type MethodSummary struct {
	Name        string `json:"name" jsonschema:"description=Method name"`
	Category    string `json:"category" jsonschema:"description=Method category"`
	Description string `json:"description" jsonschema:"description=What the method does"`
}

// ListMethodsOutput is the output for the spruthub_list_methods tool.
type ListMethodsOutput struct {
	Methods             []MethodSummary `json:"methods" jsonschema:"description=Available JSON-RPC methods"`
	TotalCount          int             `json:"totalCount" jsonschema:"description=Number of methods listed"`
	Category            string          `json:"category" jsonschema:"description=Category filter applied, or 'all'"`
	AvailableCategories []string        `json:"availableCategories" jsonschema:"description=All known categories"`
}

// GetMethodSchemaOutput is the output for the spruthub_get_method_schema tool.
type GetMethodSchemaOutput struct {
	Method catalog.Method `json:"method" jsonschema:"description=Full catalog entry for the method"`
}

// CallMethodOutput is the output for the spruthub_call_method tool.
type CallMethodOutput struct {
	MethodName string          `json:"methodName" jsonschema:"description=Method that was called"`
	Parameters map[string]any  `json:"parameters" jsonschema:"description=Parameters sent"`
	Result     json.RawMessage `json:"result" jsonschema:"description=Raw method result"`
}

// --- Discovery Tools ---

// ListAccessoriesOutput is the output for the spruthub_list_accessories tool.
type ListAccessoriesOutput struct {
	Accessories []spruthub.ShallowAccessory `json:"accessories" jsonschema:"description=Shallow accessory projections"`
	Count       int                         `json:"count" jsonschema:"description=Total number of accessories"`
}

// GetAccessoryOutput is the output for the spruthub_get_accessory tool.
type GetAccessoryOutput struct {
	Accessory json.RawMessage `json:"accessory" jsonschema:"description=Full accessory record with services and characteristics"`
}

// ListRoomsOutput is the output for the spruthub_list_rooms tool.
type ListRoomsOutput struct {
	Rooms json.RawMessage `json:"rooms" jsonschema:"description=Room records as returned by the hub"`
	Count int             `json:"count" jsonschema:"description=Total number of rooms"`
}

// ListScenariosOutput is the output for the spruthub_list_scenarios tool.
type ListScenariosOutput struct {
	Scenarios []spruthub.ShallowScenario `json:"scenarios" jsonschema:"description=Shallow scenario projections"`
	Count     int                        `json:"count" jsonschema:"description=Total number of scenarios"`
}

// GetScenarioOutput is the output for the spruthub_get_scenario tool.
type GetScenarioOutput struct {
	Scenario json.RawMessage `json:"scenario" jsonschema:"description=Full scenario record with triggers and actions"`
}

// GetLogsOutput is the output for the spruthub_get_logs tool.
type GetLogsOutput struct {
	Logs  json.RawMessage `json:"logs" jsonschema:"description=Log entries as returned by the hub"`
	Count int             `json:"count" jsonschema:"description=Number of entries returned"`
}

// --- Control Tools ---

// Control tool outputs are spruthub.ControlResult and
// spruthub.RoomControlResult, marshaled directly.

// RunScenarioOutput is the output for the spruthub_run_scenario tool.
type RunScenarioOutput struct {
	Success    bool `json:"success" jsonschema:"description=Whether the scenario was started"`
	ScenarioID int  `json:"scenarioId" jsonschema:"description=Scenario that was run"`
}
