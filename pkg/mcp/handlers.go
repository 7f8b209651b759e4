package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

func (s *Server) handleListMethods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := optionalString(request, "category")

	methods := s.catalog.Methods()
	if category != "" {
		methods = s.catalog.ByCategory(category)
		if len(methods) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf(
				"unknown category: %s. Available categories: %s",
				category, strings.Join(s.catalog.Categories(), ", "))), nil
		}
	}

	summaries := make([]MethodSummary, 0, len(methods))
	for _, m := range methods {
		summaries = append(summaries, MethodSummary{
			Name:        m.Name,
			Category:    m.Category,
			Description: m.Description,
		})
	}

	appliedCategory := category
	if appliedCategory == "" {
		appliedCategory = "all"
	}

	out := ListMethodsOutput{
		Methods:             summaries,
		TotalCount:          len(summaries),
		Category:            appliedCategory,
		AvailableCategories: s.catalog.Categories(),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetMethodSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "methodName", "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	method, ok := s.catalog.Lookup(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"method %q not found. Available methods: %s", name, s.catalog.NamesPreview(10))), nil
	}

	out := GetMethodSchemaOutput{Method: *method}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleCallMethod(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "methodName", "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := map[string]any{}
	if raw, ok := request.GetArguments()["parameters"]; ok && raw != nil {
		pm, ok := raw.(map[string]any)
		if !ok {
			return mcp.NewToolResultError("parameters must be an object"), nil
		}
		params = pm
	}

	// Validate against the catalog before any hub traffic
	if err := s.catalog.ValidateParams(name, params); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := controller.CallRaw(ctx, name, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("method %s failed: %s", name, err)), nil
	}

	out := CallMethodOutput{MethodName: name, Parameters: params, Result: result}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListAccessories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	accessories, err := controller.ListAccessories(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list accessories: %s", err)), nil
	}

	out := ListAccessoriesOutput{Accessories: accessories, Count: len(accessories)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetAccessory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id", "Use spruthub_list_accessories to find accessory IDs.")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	accessory, err := controller.GetAccessory(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := GetAccessoryOutput{Accessory: accessory}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rooms, err := controller.ListRooms(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list rooms: %s", err)), nil
	}

	out := ListRoomsOutput{Rooms: rooms, Count: countItems(rooms)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scenarios, err := controller.ListScenarios(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list scenarios: %s", err)), nil
	}

	out := ListScenariosOutput{Scenarios: scenarios, Count: len(scenarios)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id", "Use spruthub_list_scenarios to find scenario IDs.")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scenario, err := controller.GetScenario(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := GetScenarioOutput{Scenario: scenario}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetLogs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := spruthub.DefaultLogCount
	if v, ok := request.GetArguments()["count"]; ok && v != nil {
		n, err := toInt(v)
		if err != nil {
			return mcp.NewToolResultError("count must be a number"), nil
		}
		count = n
	}

	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	logs, err := controller.GetLogs(ctx, count)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get logs: %s", err)), nil
	}

	out := GetLogsOutput{Logs: logs, Count: countItems(logs)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleControlAccessory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id", "Use spruthub_list_accessories to find accessory IDs.")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	characteristic, err := requiredString(request, "characteristic", `For example "On", "Brightness", "TargetTemperature".`)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := requiredValue(request, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	serviceType := optionalString(request, "serviceType")

	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := controller.ControlAccessory(ctx, id, characteristic, value, serviceType)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatJSON(result)), nil
}

func (s *Server) handleControlRoom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roomID, err := requiredInt(request, "roomId", "Use spruthub_list_rooms to find room IDs.")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	characteristic, err := requiredString(request, "characteristic", `For example "On", "Brightness".`)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := requiredValue(request, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	serviceType := optionalString(request, "serviceType")

	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := controller.ControlRoom(ctx, roomID, characteristic, value, serviceType)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatJSON(result)), nil
}

func (s *Server) handleRunScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id", "Use spruthub_list_scenarios to find scenario IDs.")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	controller, err := s.connect(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := controller.RunScenario(ctx, id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := RunScenarioOutput{Success: true, ScenarioID: id}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key, hint string) (string, error) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return "", missingParam(key, hint)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func requiredInt(request mcp.CallToolRequest, key, hint string) (int, error) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return 0, missingParam(key, hint)
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	return n, nil
}

// requiredValue accepts any non-nil value, including false and 0.
func requiredValue(request mcp.CallToolRequest, key string) (any, error) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return nil, missingParam(key, "")
	}
	return v, nil
}

func optionalString(request mcp.CallToolRequest, key string) string {
	if v, ok := request.GetArguments()[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func missingParam(key, hint string) error {
	msg := fmt.Sprintf("%s parameter is required.", key)
	if hint != "" {
		msg += " " + hint
	}
	return fmt.Errorf("%s", msg)
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func countItems(list json.RawMessage) int {
	var items []json.RawMessage
	if err := json.Unmarshal(list, &items); err != nil {
		return 0
	}
	return len(items)
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
