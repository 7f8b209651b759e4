package types

import (
	"encoding/json"
	"time"

	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// --- Request DTOs ---

// ControlRequest is the request body for the control endpoints.
type ControlRequest struct {
	Characteristic string `json:"characteristic" binding:"required"`
	Value          any    `json:"value"`
	ServiceType    string `json:"serviceType"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Hub       string    `json:"hub"`
	Timestamp time.Time `json:"timestamp"`
}

// ListAccessoriesResponse is returned from GET /accessories
type ListAccessoriesResponse struct {
	Accessories []spruthub.ShallowAccessory `json:"accessories"`
	Count       int                         `json:"count"`
}

// AccessoryResponse is returned from GET /accessories/:id
type AccessoryResponse struct {
	Accessory json.RawMessage `json:"accessory"`
}

// ListRoomsResponse is returned from GET /rooms
type ListRoomsResponse struct {
	Rooms json.RawMessage `json:"rooms"`
}

// ListScenariosResponse is returned from GET /scenarios
type ListScenariosResponse struct {
	Scenarios []spruthub.ShallowScenario `json:"scenarios"`
	Count     int                        `json:"count"`
}

// ScenarioResponse is returned from GET /scenarios/:id
type ScenarioResponse struct {
	Scenario json.RawMessage `json:"scenario"`
}

// LogsResponse is returned from GET /logs
type LogsResponse struct {
	Logs json.RawMessage `json:"logs"`
}

// RunScenarioResponse is returned from POST /scenarios/:id/run
type RunScenarioResponse struct {
	Success    bool `json:"success"`
	ScenarioID int  `json:"scenarioId"`
}
