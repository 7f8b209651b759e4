package spruthub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	searchPage  = 1
	searchLimit = 100

	// DefaultLogCount is requested when the caller does not supply a count.
	DefaultLogCount = 20
	maxLogCount     = 100
	minLogCount     = 1
)

// Controller implements the hub operations behind the tool façades. It holds
// no state beyond the injected Caller; every operation sources records fresh
// from the hub.
type Controller struct {
	hub Caller
}

// NewController creates a Controller on top of the given hub capability.
func NewController(hub Caller) *Controller {
	return &Controller{hub: hub}
}

// searchAccessories fetches the accessory listing with the given expansion
// hint ("none" for shallow discovery, "characteristics" for full detail) and
// normalizes it to a JSON array.
func (c *Controller) searchAccessories(ctx context.Context, expand string) (json.RawMessage, error) {
	raw, err := c.hub.CallMethod(ctx, "accessory.search", map[string]any{
		"page":   searchPage,
		"limit":  searchLimit,
		"expand": expand,
	})
	if err != nil {
		return nil, fmt.Errorf("accessory.search failed: %w", err)
	}
	return unwrapList(raw, "accessories"), nil
}

// ListAccessories returns shallow projections of every accessory.
func (c *Controller) ListAccessories(ctx context.Context) ([]ShallowAccessory, error) {
	list, err := c.searchAccessories(ctx, "none")
	if err != nil {
		return nil, err
	}
	var full []Accessory
	if err := json.Unmarshal(list, &full); err != nil {
		return nil, fmt.Errorf("decode accessory listing: %w", err)
	}
	out := make([]ShallowAccessory, 0, len(full))
	for _, acc := range full {
		out = append(out, ProjectAccessory(acc))
	}
	log.Debug().Int("count", len(out)).Msg("listed accessories")
	return out, nil
}

// GetAccessory returns the full record for one accessory verbatim, including
// all services and characteristics.
func (c *Controller) GetAccessory(ctx context.Context, id int) (json.RawMessage, error) {
	list, err := c.searchAccessories(ctx, "characteristics")
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(list, &items); err != nil {
		return nil, fmt.Errorf("decode accessory listing: %w", err)
	}
	for _, item := range items {
		var probe struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(item, &probe); err != nil {
			continue
		}
		if probe.ID == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: accessory %d (use spruthub_list_accessories to discover valid ids)", ErrNotFound, id)
}

// fullAccessories returns the typed accessory listing with characteristics
// expanded, for resolution and control.
func (c *Controller) fullAccessories(ctx context.Context) ([]Accessory, error) {
	list, err := c.searchAccessories(ctx, "characteristics")
	if err != nil {
		return nil, err
	}
	var full []Accessory
	if err := json.Unmarshal(list, &full); err != nil {
		return nil, fmt.Errorf("decode accessory listing: %w", err)
	}
	return full, nil
}

// ListRooms returns all room records unprojected; they are already small.
func (c *Controller) ListRooms(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.hub.CallMethod(ctx, "room.list", map[string]any{
		"room": map[string]any{"list": map[string]any{}},
	})
	if err != nil {
		return nil, fmt.Errorf("room.list failed: %w", err)
	}
	return unwrapList(raw, "rooms"), nil
}

// ListScenarios returns shallow projections of every scenario.
func (c *Controller) ListScenarios(ctx context.Context) ([]ShallowScenario, error) {
	raw, err := c.hub.CallMethod(ctx, "scenario.list", map[string]any{
		"page":  searchPage,
		"limit": searchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("scenario.list failed: %w", err)
	}
	var full []Scenario
	if err := json.Unmarshal(unwrapList(raw, "scenarios"), &full); err != nil {
		return nil, fmt.Errorf("decode scenario listing: %w", err)
	}
	out := make([]ShallowScenario, 0, len(full))
	for _, s := range full {
		out = append(out, ProjectScenario(s))
	}
	return out, nil
}

// GetScenario returns the full record for one scenario, including triggers,
// conditions and actions, passed through verbatim.
func (c *Controller) GetScenario(ctx context.Context, id int) (json.RawMessage, error) {
	raw, err := c.hub.CallMethod(ctx, "scenario.get", map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("scenario.get failed: %w", err)
	}
	payload := unwrapData(raw)
	if isEmptyPayload(payload) {
		return nil, fmt.Errorf("%w: scenario %d (use spruthub_list_scenarios to discover valid ids)", ErrNotFound, id)
	}
	return payload, nil
}

// GetLogs returns recent log entries. Count is clamped to [1, 100]; callers
// pass DefaultLogCount when the agent supplied none.
func (c *Controller) GetLogs(ctx context.Context, count int) (json.RawMessage, error) {
	if count < minLogCount {
		count = minLogCount
	}
	if count > maxLogCount {
		count = maxLogCount
	}
	raw, err := c.hub.CallMethod(ctx, "log.list", map[string]any{"count": count})
	if err != nil {
		return nil, fmt.Errorf("log.list failed: %w", err)
	}
	return unwrapList(raw, "logs"), nil
}

// RunScenario executes a scenario by id.
func (c *Controller) RunScenario(ctx context.Context, id int) error {
	if _, err := c.hub.CallMethod(ctx, "scenario.run", map[string]any{
		"scenario": map[string]any{"run": map[string]any{"id": id}},
	}); err != nil {
		return fmt.Errorf("scenario.run failed: %w", err)
	}
	log.Debug().Int("scenario_id", id).Msg("scenario started")
	return nil
}

// CallRaw invokes an arbitrary hub method and returns its raw result. The
// generic call tool validates parameters against the method catalog before
// reaching here.
func (c *Controller) CallRaw(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}
	return c.hub.CallMethod(ctx, method, params)
}

func isEmptyPayload(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "{}", "[]":
		return true
	}
	return false
}
