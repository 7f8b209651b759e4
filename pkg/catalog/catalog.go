// Package catalog describes the Sprut.hub JSON-RPC API surface: which
// methods exist, what they do and what parameters they take. The generic
// call tool validates against it before touching the wire, so an agent
// learns about a bad call without a network round trip.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Method is one catalog entry. Params documents the parameter structure for
// an agent; Schema, when present, is a JSON Schema the parameters must pass.
type Method struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Params      map[string]any  `json:"params,omitempty"`
	Schema      json.RawMessage `json:"schema,omitempty"`
}

// Catalog is the static method registry plus a parameter validator.
type Catalog struct {
	methods   []Method
	byName    map[string]*Method
	validator *Validator
}

// New builds the catalog of known hub methods.
func New() *Catalog {
	c := &Catalog{
		methods:   knownMethods(),
		byName:    make(map[string]*Method),
		validator: NewValidator(),
	}
	for i := range c.methods {
		c.byName[c.methods[i].Name] = &c.methods[i]
	}
	return c
}

// Methods returns all catalog entries in registration order.
func (c *Catalog) Methods() []Method {
	return c.methods
}

// Categories returns the sorted set of method categories.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	for _, m := range c.methods {
		seen[m.Category] = true
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// ByCategory returns all methods in one category, in registration order.
func (c *Catalog) ByCategory(category string) []Method {
	var out []Method
	for _, m := range c.methods {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Lookup finds a method by name.
func (c *Catalog) Lookup(name string) (*Method, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// ValidateParams checks params against the method's JSON Schema, when one is
// declared. Unknown methods error with a preview of available names.
func (c *Catalog) ValidateParams(name string, params map[string]any) error {
	m, ok := c.Lookup(name)
	if !ok {
		return fmt.Errorf("method %q not found. Available methods: %s", name, c.NamesPreview(10))
	}
	if params == nil {
		params = map[string]any{}
	}
	if err := c.validator.Validate(m.Schema, params); err != nil {
		return fmt.Errorf("parameters for %q are invalid: %w", name, err)
	}
	return nil
}

// NamesPreview returns up to max method names joined by commas, with "..."
// appended when more exist.
func (c *Catalog) NamesPreview(max int) string {
	names := make([]string, 0, max)
	for i, m := range c.methods {
		if i >= max {
			break
		}
		names = append(names, m.Name)
	}
	preview := strings.Join(names, ", ")
	if len(c.methods) > max {
		preview += "..."
	}
	return preview
}

func knownMethods() []Method {
	return []Method{
		{
			Name:        "accessory.search",
			Category:    "accessory",
			Description: "Search for accessories with filtering and pagination",
			Params: map[string]any{
				"page":   "Page number (default: 1)",
				"limit":  "Results per page (default: 100)",
				"expand": "Expansion level: 'none', 'services', 'characteristics' (default: 'none')",
			},
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"page": {"type": "integer", "minimum": 1},
					"limit": {"type": "integer", "minimum": 1},
					"expand": {"type": "string", "enum": ["none", "services", "characteristics"]}
				}
			}`),
		},
		{
			Name:        "accessory.get",
			Category:    "accessory",
			Description: "Get full details for a specific accessory",
			Params: map[string]any{
				"id": "Accessory ID (required)",
			},
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {"id": {"type": "integer"}},
				"required": ["id"]
			}`),
		},
		{
			Name:        "characteristic.update",
			Category:    "accessory",
			Description: "Update a characteristic value, addressed by its (aId, sId, cId) triple",
			Params: map[string]any{
				"characteristic": map[string]any{
					"update": map[string]any{
						"aId":     "Accessory ID",
						"sId":     "Service ID",
						"cId":     "Characteristic ID",
						"control": map[string]any{"value": "Value wrapper (boolValue, intValue, floatValue, or stringValue)"},
					},
				},
			},
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"characteristic": {
						"type": "object",
						"properties": {
							"update": {
								"type": "object",
								"properties": {
									"aId": {"type": "integer"},
									"sId": {"type": "integer"},
									"cId": {"type": "integer"},
									"control": {"type": "object"}
								},
								"required": ["aId", "sId", "cId", "control"]
							}
						},
						"required": ["update"]
					}
				},
				"required": ["characteristic"]
			}`),
		},
		{
			Name:        "room.list",
			Category:    "room",
			Description: "List all rooms",
			Params: map[string]any{
				"room": map[string]any{"list": map[string]any{}},
			},
		},
		{
			Name:        "scenario.list",
			Category:    "scenario",
			Description: "List scenarios with pagination",
			Params: map[string]any{
				"page":  "Page number (default: 1)",
				"limit": "Results per page (default: 100)",
			},
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"page": {"type": "integer", "minimum": 1},
					"limit": {"type": "integer", "minimum": 1}
				}
			}`),
		},
		{
			Name:        "scenario.get",
			Category:    "scenario",
			Description: "Get full details for a specific scenario",
			Params: map[string]any{
				"id": "Scenario ID (required)",
			},
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {"id": {"type": "integer"}},
				"required": ["id"]
			}`),
		},
		{
			Name:        "scenario.run",
			Category:    "scenario",
			Description: "Execute a scenario",
			Params: map[string]any{
				"scenario": map[string]any{"run": map[string]any{"id": "Scenario ID"}},
			},
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"scenario": {
						"type": "object",
						"properties": {
							"run": {
								"type": "object",
								"properties": {"id": {"type": "integer"}},
								"required": ["id"]
							}
						},
						"required": ["run"]
					}
				},
				"required": ["scenario"]
			}`),
		},
		{
			Name:        "log.list",
			Category:    "system",
			Description: "Get system logs",
			Params: map[string]any{
				"count": "Number of log entries (default: 20, max: 100)",
			},
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {"count": {"type": "integer", "minimum": 1, "maximum": 100}}
			}`),
		},
		{
			Name:        "auth",
			Category:    "system",
			Description: "Authenticate with the Sprut.hub server",
			Params: map[string]any{
				"email":    "User email",
				"password": "User password",
				"serial":   "Device serial number",
			},
		},
	}
}
