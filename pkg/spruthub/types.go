package spruthub

import "encoding/json"

// Accessory is a controllable device as modeled by the hub. Records are
// fetched fresh per request and never cached or mutated locally.
type Accessory struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Room         *RoomRef  `json:"room,omitempty"`
	Online       *bool     `json:"online,omitempty"` // absent means online
	Manufacturer string    `json:"manufacturer,omitempty"`
	Services     []Service `json:"services,omitempty"`
}

// RoomRef is the room reference embedded in an accessory record.
type RoomRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Service is a typed capability group within an accessory
// (e.g. "Lightbulb", "Switch", "Thermostat").
type Service struct {
	Type            string           `json:"type"`
	Characteristics []Characteristic `json:"characteristics,omitempty"`
}

// Characteristic is a single property within a service. The (aId, sId, cId)
// triple is the unique address the hub's write API requires.
type Characteristic struct {
	AID     int      `json:"aId"`
	SID     int      `json:"sId"`
	CID     int      `json:"cId"`
	Type    string   `json:"type,omitempty"`
	Control *Control `json:"control,omitempty"`
}

// Control carries the human-facing characteristic name and write permission.
type Control struct {
	Type  string          `json:"type,omitempty"`
	Write *bool           `json:"write,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ControlType returns the human-facing characteristic name, preferring the
// nested control.type field and falling back to the top-level type.
func (c Characteristic) ControlType() string {
	if c.Control != nil && c.Control.Type != "" {
		return c.Control.Type
	}
	return c.Type
}

// Writable reports whether the characteristic accepts writes. A missing
// write flag means writable; only an explicit false marks read-only.
func (c Characteristic) Writable() bool {
	return c.Control == nil || c.Control.Write == nil || *c.Control.Write
}

// Room is a hub room. Room records are small and pass through unprojected.
type Room struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Scenario is a stored automation. Triggers, conditions and actions only
// appear in full-detail form and are passed through verbatim.
type Scenario struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Enabled     *bool   `json:"enabled,omitempty"` // absent means enabled
	Description *string `json:"description,omitempty"`
}

// ShallowAccessory is the reduced-field accessory view returned by list-type
// discovery tools. It never includes nested services or characteristics.
type ShallowAccessory struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Room         *string  `json:"room"`
	RoomID       *int     `json:"roomId"`
	Online       bool     `json:"online"`
	Manufacturer *string  `json:"manufacturer"`
	ServiceTypes []string `json:"serviceTypes"`
}

// ShallowScenario is the reduced-field scenario view for discovery listings.
type ShallowScenario struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Enabled     bool    `json:"enabled"`
	Description *string `json:"description"`
}
