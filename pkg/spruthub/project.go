package spruthub

// ProjectAccessory maps a full accessory record down to the fixed field set
// used by discovery listings. Dropping services and characteristics here is
// a response-size contract, not an optimization.
func ProjectAccessory(acc Accessory) ShallowAccessory {
	out := ShallowAccessory{
		ID:           acc.ID,
		Name:         acc.Name,
		Online:       acc.Online == nil || *acc.Online,
		ServiceTypes: make([]string, 0, len(acc.Services)),
	}
	if acc.Room != nil {
		name := acc.Room.Name
		id := acc.Room.ID
		out.Room = &name
		out.RoomID = &id
	}
	if acc.Manufacturer != "" {
		m := acc.Manufacturer
		out.Manufacturer = &m
	}
	for _, svc := range acc.Services {
		if svc.Type != "" {
			out.ServiceTypes = append(out.ServiceTypes, svc.Type)
		}
	}
	return out
}

// ProjectScenario maps a full scenario record down to its discovery view.
// Enabled defaults to true when the source omits the field.
func ProjectScenario(s Scenario) ShallowScenario {
	return ShallowScenario{
		ID:          s.ID,
		Name:        s.Name,
		Enabled:     s.Enabled == nil || *s.Enabled,
		Description: s.Description,
	}
}
