package spruthub

import "fmt"

// Resolution is the outcome of locating a characteristic on an accessory:
// the exact (aId, sId, cId) address plus the service it belongs to.
type Resolution struct {
	Characteristic Characteristic
	Service        Service
}

// ResolveCharacteristic locates the characteristic with the given
// human-facing name on the accessory. Services are searched in their given
// order; when serviceType is non-empty, non-matching services are skipped
// entirely. The first match under (service order, characteristic order)
// wins. A match with an explicit write=false flag yields ErrReadOnly;
// no match at all yields ErrNoMatch.
func ResolveCharacteristic(acc Accessory, name, serviceType string) (*Resolution, error) {
	for _, svc := range acc.Services {
		if serviceType != "" && svc.Type != serviceType {
			continue
		}
		for _, ch := range svc.Characteristics {
			if ch.ControlType() != name {
				continue
			}
			if !ch.Writable() {
				return nil, fmt.Errorf("%w: %q on accessory %d", ErrReadOnly, name, acc.ID)
			}
			return &Resolution{Characteristic: ch, Service: svc}, nil
		}
	}
	scope := ""
	if serviceType != "" {
		scope = fmt.Sprintf(" in service type %q", serviceType)
	}
	return nil, fmt.Errorf("%w: %q on accessory %d%s", ErrNoMatch, name, acc.ID, scope)
}
