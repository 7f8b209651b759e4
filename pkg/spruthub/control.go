package spruthub

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ControlResult confirms a single-accessory write. It echoes the original
// value for readability and the wire payload for traceability.
type ControlResult struct {
	Success        bool           `json:"success"`
	AccessoryID    int            `json:"accessoryId"`
	AccessoryName  string         `json:"accessoryName"`
	Service        string         `json:"service"`
	Characteristic string         `json:"characteristic"`
	Value          any            `json:"value"`
	Payload        map[string]any `json:"payload"`
}

// RoomControlResult aggregates per-accessory outcomes of a room-wide write.
// Success reports that the batch ran to completion, not that every accessory
// was affected. Empty skipped/failed lists are omitted to keep responses
// compact.
type RoomControlResult struct {
	Success        bool                `json:"success"`
	RoomID         int                 `json:"roomId"`
	Characteristic string              `json:"characteristic"`
	Value          any                 `json:"value"`
	Affected       []AffectedAccessory `json:"affected"`
	AffectedCount  int                 `json:"affectedCount"`
	Skipped        []SkippedAccessory  `json:"skipped,omitempty"`
	Failed         []FailedAccessory   `json:"failed,omitempty"`
}

// AffectedAccessory is a device whose characteristic was written.
type AffectedAccessory struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Service string `json:"service"`
}

// SkippedAccessory is a device that never received a write: the
// characteristic was absent or read-only.
type SkippedAccessory struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// FailedAccessory is a device whose write call itself failed.
type FailedAccessory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// updateParams builds the characteristic.update payload for a resolved
// characteristic and an encoded value.
func updateParams(ch Characteristic, value TaggedValue) map[string]any {
	return map[string]any{
		"characteristic": map[string]any{
			"update": map[string]any{
				"aId":     ch.AID,
				"sId":     ch.SID,
				"cId":     ch.CID,
				"control": map[string]any{"value": value},
			},
		},
	}
}

// ControlAccessory sets one characteristic on one accessory. The (aId, sId,
// cId) triple is re-resolved from a fresh listing on every call; device
// characteristic sets can change between discovery and control.
func (c *Controller) ControlAccessory(ctx context.Context, id int, characteristic string, value any, serviceType string) (*ControlResult, error) {
	accessories, err := c.fullAccessories(ctx)
	if err != nil {
		return nil, err
	}

	var target *Accessory
	for i := range accessories {
		if accessories[i].ID == id {
			target = &accessories[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: accessory %d (use spruthub_list_accessories to discover valid ids)", ErrNotFound, id)
	}

	res, err := ResolveCharacteristic(*target, characteristic, serviceType)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return nil, fmt.Errorf("%w (use spruthub_get_accessory to see available characteristics)", err)
		}
		return nil, err
	}

	params := updateParams(res.Characteristic, EncodeValue(value))
	log.Debug().
		Int("accessory_id", id).
		Str("characteristic", characteristic).
		Msg("sending characteristic.update")

	if _, err := c.hub.CallMethod(ctx, "characteristic.update", params); err != nil {
		return nil, fmt.Errorf("characteristic.update failed: %w", err)
	}

	return &ControlResult{
		Success:        true,
		AccessoryID:    target.ID,
		AccessoryName:  target.Name,
		Service:        res.Service.Type,
		Characteristic: characteristic,
		Value:          value,
		Payload:        params,
	}, nil
}

// ControlRoom sets one characteristic on every eligible accessory in a room,
// sequentially and in discovery order. Each accessory independently resolves
// to affected, skipped (absent or read-only characteristic) or failed (the
// write call itself errored); one device's failure never aborts the rest.
func (c *Controller) ControlRoom(ctx context.Context, roomID int, characteristic string, value any, serviceType string) (*RoomControlResult, error) {
	accessories, err := c.fullAccessories(ctx)
	if err != nil {
		return nil, err
	}

	var members []Accessory
	for _, acc := range accessories {
		if acc.Room != nil && acc.Room.ID == roomID {
			members = append(members, acc)
		}
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no accessories in room %d (use spruthub_list_rooms to discover valid ids)", ErrNotFound, roomID)
	}

	result := &RoomControlResult{
		Success:        true,
		RoomID:         roomID,
		Characteristic: characteristic,
		Value:          value,
		Affected:       []AffectedAccessory{},
	}
	encoded := EncodeValue(value)

	for _, acc := range members {
		res, err := ResolveCharacteristic(acc, characteristic, serviceType)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedAccessory{
				ID:     acc.ID,
				Name:   acc.Name,
				Reason: err.Error(),
			})
			continue
		}

		if _, err := c.hub.CallMethod(ctx, "characteristic.update", updateParams(res.Characteristic, encoded)); err != nil {
			log.Warn().Err(err).Int("accessory_id", acc.ID).Msg("room control write failed")
			result.Failed = append(result.Failed, FailedAccessory{
				ID:    acc.ID,
				Name:  acc.Name,
				Error: err.Error(),
			})
			continue
		}

		result.Affected = append(result.Affected, AffectedAccessory{
			ID:      acc.ID,
			Name:    acc.Name,
			Service: res.Service.Type,
		})
	}

	result.AffectedCount = len(result.Affected)
	return result, nil
}
