package spruthub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomFixture = `{
	"data": {"accessories": [
		{"id": 10, "name": "Ceiling Light", "room": {"id": 3, "name": "Kitchen"},
		 "services": [{"type": "Lightbulb", "characteristics": [
			{"aId": 10, "sId": 13, "cId": 15, "control": {"type": "On", "write": true}},
			{"aId": 10, "sId": 13, "cId": 16, "control": {"type": "Brightness", "write": true}}
		 ]}]},
		{"id": 11, "name": "Kettle", "room": {"id": 3, "name": "Kitchen"},
		 "services": [{"type": "Outlet", "characteristics": [
			{"aId": 11, "sId": 20, "cId": 21, "control": {"type": "On", "write": true}}
		 ]}]},
		{"id": 12, "name": "Thermometer", "room": {"id": 3, "name": "Kitchen"},
		 "services": [{"type": "TemperatureSensor", "characteristics": [
			{"aId": 12, "sId": 30, "cId": 31, "control": {"type": "Current Temperature", "write": false}}
		 ]}]},
		{"id": 20, "name": "Hall Light", "room": {"id": 4, "name": "Hallway"},
		 "services": [{"type": "Lightbulb", "characteristics": [
			{"aId": 20, "sId": 40, "cId": 41, "control": {"type": "On", "write": true}}
		 ]}]}
	]}
}`

// controlHub serves the room fixture for searches and scripts update outcomes
// per accessory id.
func controlHub(failAID map[int]error) *fakeHub {
	hub := &fakeHub{}
	hub.respond = func(method string, params any) (json.RawMessage, error) {
		switch method {
		case "accessory.search":
			return json.RawMessage(roomFixture), nil
		case "characteristic.update":
			if err := failAID[updateAID(params)]; err != nil {
				return nil, err
			}
			return json.RawMessage(`{"isSuccess":true}`), nil
		default:
			return nil, errors.New("unexpected method " + method)
		}
	}
	return hub
}

// updateAID digs the aId out of a characteristic.update params payload.
func updateAID(params any) int {
	b, _ := json.Marshal(params)
	var p struct {
		Characteristic struct {
			Update struct {
				AID int `json:"aId"`
			} `json:"update"`
		} `json:"characteristic"`
	}
	_ = json.Unmarshal(b, &p)
	return p.Characteristic.Update.AID
}

func updateCalls(hub *fakeHub) []hubCall {
	var out []hubCall
	for _, call := range hub.calls {
		if call.method == "characteristic.update" {
			out = append(out, call)
		}
	}
	return out
}

func TestControlAccessory(t *testing.T) {
	hub := controlHub(nil)
	c := NewController(hub)

	res, err := c.ControlAccessory(context.Background(), 10, "On", true, "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 10, res.AccessoryID)
	assert.Equal(t, "Ceiling Light", res.AccessoryName)
	assert.Equal(t, "Lightbulb", res.Service)
	assert.Equal(t, "On", res.Characteristic)
	assert.Equal(t, true, res.Value)

	updates := updateCalls(hub)
	require.Len(t, updates, 1)

	b, err := json.Marshal(updates[0].params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"characteristic":{"update":{
		"aId":10,"sId":13,"cId":15,"control":{"value":{"boolValue":true}}
	}}}`, string(b))
}

func TestControlAccessory_EchoesWirePayload(t *testing.T) {
	hub := controlHub(nil)
	c := NewController(hub)

	res, err := c.ControlAccessory(context.Background(), 10, "Brightness", "75", "")
	require.NoError(t, err)

	b, err := json.Marshal(res.Payload)
	require.NoError(t, err)
	// "75" infers to an integer on the wire
	assert.Contains(t, string(b), `"intValue":75`)
	assert.Equal(t, "75", res.Value)
}

func TestControlAccessory_NotFound(t *testing.T) {
	c := NewController(controlHub(nil))

	_, err := c.ControlAccessory(context.Background(), 999, "On", true, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestControlAccessory_NoMatchHint(t *testing.T) {
	hub := controlHub(nil)
	c := NewController(hub)

	_, err := c.ControlAccessory(context.Background(), 10, "Hue", true, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), "spruthub_get_accessory")
	assert.Empty(t, updateCalls(hub))
}

func TestControlAccessory_ReadOnly(t *testing.T) {
	hub := controlHub(nil)
	c := NewController(hub)

	_, err := c.ControlAccessory(context.Background(), 12, "Current Temperature", 25, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.Empty(t, updateCalls(hub))
}

func TestControlRoom_AllEligible(t *testing.T) {
	hub := controlHub(nil)
	c := NewController(hub)

	res, err := c.ControlRoom(context.Background(), 3, "On", false, "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 3, res.RoomID)
	assert.Equal(t, 2, res.AffectedCount)
	require.Len(t, res.Affected, 2)

	// Discovery order is preserved in the result
	assert.Equal(t, 10, res.Affected[0].ID)
	assert.Equal(t, 11, res.Affected[1].ID)

	// The thermometer has no writable "On" and lands in skipped
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 12, res.Skipped[0].ID)
	assert.NotEmpty(t, res.Skipped[0].Reason)

	// The hallway light belongs to another room and appears nowhere
	for _, a := range res.Affected {
		assert.NotEqual(t, 20, a.ID)
	}
}

func TestControlRoom_ServiceTypeFilter(t *testing.T) {
	hub := controlHub(nil)
	c := NewController(hub)

	res, err := c.ControlRoom(context.Background(), 3, "On", true, "Lightbulb")
	require.NoError(t, err)

	require.Len(t, res.Affected, 1)
	assert.Equal(t, 10, res.Affected[0].ID)
	assert.Equal(t, "Lightbulb", res.Affected[0].Service)

	// The outlet was filtered out before any write; only one update went out.
	updates := updateCalls(hub)
	require.Len(t, updates, 1)
	assert.Equal(t, 10, updateAID(updates[0].params))

	// Filtered-out accessories are reported as skipped, not silently dropped
	skippedIDs := make([]int, 0, len(res.Skipped))
	for _, s := range res.Skipped {
		skippedIDs = append(skippedIDs, s.ID)
	}
	assert.Contains(t, skippedIDs, 11)
}

func TestControlRoom_PartialFailure(t *testing.T) {
	hub := controlHub(map[int]error{11: errors.New("hub error: device offline")})
	c := NewController(hub)

	res, err := c.ControlRoom(context.Background(), 3, "On", true, "")
	require.NoError(t, err)

	// Batch completion counts as success even with individual failures
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.AffectedCount)
	require.Len(t, res.Affected, 1)
	assert.Equal(t, 10, res.Affected[0].ID)

	require.Len(t, res.Failed, 1)
	assert.Equal(t, 11, res.Failed[0].ID)
	assert.Contains(t, res.Failed[0].Error, "device offline")
}

func TestControlRoom_EmptyRoom(t *testing.T) {
	c := NewController(controlHub(nil))

	_, err := c.ControlRoom(context.Background(), 99, "On", true, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "spruthub_list_rooms")
}

func TestRoomControlResult_OmitsEmptyBuckets(t *testing.T) {
	c := NewController(controlHub(nil))

	res, err := c.ControlRoom(context.Background(), 3, "On", true, "Lightbulb")
	require.NoError(t, err)

	// Force the skipped bucket empty to check serialization of the happy path
	res.Skipped = nil

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"skipped"`)
	assert.NotContains(t, string(b), `"failed"`)
	assert.Contains(t, string(b), `"affected"`)
}
