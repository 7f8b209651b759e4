package spruthub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lightAndOutlet() Accessory {
	return Accessory{
		ID:   10,
		Name: "Combo Device",
		Services: []Service{
			{
				Type: "Outlet",
				Characteristics: []Characteristic{
					{AID: 10, SID: 1, CID: 2, Control: &Control{Type: "On"}},
				},
			},
			{
				Type: "Lightbulb",
				Characteristics: []Characteristic{
					{AID: 10, SID: 5, CID: 6, Control: &Control{Type: "On"}},
					{AID: 10, SID: 5, CID: 7, Control: &Control{Type: "Brightness"}},
				},
			},
		},
	}
}

func TestResolveCharacteristic_FirstMatchWins(t *testing.T) {
	res, err := ResolveCharacteristic(lightAndOutlet(), "On", "")
	require.NoError(t, err)

	// Both services expose "On"; service order breaks the tie.
	assert.Equal(t, "Outlet", res.Service.Type)
	assert.Equal(t, 1, res.Characteristic.SID)
	assert.Equal(t, 2, res.Characteristic.CID)
}

func TestResolveCharacteristic_ServiceTypeFilter(t *testing.T) {
	res, err := ResolveCharacteristic(lightAndOutlet(), "On", "Lightbulb")
	require.NoError(t, err)

	assert.Equal(t, "Lightbulb", res.Service.Type)
	assert.Equal(t, 5, res.Characteristic.SID)
	assert.Equal(t, 6, res.Characteristic.CID)
}

func TestResolveCharacteristic_FilterExcludesOtherServices(t *testing.T) {
	// Brightness only exists on the Lightbulb service; filtering to Outlet
	// must not find it even though the accessory has it.
	_, err := ResolveCharacteristic(lightAndOutlet(), "Brightness", "Outlet")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), `in service type "Outlet"`)
}

func TestResolveCharacteristic_ExactNameMatch(t *testing.T) {
	_, err := ResolveCharacteristic(lightAndOutlet(), "on", "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolveCharacteristic_ControlTypePreferred(t *testing.T) {
	acc := Accessory{
		ID: 3,
		Services: []Service{{
			Type: "Thermostat",
			Characteristics: []Characteristic{
				{AID: 3, SID: 1, CID: 1, Type: "TargetTemperature", Control: &Control{Type: "Target Temperature"}},
			},
		}},
	}

	res, err := ResolveCharacteristic(acc, "Target Temperature", "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Characteristic.CID)

	// The top-level type is shadowed once control.type is present
	_, err = ResolveCharacteristic(acc, "TargetTemperature", "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolveCharacteristic_TopLevelTypeFallback(t *testing.T) {
	acc := Accessory{
		ID: 4,
		Services: []Service{{
			Type: "TemperatureSensor",
			Characteristics: []Characteristic{
				{AID: 4, SID: 1, CID: 1, Type: "Current Temperature"},
			},
		}},
	}

	res, err := ResolveCharacteristic(acc, "Current Temperature", "")
	require.NoError(t, err)
	assert.Equal(t, "TemperatureSensor", res.Service.Type)
}

func TestResolveCharacteristic_ReadOnly(t *testing.T) {
	acc := Accessory{
		ID: 6,
		Services: []Service{{
			Type: "TemperatureSensor",
			Characteristics: []Characteristic{
				{AID: 6, SID: 1, CID: 1, Control: &Control{Type: "Current Temperature", Write: boolPtr(false)}},
			},
		}},
	}

	_, err := ResolveCharacteristic(acc, "Current Temperature", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.NotErrorIs(t, err, ErrNoMatch)
}

func TestResolveCharacteristic_MissingWriteFlagMeansWritable(t *testing.T) {
	acc := Accessory{
		ID: 7,
		Services: []Service{{
			Type: "Switch",
			Characteristics: []Characteristic{
				{AID: 7, SID: 1, CID: 1, Control: &Control{Type: "On"}},
			},
		}},
	}

	_, err := ResolveCharacteristic(acc, "On", "")
	assert.NoError(t, err)
}

func TestResolveCharacteristic_NoMatch(t *testing.T) {
	_, err := ResolveCharacteristic(lightAndOutlet(), "Hue", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), `"Hue"`)
	assert.Contains(t, err.Error(), "accessory 10")
}
