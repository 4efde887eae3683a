package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceListValueScan(t *testing.T) {
	value := 75
	list := DeviceList{
		{ID: "lr-light", Name: "Main Light", Type: "light", State: "on", Value: &value, RoomID: "living-room"},
		{ID: "lr-ac", Name: "AC Unit", Type: "ac", State: "on", Value: &value, RoomID: "living-room"},
	}

	raw, err := list.Value()
	assert.NoError(t, err)

	var scanned DeviceList
	err = scanned.Scan(raw)
	assert.NoError(t, err)
	assert.Equal(t, list, scanned)
}

func TestDeviceListValueNil(t *testing.T) {
	var list DeviceList

	raw, err := list.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw.([]byte)))
}

func TestDeviceListScanVariants(t *testing.T) {
	{
		// sqlite may hand back TEXT columns as string
		var scanned DeviceList
		err := scanned.Scan(`[{"id":"br-light","name":"Bedroom Light","type":"light","state":"off","value":0,"room_id":"bedroom"}]`)
		assert.NoError(t, err)
		assert.Len(t, scanned, 1)
		assert.Equal(t, "br-light", scanned[0].ID)
	}

	{
		var scanned DeviceList
		err := scanned.Scan(nil)
		assert.NoError(t, err)
		assert.Empty(t, scanned)
	}

	{
		var scanned DeviceList
		err := scanned.Scan(42)
		assert.Error(t, err)
	}
}

func TestRoomJSONShape(t *testing.T) {
	value := 100
	room := Room{
		ID:          "kitchen",
		Name:        "Kitchen",
		Color:       "#10B981",
		Temperature: 18,
		Devices: DeviceList{
			{ID: "kt-light", Name: "Kitchen Light", Type: "light", State: "on", Value: &value, RoomID: "kitchen"},
		},
	}

	raw, err := json.Marshal(room)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "kitchen",
		"name": "Kitchen",
		"color": "#10B981",
		"temperature": 18,
		"devices": [
			{"id":"kt-light","name":"Kitchen Light","type":"light","state":"on","value":100,"room_id":"kitchen"}
		]
	}`, string(raw))
}

func TestSingletonJSONHidesRowID(t *testing.T) {
	security := SecuritySystem{RowID: 7, Armed: true, DoorLocked: true, MotionDetected: false, AlarmState: "armed_home"}
	raw, err := json.Marshal(security)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"armed":true,"doorLocked":true,"motionDetected":false,"alarmState":"armed_home"}`, string(raw))

	prefs := UserPreferences{RowID: 3, Theme: DefaultTheme}
	raw, err = json.Marshal(prefs)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(raw))
}
