package home

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

func TestReplaceRoomRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	roomID := uuid.NewString()
	input := models.Room{
		Name:        "Office",
		Color:       "#334155",
		Temperature: 23,
		Devices: models.DeviceList{
			{ID: uuid.NewString(), Name: "Desk Lamp", Type: "light", State: "on", Value: common.Ptr(60)},
			{ID: uuid.NewString(), Name: "Blinds", Type: "curtain", State: "open", Value: common.Ptr(100)},
		},
	}

	written, err := h.Room.ReplaceRoom(roomID, &input)
	require.NoError(t, err)
	assert.Equal(t, roomID, written.ID)

	rooms, err := h.Room.ListRooms()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, *written, rooms[0])
	assert.Equal(t, "Office", rooms[0].Name)
	require.Len(t, rooms[0].Devices, 2)
}

func TestReplaceRoomForcesDeviceRoomID(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	roomID := uuid.NewString()
	input := models.Room{
		Name:        "Office",
		Color:       "#334155",
		Temperature: 23,
		Devices: models.DeviceList{
			// claims a different owner, must be corrected on write
			{ID: uuid.NewString(), Name: "Desk Lamp", Type: "light", State: "on", RoomID: "somewhere-else"},
		},
	}

	written, err := h.Room.ReplaceRoom(roomID, &input)
	require.NoError(t, err)
	require.Len(t, written.Devices, 1)
	assert.Equal(t, roomID, written.Devices[0].RoomID)
}

func TestReplaceRoomOverwritesEverything(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	roomID := uuid.NewString()
	deviceID := uuid.NewString()

	_, err := h.Room.ReplaceRoom(roomID, &models.Room{
		Name:        "Den",
		Color:       "#111827",
		Temperature: 20,
		Devices: models.DeviceList{
			{ID: deviceID, Name: "Floor Lamp", Type: "light", State: "on", Value: common.Ptr(80)},
		},
	})
	require.NoError(t, err)

	// replacing without the device drops it: no merge semantics on rooms
	_, err = h.Room.ReplaceRoom(roomID, &models.Room{
		Name:        "Den",
		Color:       "#111827",
		Temperature: 21,
		Devices:     models.DeviceList{},
	})
	require.NoError(t, err)

	rooms, err := h.Room.ListRooms()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 21, rooms[0].Temperature)
	assert.Empty(t, rooms[0].Devices)

	_, err = h.Device.GetDevice(deviceID)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestListRoomsKeepsInsertionOrder(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)
	require.NoError(t, h.Seed())

	rooms, err := h.Room.ListRooms()
	require.NoError(t, err)
	require.Len(t, rooms, 5)
	assert.Equal(t, "living-room", rooms[0].ID)
	assert.Equal(t, "guest-room", rooms[4].ID)
}
