package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

func TestSeedEmptyStore(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	require.NoError(t, h.Seed())

	rooms, err := h.Room.ListRooms()
	require.NoError(t, err)
	require.Len(t, rooms, 5)

	roomIDs := map[string]bool{}
	for _, room := range rooms {
		assert.Len(t, room.Devices, 3, "room %s should have 3 devices", room.ID)
		roomIDs[room.ID] = true
		for _, device := range room.Devices {
			assert.Equal(t, room.ID, device.RoomID)
		}
	}

	energy, err := h.Energy.ListEnergy()
	require.NoError(t, err)
	require.Len(t, energy, 5)
	for _, record := range energy {
		assert.True(t, roomIDs[record.RoomID], "energy record %s should reference a seeded room", record.RoomID)
	}

	security, err := h.Security.GetSecurity()
	require.NoError(t, err)
	assert.True(t, security.Armed)
	assert.Equal(t, "armed_home", security.AlarmState)

	media, err := h.Media.GetMedia()
	require.NoError(t, err)
	assert.Equal(t, "Spotify - Chill Vibes", media.CurrentMedia)
	assert.Equal(t, 35, media.Volume)

	prefs, err := h.Preferences.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTheme, prefs.Theme)
}

func TestSeedIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	require.NoError(t, h.Seed())

	var countAfterFirst int64
	require.NoError(t, h.Db.Conn.Model(&models.Room{}).Count(&countAfterFirst).Error)
	require.EqualValues(t, 5, countAfterFirst)

	require.NoError(t, h.Seed())

	var countAfterSecond int64
	require.NoError(t, h.Db.Conn.Model(&models.Room{}).Count(&countAfterSecond).Error)
	assert.Equal(t, countAfterFirst, countAfterSecond)

	var energyCount int64
	require.NoError(t, h.Db.Conn.Model(&models.EnergyData{}).Count(&energyCount).Error)
	assert.EqualValues(t, 5, energyCount)
}

func TestSeedSkipsWhenRoomsPresent(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	// a lone pre-existing room gates the whole seed, singletons included
	room := models.Room{ID: "attic", Name: "Attic", Color: "#FFFFFF", Temperature: 15}
	require.NoError(t, h.Db.Conn.Create(&room).Error)

	require.NoError(t, h.Seed())

	rooms, err := h.Room.ListRooms()
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	_, err = h.Security.GetSecurity()
	assert.ErrorIs(t, err, ErrSecurityNotFound)
}
