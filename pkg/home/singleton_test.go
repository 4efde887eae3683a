package home

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

func TestSecuritySingleton(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	_, err := h.Security.GetSecurity()
	assert.ErrorIs(t, err, ErrSecurityNotFound)

	written, err := h.Security.ReplaceSecurity(&models.SecuritySystem{
		Armed: true, DoorLocked: true, MotionDetected: false, AlarmState: "armed_away",
	})
	require.NoError(t, err)

	read, err := h.Security.GetSecurity()
	require.NoError(t, err)
	assert.Equal(t, written, read)

	// replacing again overwrites the same row instead of adding one
	_, err = h.Security.ReplaceSecurity(&models.SecuritySystem{
		Armed: false, DoorLocked: false, MotionDetected: true, AlarmState: "disarmed",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, h.Db.Conn.Model(&models.SecuritySystem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	read, err = h.Security.GetSecurity()
	require.NoError(t, err)
	assert.False(t, read.Armed)
	assert.Equal(t, "disarmed", read.AlarmState)
}

func TestMediaSingleton(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	_, err := h.Media.GetMedia()
	assert.ErrorIs(t, err, ErrMediaNotFound)

	_, err = h.Media.ReplaceMedia(&models.MediaControl{
		Playing: true, Volume: 50, CurrentMedia: "Radio", Device: "Kitchen Speaker",
	})
	require.NoError(t, err)

	_, err = h.Media.ReplaceMedia(&models.MediaControl{
		Playing: false, Volume: 20, CurrentMedia: "Podcast", Device: "Kitchen Speaker",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, h.Db.Conn.Model(&models.MediaControl{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	read, err := h.Media.GetMedia()
	require.NoError(t, err)
	assert.Equal(t, "Podcast", read.CurrentMedia)
	assert.Equal(t, 20, read.Volume)
}

func TestPreferencesDefaultWhenAbsent(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	prefs, err := h.Preferences.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTheme, prefs.Theme)

	// the default is synthesized, not persisted
	var count int64
	require.NoError(t, h.Db.Conn.Model(&models.UserPreferences{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPreferencesUpsert(t *testing.T) {
	common.SetTestLoggerNop()

	h := newTestHome(t)
	resetStore(t, h.Db.Conn)

	_, err := h.Preferences.ReplacePreferences(&models.UserPreferences{Theme: "light"})
	require.NoError(t, err)

	prefs, err := h.Preferences.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, "light", prefs.Theme)

	_, err = h.Preferences.ReplacePreferences(&models.UserPreferences{Theme: "dark"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, h.Db.Conn.Model(&models.UserPreferences{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
