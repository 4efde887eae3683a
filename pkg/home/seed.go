package home

import (
	"go.uber.org/zap"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

func seedRooms() []models.Room {
	return []models.Room{
		{
			ID: "living-room", Name: "Living Room", Color: "#F59E0B", Temperature: 22,
			Devices: models.DeviceList{
				{ID: "lr-light", Name: "Main Light", Type: "light", State: "on", Value: common.Ptr(75), RoomID: "living-room"},
				{ID: "lr-ac", Name: "AC Unit", Type: "ac", State: "on", Value: common.Ptr(22), RoomID: "living-room"},
				{ID: "lr-curtain", Name: "Curtains", Type: "curtain", State: "open", Value: common.Ptr(100), RoomID: "living-room"},
			},
		},
		{
			ID: "bedroom", Name: "Bedroom", Color: "#EC4899", Temperature: 21,
			Devices: models.DeviceList{
				{ID: "br-light", Name: "Bedroom Light", Type: "light", State: "off", Value: common.Ptr(0), RoomID: "bedroom"},
				{ID: "br-ac", Name: "AC Unit", Type: "ac", State: "on", Value: common.Ptr(21), RoomID: "bedroom"},
				{ID: "br-curtain", Name: "Curtains", Type: "curtain", State: "closed", Value: common.Ptr(0), RoomID: "bedroom"},
			},
		},
		{
			ID: "kitchen", Name: "Kitchen", Color: "#10B981", Temperature: 18,
			Devices: models.DeviceList{
				{ID: "kt-light", Name: "Kitchen Light", Type: "light", State: "on", Value: common.Ptr(100), RoomID: "kitchen"},
				{ID: "kt-ac", Name: "AC Unit", Type: "ac", State: "off", Value: common.Ptr(18), RoomID: "kitchen"},
				{ID: "kt-window", Name: "Window", Type: "curtain", State: "open", Value: common.Ptr(50), RoomID: "kitchen"},
			},
		},
		{
			ID: "bathroom", Name: "Bathroom", Color: "#06B6D4", Temperature: 20,
			Devices: models.DeviceList{
				{ID: "bt-light", Name: "Bathroom Light", Type: "light", State: "off", Value: common.Ptr(0), RoomID: "bathroom"},
				{ID: "bt-ac", Name: "Heater", Type: "ac", State: "off", Value: common.Ptr(20), RoomID: "bathroom"},
				{ID: "bt-window", Name: "Window", Type: "curtain", State: "closed", Value: common.Ptr(0), RoomID: "bathroom"},
			},
		},
		{
			ID: "guest-room", Name: "Guest Room", Color: "#8B5CF6", Temperature: 19,
			Devices: models.DeviceList{
				{ID: "gr-light", Name: "Guest Light", Type: "light", State: "off", Value: common.Ptr(0), RoomID: "guest-room"},
				{ID: "gr-ac", Name: "AC Unit", Type: "ac", State: "off", Value: common.Ptr(19), RoomID: "guest-room"},
				{ID: "gr-curtain", Name: "Curtains", Type: "curtain", State: "closed", Value: common.Ptr(0), RoomID: "guest-room"},
			},
		},
	}
}

func seedEnergy() []models.EnergyData {
	return []models.EnergyData{
		{RoomID: "living-room", RoomName: "Living Room", DailyUsage: 12.5, WeeklyUsage: 87.5},
		{RoomID: "bedroom", RoomName: "Bedroom", DailyUsage: 8.3, WeeklyUsage: 58.1},
		{RoomID: "kitchen", RoomName: "Kitchen", DailyUsage: 15.2, WeeklyUsage: 106.4},
		{RoomID: "bathroom", RoomName: "Bathroom", DailyUsage: 5.7, WeeklyUsage: 39.9},
		{RoomID: "guest-room", RoomName: "Guest Room", DailyUsage: 3.1, WeeklyUsage: 21.7},
	}
}

// Seed populates the store with the demo dataset on first run. The rooms
// collection is the sole idempotency gate: when any room row exists the
// whole seed is skipped, even if a prior run died before reaching the
// singleton inserts.
func (h *Home) Seed() error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySeed),
	)

	var existingRooms int64
	if err := h.Db.Conn.Model(&models.Room{}).Count(&existingRooms).Error; err != nil {
		return err
	}
	if existingRooms > 0 {
		logger.Info("Rooms already present, skipping seed", zap.Int64("rooms", existingRooms))
		return nil
	}

	rooms := seedRooms()
	if err := h.Db.Conn.Create(&rooms).Error; err != nil {
		return err
	}

	security := models.SecuritySystem{
		Armed:          true,
		DoorLocked:     true,
		MotionDetected: false,
		AlarmState:     "armed_home",
	}
	if err := h.Db.Conn.Create(&security).Error; err != nil {
		return err
	}

	energy := seedEnergy()
	if err := h.Db.Conn.Create(&energy).Error; err != nil {
		return err
	}

	media := models.MediaControl{
		Playing:      false,
		Volume:       35,
		CurrentMedia: "Spotify - Chill Vibes",
		Device:       "Living Room Speaker",
	}
	if err := h.Db.Conn.Create(&media).Error; err != nil {
		return err
	}

	prefs := models.UserPreferences{Theme: models.DefaultTheme}
	if err := h.Db.Conn.Create(&prefs).Error; err != nil {
		return err
	}

	logger.Info("Database seeded with demo data",
		zap.Int("rooms", len(rooms)),
		zap.Int("energy_records", len(energy)))

	return nil
}
