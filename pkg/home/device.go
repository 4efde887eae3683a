package home

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

// Devices live inside their room's devices column; the room is the only
// addressable store entry. Lookups match on the JSON list via sqlite's
// json_each.
const roomByDeviceQuery = `EXISTS (SELECT 1 FROM json_each(rooms.devices) WHERE json_extract(json_each.value, '$.id') = ?)`

func (h *Home) findRoomByDeviceID(deviceID string) (*models.Room, error) {
	var room models.Room
	err := h.Db.Conn.Where(roomByDeviceQuery, deviceID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// device ids are unique across all rooms, so first match is the only match
func locateDevice(devices models.DeviceList, deviceID string) *models.Device {
	for i := range devices {
		if devices[i].ID == deviceID {
			return &devices[i]
		}
	}
	return nil
}

func (h *Home) getDevice(deviceID string) (*models.Device, error) {
	room, err := h.findRoomByDeviceID(deviceID)
	if err != nil {
		return nil, err
	}

	device := locateDevice(room.Devices, deviceID)
	if device == nil {
		return nil, ErrDeviceNotFound
	}
	return device, nil
}

// updateDevice merges the non-nil fields of update into the matching element
// of the owning room's device list, then writes the whole list back onto the
// room row. Only the devices column is overwritten, so room-level fields
// survive concurrent device updates; two concurrent updates within the same
// room are last-write-wins over the full list (read-modify-write across two
// store round-trips, accepted for this single-user dashboard).
func (h *Home) updateDevice(deviceID string, update *models.DeviceUpdate) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	room, err := h.findRoomByDeviceID(deviceID)
	if err != nil {
		return nil, err
	}

	device := locateDevice(room.Devices, deviceID)
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	if update.State != nil {
		device.State = *update.State
	}
	if update.Value != nil {
		device.Value = update.Value
	}

	logger.Info("Updating device",
		zap.String("device_id", deviceID),
		zap.String("room_id", room.ID),
		zap.Reflect("update", update))

	err = h.Db.Conn.Model(&models.Room{ID: room.ID}).
		Update("devices", room.Devices).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Updated device", zap.Reflect("device", device))

	updated := locateDevice(room.Devices, deviceID)
	if updated == nil {
		return nil, ErrDeviceNotFound
	}
	return updated, nil
}

type IDeviceImpl struct {
	home *Home
}

func (id *IDeviceImpl) GetDevice(deviceID string) (*models.Device, error) {
	return id.home.getDevice(deviceID)
}

func (id *IDeviceImpl) UpdateDevice(deviceID string, update *models.DeviceUpdate) (*models.Device, error) {
	return id.home.updateDevice(deviceID, update)
}

func (h *Home) GetIDevice() IDevice {
	return &IDeviceImpl{home: h}
}
