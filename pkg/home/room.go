package home

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

func (h *Home) listRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := h.Db.Conn.Find(&rooms).Error
	return rooms, err
}

// replaceRoom is a full overwrite of every field, devices included. Callers
// must send the complete device list; there is no merge here.
func (h *Home) replaceRoom(roomID string, input *models.Room) (*models.Room, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRoom),
	)

	room := models.Room{
		ID:          roomID,
		Name:        input.Name,
		Color:       input.Color,
		Temperature: input.Temperature,
		Devices:     input.Devices,
	}

	// devices are stored denormalized inside the room document, so each one
	// must carry its owner's id on every write
	for i := range room.Devices {
		room.Devices[i].RoomID = roomID
	}

	logger.Info("Received room replacement", zap.Reflect("room", room))

	err := h.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&room).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Upserted room", zap.String("room_id", roomID))

	return &room, nil
}

type IRoomImpl struct {
	home *Home
}

func (ir *IRoomImpl) ListRooms() ([]models.Room, error) {
	return ir.home.listRooms()
}

func (ir *IRoomImpl) ReplaceRoom(roomID string, input *models.Room) (*models.Room, error) {
	return ir.home.replaceRoom(roomID, input)
}

func (h *Home) GetIRoom() IRoom {
	return &IRoomImpl{home: h}
}
