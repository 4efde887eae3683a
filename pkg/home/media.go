package home

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

func (h *Home) getMedia() (*models.MediaControl, error) {
	var media models.MediaControl
	err := h.Db.Conn.First(&media).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (h *Home) replaceMedia(input *models.MediaControl) (*models.MediaControl, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMedia),
	)

	var existing models.MediaControl
	err := h.Db.Conn.First(&existing).Error
	switch {
	case err == nil:
		input.RowID = existing.RowID
	case errors.Is(err, gorm.ErrRecordNotFound):
		input.RowID = 0
	default:
		return nil, err
	}

	if err := h.Db.Conn.Save(input).Error; err != nil {
		return nil, err
	}

	logger.Info("Upserted media control", zap.Reflect("media", input))

	return input, nil
}

type IMediaImpl struct {
	home *Home
}

func (im *IMediaImpl) GetMedia() (*models.MediaControl, error) {
	return im.home.getMedia()
}

func (im *IMediaImpl) ReplaceMedia(input *models.MediaControl) (*models.MediaControl, error) {
	return im.home.replaceMedia(input)
}

func (h *Home) GetIMedia() IMedia {
	return &IMediaImpl{home: h}
}
