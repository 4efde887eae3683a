package home

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

func (h *Home) getSecurity() (*models.SecuritySystem, error) {
	var security models.SecuritySystem
	err := h.Db.Conn.First(&security).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSecurityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &security, nil
}

// replaceSecurity upserts the one expected row: overwrite it if present,
// create it otherwise. No identifier disambiguation, the collection holds a
// single document.
func (h *Home) replaceSecurity(input *models.SecuritySystem) (*models.SecuritySystem, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySecurity),
	)

	var existing models.SecuritySystem
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

	logger.Info("Upserted security system", zap.Reflect("security", input))

	return input, nil
}

type ISecurityImpl struct {
	home *Home
}

func (is *ISecurityImpl) GetSecurity() (*models.SecuritySystem, error) {
	return is.home.getSecurity()
}

func (is *ISecurityImpl) ReplaceSecurity(input *models.SecuritySystem) (*models.SecuritySystem, error) {
	return is.home.replaceSecurity(input)
}

func (h *Home) GetISecurity() ISecurity {
	return &ISecurityImpl{home: h}
}
