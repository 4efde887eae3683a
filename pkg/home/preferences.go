package home

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

// getPreferences never reports not-found: an empty collection reads as the
// default theme.
func (h *Home) getPreferences() (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := h.Db.Conn.First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserPreferences{Theme: models.DefaultTheme}, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (h *Home) replacePreferences(input *models.UserPreferences) (*models.UserPreferences, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPreferences),
	)

	var existing models.UserPreferences
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

	logger.Info("Upserted user preferences", zap.String("theme", input.Theme))

	return input, nil
}

type IPreferencesImpl struct {
	home *Home
}

func (ip *IPreferencesImpl) GetPreferences() (*models.UserPreferences, error) {
	return ip.home.getPreferences()
}

func (ip *IPreferencesImpl) ReplacePreferences(input *models.UserPreferences) (*models.UserPreferences, error) {
	return ip.home.replacePreferences(input)
}

func (h *Home) GetIPreferences() IPreferences {
	return &IPreferencesImpl{home: h}
}
