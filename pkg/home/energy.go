package home

import (
	"homedash.xyz/smart-home-service/pkg/models"
)

func (h *Home) listEnergy() ([]models.EnergyData, error) {
	var records []models.EnergyData
	err := h.Db.Conn.Find(&records).Error
	return records, err
}

type IEnergyImpl struct {
	home *Home
}

func (ie *IEnergyImpl) ListEnergy() ([]models.EnergyData, error) {
	return ie.home.listEnergy()
}

func (h *Home) GetIEnergy() IEnergy {
	return &IEnergyImpl{home: h}
}
