// Package home holds the dashboard's domain services: rooms with their
// embedded device lists, the security/media/preferences singletons, the
// energy snapshot, and the startup seeder. All store access goes through
// the Home aggregate; HTTP handlers never touch the DB directly.
package home

import (
	"homedash.xyz/smart-home-service/pkg/db"
	"homedash.xyz/smart-home-service/pkg/models"
)

type IRoom interface {
	ListRooms() ([]models.Room, error)
	ReplaceRoom(roomID string, input *models.Room) (*models.Room, error)
}

type IDevice interface {
	GetDevice(deviceID string) (*models.Device, error)
	UpdateDevice(deviceID string, update *models.DeviceUpdate) (*models.Device, error)
}

type ISecurity interface {
	GetSecurity() (*models.SecuritySystem, error)
	ReplaceSecurity(input *models.SecuritySystem) (*models.SecuritySystem, error)
}

type IEnergy interface {
	ListEnergy() ([]models.EnergyData, error)
}

type IMedia interface {
	GetMedia() (*models.MediaControl, error)
	ReplaceMedia(input *models.MediaControl) (*models.MediaControl, error)
}

type IPreferences interface {
	GetPreferences() (*models.UserPreferences, error)
	ReplacePreferences(input *models.UserPreferences) (*models.UserPreferences, error)
}

type Home struct {
	Db          db.DB
	Room        IRoom
	Device      IDevice
	Security    ISecurity
	Energy      IEnergy
	Media       IMedia
	Preferences IPreferences
}

type ServiceOpts struct {
	Room        IRoom
	Device      IDevice
	Security    ISecurity
	Energy      IEnergy
	Media       IMedia
	Preferences IPreferences
}

func (h *Home) WithServices(opts ServiceOpts) *Home {
	if opts.Room != nil {
		h.Room = opts.Room
	}
	if opts.Device != nil {
		h.Device = opts.Device
	}
	if opts.Security != nil {
		h.Security = opts.Security
	}
	if opts.Energy != nil {
		h.Energy = opts.Energy
	}
	if opts.Media != nil {
		h.Media = opts.Media
	}
	if opts.Preferences != nil {
		h.Preferences = opts.Preferences
	}
	return h
}

// WithDefaultServices wires every concern to its DB-backed implementation.
func (h *Home) WithDefaultServices() *Home {
	return h.WithServices(ServiceOpts{
		Room:        h.GetIRoom(),
		Device:      h.GetIDevice(),
		Security:    h.GetISecurity(),
		Energy:      h.GetIEnergy(),
		Media:       h.GetIMedia(),
		Preferences: h.GetIPreferences(),
	})
}
