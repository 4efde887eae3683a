package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Device is a value type embedded in a Room's device list. It has no row of
// its own; the owning Room document is the unit of persistence, and RoomID
// must always equal the id of the room whose list contains it.
type Device struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	State  string `json:"state"`
	Value  *int   `json:"value"`
	RoomID string `json:"room_id"`
}

// DeviceUpdate carries the only two device fields mutable through the
// device-update path. Nil means "leave unchanged".
type DeviceUpdate struct {
	State *string `json:"state"`
	Value *int    `json:"value"`
}

// DeviceList is a Room's embedded device collection, stored as one
// JSON-encoded TEXT column so the room row stays the sole storage location
// for its devices.
type DeviceList []Device

func (l DeviceList) Value() (driver.Value, error) {
	if l == nil {
		l = DeviceList{}
	}
	return json.Marshal(l)
}

func (l *DeviceList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = DeviceList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into DeviceList", src)
	}
}

type Room struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `json:"name"`
	Color       string     `json:"color"`
	Temperature int        `json:"temperature"`
	Devices     DeviceList `gorm:"type:text" json:"devices"`
}

func (Room) TableName() string { return "rooms" }

// SecuritySystem is a singleton collection: exactly one row is ever
// expected. RowID is a storage-only surrogate key, stripped from JSON.
type SecuritySystem struct {
	RowID          uint   `gorm:"primaryKey" json:"-"`
	Armed          bool   `json:"armed"`
	DoorLocked     bool   `json:"doorLocked"`
	MotionDetected bool   `json:"motionDetected"`
	AlarmState     string `json:"alarmState"`
}

func (SecuritySystem) TableName() string { return "security" }

// EnergyData is a static per-room usage snapshot; RoomName is duplicated for
// display and never re-derived from the rooms collection.
type EnergyData struct {
	RowID       uint    `gorm:"primaryKey" json:"-"`
	RoomID      string  `gorm:"index" json:"room_id"`
	RoomName    string  `json:"room_name"`
	DailyUsage  float64 `json:"daily_usage"`
	WeeklyUsage float64 `json:"weekly_usage"`
}

func (EnergyData) TableName() string { return "energy" }

type MediaControl struct {
	RowID        uint   `gorm:"primaryKey" json:"-"`
	Playing      bool   `json:"playing"`
	Volume       int    `json:"volume"`
	CurrentMedia string `json:"currentMedia"`
	Device       string `json:"device"`
}

func (MediaControl) TableName() string { return "media" }

// UserPreferences is a singleton collection; reads fall back to DefaultTheme
// when no row exists yet.
type UserPreferences struct {
	RowID uint   `gorm:"primaryKey" json:"-"`
	Theme string `json:"theme"`
}

func (UserPreferences) TableName() string { return "preferences" }

const DefaultTheme = "dark"
