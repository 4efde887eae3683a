package http

import (
	"errors"
	"net/http"

	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/home"
	"homedash.xyz/smart-home-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// respondError maps domain errors onto HTTP statuses: not-found sentinels
// become 404, everything else (store failures) surfaces as 500, never
// retried.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, home.ErrDeviceNotFound),
		errors.Is(err, home.ErrSecurityNotFound),
		errors.Is(err, home.ErrMediaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (rs *RestfulServer) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Smart Home Dashboard API"})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetRooms(c *gin.Context) {
	rooms, err := rs.Home.Room.ListRooms()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type DeviceRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	State string `json:"state"`
	Value *int   `json:"value"`
}

var deviceSchema = z.Struct(z.Shape{
	"ID":    z.String().Required(),
	"Name":  z.String().Required(),
	"Type":  z.String().Required(),
	"State": z.String().Required(),
	"Value": z.Ptr(z.Int()),
})

type RoomRequest struct {
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	Temperature int             `json:"temperature"`
	Devices     []DeviceRequest `json:"devices"`
}

var roomRequestSchema = z.Struct(z.Shape{
	"Name":        z.String().Required(),
	"Color":       z.String().Required(),
	"Temperature": z.Int().Required(),
	"Devices":     z.Slice(deviceSchema),
})

// UpdateRoom is a full-document replace: every field, devices list included,
// is overwritten with the request body. The path id wins; each embedded
// device gets its room_id rewritten server-side.
func (rs *RestfulServer) UpdateRoom(c *gin.Context) {
	roomID := c.Param("room_id")

	var req RoomRequest
	if err := roomRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	room := models.Room{
		Name:        req.Name,
		Color:       req.Color,
		Temperature: req.Temperature,
		Devices: models.DeviceList(common.Mapper(req.Devices, func(d DeviceRequest) models.Device {
			return models.Device{
				ID:    d.ID,
				Name:  d.Name,
				Type:  d.Type,
				State: d.State,
				Value: d.Value,
			}
		})),
	}

	written, err := rs.Home.Room.ReplaceRoom(roomID, &room)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, written)
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	device, err := rs.Home.Device.GetDevice(deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

type DeviceUpdateRequest struct {
	State *string `json:"state"`
	Value *int    `json:"value"`
}

var deviceUpdateSchema = z.Struct(z.Shape{
	"State": z.Ptr(z.String()),
	"Value": z.Ptr(z.Int()),
})

// UpdateDevice applies a partial merge: only state and/or value present in
// the body change, everything else on the device is untouched.
func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req DeviceUpdateRequest
	if err := deviceUpdateSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Home.Device.UpdateDevice(deviceID, &models.DeviceUpdate{
		State: req.State,
		Value: req.Value,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) GetSecurity(c *gin.Context) {
	security, err := rs.Home.Security.GetSecurity()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, security)
}

type SecurityRequest struct {
	Armed          bool   `json:"armed"`
	DoorLocked     bool   `json:"doorLocked"`
	MotionDetected bool   `json:"motionDetected"`
	AlarmState     string `json:"alarmState"`
}

var securityRequestSchema = z.Struct(z.Shape{
	"Armed":          z.Bool().Required(),
	"DoorLocked":     z.Bool().Required(),
	"MotionDetected": z.Bool().Required(),
	"AlarmState":     z.String().Required(),
})

func (rs *RestfulServer) UpdateSecurity(c *gin.Context) {
	var req SecurityRequest
	if err := securityRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	written, err := rs.Home.Security.ReplaceSecurity(&models.SecuritySystem{
		Armed:          req.Armed,
		DoorLocked:     req.DoorLocked,
		MotionDetected: req.MotionDetected,
		AlarmState:     req.AlarmState,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, written)
}

func (rs *RestfulServer) GetEnergy(c *gin.Context) {
	records, err := rs.Home.Energy.ListEnergy()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (rs *RestfulServer) GetMedia(c *gin.Context) {
	media, err := rs.Home.Media.GetMedia()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

type MediaRequest struct {
	Playing      bool   `json:"playing"`
	Volume       int    `json:"volume"`
	CurrentMedia string `json:"currentMedia"`
	Device       string `json:"device"`
}

var mediaRequestSchema = z.Struct(z.Shape{
	"Playing":      z.Bool().Required(),
	"Volume":       z.Int().Required(),
	"CurrentMedia": z.String().Required(),
	"Device":       z.String().Required(),
})

func (rs *RestfulServer) UpdateMedia(c *gin.Context) {
	var req MediaRequest
	if err := mediaRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	written, err := rs.Home.Media.ReplaceMedia(&models.MediaControl{
		Playing:      req.Playing,
		Volume:       req.Volume,
		CurrentMedia: req.CurrentMedia,
		Device:       req.Device,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, written)
}

func (rs *RestfulServer) GetPreferences(c *gin.Context) {
	prefs, err := rs.Home.Preferences.GetPreferences()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

type PreferencesRequest struct {
	Theme string `json:"theme"`
}

var preferencesRequestSchema = z.Struct(z.Shape{
	"Theme": z.String().Required(),
})

func (rs *RestfulServer) UpdatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := preferencesRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	written, err := rs.Home.Preferences.ReplacePreferences(&models.UserPreferences{
		Theme: req.Theme,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, written)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
