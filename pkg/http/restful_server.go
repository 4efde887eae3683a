package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"homedash.xyz/smart-home-service/pkg/home"
)

type RestfulServer struct {
	Server           *gin.Engine
	Home             *home.Home
	RateLimiterStore *home.RateLimiterStore

	// CORSOrigins empty means no CORS middleware; {"*"} allows any origin.
	CORSOrigins []string
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(deviceID)
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"}
	if len(rs.CORSOrigins) == 1 && rs.CORSOrigins[0] == "*" {
		// gin-contrib/cors rejects credentials combined with all origins
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = rs.CORSOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}

func (rs *RestfulServer) Setup() {
	if len(rs.CORSOrigins) > 0 {
		rs.Server.Use(cors.New(rs.corsConfig()))
	}

	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.GET("", rs.Root)
		api.GET("/rooms", rs.GetRooms)
		api.PUT("/rooms/:room_id", rs.UpdateRoom)
		api.GET("/devices/:device_id", rs.GetDevice)
		api.PUT("/devices/:device_id", rs.UpdateDevice)
		api.POST("/devices/:device_id/limiter", rs.PostLimiter)
		api.GET("/security", rs.GetSecurity)
		api.PUT("/security", rs.UpdateSecurity)
		api.GET("/energy", rs.GetEnergy)
		api.GET("/media", rs.GetMedia)
		api.PUT("/media", rs.UpdateMedia)
		api.GET("/preferences", rs.GetPreferences)
		api.PUT("/preferences", rs.UpdatePreferences)
	}
}
