package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/db"
	"homedash.xyz/smart-home-service/pkg/home"
	homeHttp "homedash.xyz/smart-home-service/pkg/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	var dbInstance *db.DB
	switch dbType := os.Getenv(common.EnvKeyHomeDBType); dbType {
	case "file", "":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HOME_DB_TYPE: " + dbType)
	}

	logger := common.GetLogger()

	homeCore := home.Home{
		Db: *dbInstance,
	}
	homeCore.WithDefaultServices()

	// seed must finish before any handler serves traffic
	if err := homeCore.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	var limiterStore *home.RateLimiterStore
	rateEnv := strings.TrimSpace(os.Getenv(common.EnvKeyHomeDefaultRate))
	burstEnv := strings.TrimSpace(os.Getenv(common.EnvKeyHomeDefaultBurst))
	if rateEnv != "" && burstEnv != "" {
		defaultRate, err := strconv.ParseFloat(rateEnv, 64)
		if err != nil {
			log.Fatal("Invalid HOME_DEFAULT_RATE, should be a float64 value")
		}
		defaultBurst, err := strconv.ParseInt(burstEnv, 10, 64)
		if err != nil {
			log.Fatal("Invalid HOME_DEFAULT_BURST, should be an int value")
		}
		limiterStore = home.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))
	}

	corsOrigins := []string{"*"}
	if env := strings.TrimSpace(os.Getenv(common.EnvKeyCORSOrigins)); env != "" {
		corsOrigins = strings.Split(env, ",")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHomeHTTPHostPort))
	if httpHostPort == "" {
		httpHostPort = ":8000"
	}

	rs := &homeHttp.RestfulServer{
		Server:           gin.Default(),
		Home:             &homeCore,
		RateLimiterStore: limiterStore,
		CORSOrigins:      corsOrigins,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
