package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"homedash.xyz/smart-home-service/pkg/common"
	"homedash.xyz/smart-home-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance opens the process-wide store handle on first call and migrates
// the five collections (rooms, security, energy, media, preferences).
func GetInstance(dialector gorm.Dialector) *DB {
	var logger = common.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(
			&models.Room{},
			&models.SecuritySystem{},
			&models.EnergyData{},
			&models.MediaControl{},
			&models.UserPreferences{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyHomeDBPath); !found {
		dbPath = "home.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
