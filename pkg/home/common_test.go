package home

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"gorm.io/gorm"
	"homedash.xyz/smart-home-service/pkg/db"
	"homedash.xyz/smart-home-service/pkg/models"
	_ "homedash.xyz/smart-home-service/pkg/testing"
)

func newTestHome(t *testing.T) *Home {
	t.Helper()

	h := &Home{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	h.WithDefaultServices()
	return h
}

// resetStore empties all five collections; the shared in-memory sqlite
// instance survives across tests, so every test starts from a known state.
func resetStore(t *testing.T, conn *gorm.DB) {
	t.Helper()

	tables := []any{
		&models.Room{},
		&models.SecuritySystem{},
		&models.EnergyData{},
		&models.MediaControl{},
		&models.UserPreferences{},
	}
	for _, table := range tables {
		err := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error
		if err != nil {
			t.Fatalf("failed to reset table %T: %v", table, err)
		}
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
