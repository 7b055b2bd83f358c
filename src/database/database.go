package database

import (
	"strings"
	"sync"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	dbConnection *gorm.DB
	dbOnce       sync.Once
)

// InitializeDatabaseConnection opens the shared connection. Postgres DSNs are
// recognized by their key=value form; anything else is treated as a sqlite
// path for development.
func InitializeDatabaseConnection(connectionString string) {
	dbOnce.Do(func() {
		dbLogger := logger.Default()
		dbLogger.Info("Establishing connection to database...")

		var dialector gorm.Dialector
		if strings.Contains(connectionString, "host=") {
			dialector = postgres.Open(connectionString)
		} else {
			dialector = sqlite.Open(connectionString)
		}

		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			dbLogger.Fatal(err, "Cannot establish database connection")
		}

		dbConnection = db
		dbLogger.Info("Database connection established.")
	})
}

func GetDatabaseConnection() *gorm.DB {
	return dbConnection
}
