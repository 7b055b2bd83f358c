package database

import (
	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/src/model"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Tenant{},
		&model.ServiceInstance{},
		&model.Registrar{},
		&model.IdentifierScheme{},
		&model.SchemeQualifier{},
		&model.Identifier{},
		&model.Did{})
}

func RunMigrations() {
	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables...")

	if err := AutoMigrate(GetDatabaseConnection()); err != nil {
		migrationLogger.Fatal(err, "Migrating database failed")
	}

	migrationLogger.Info("All tables created (or already exist).")
}
