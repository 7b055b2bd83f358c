package builderextensions

import (
	appbuilder "github.com/uncefact/tests-untp-sub002/pkg/app_builder"
	"github.com/uncefact/tests-untp-sub002/pkg/utilities"
	"github.com/uncefact/tests-untp-sub002/src/database"
)

type AppConfig interface {
	appbuilder.AppConfig
	GetDatabaseConnectionString() string
}

func ConnectToDatabase[T utilities.JsonConfigObj[U], U AppConfig](a *appbuilder.AppBuilder[T, U]) {
	a.Logger.Info("Establishing connection to database...")
	connectionString := a.Config.GetDatabaseConnectionString()

	database.InitializeDatabaseConnection(connectionString)

	a.Logger.Info("Database connection established successfully.")
}

func RunMigrations(runMigrations bool) {
	if runMigrations {
		database.RunMigrations()
	}
}
