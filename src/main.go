package main

import (
	"os"

	appbuilder "github.com/uncefact/tests-untp-sub002/pkg/app_builder"
	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	builderextensions "github.com/uncefact/tests-untp-sub002/src/builder_extensions"
	"github.com/uncefact/tests-untp-sub002/src/database"
	"github.com/uncefact/tests-untp-sub002/src/did"
	"github.com/uncefact/tests-untp-sub002/src/encryption"
	"github.com/uncefact/tests-untp-sub002/src/identifier"
	"github.com/uncefact/tests-untp-sub002/src/middleware"
	"github.com/uncefact/tests-untp-sub002/src/onboarding"
	"github.com/uncefact/tests-untp-sub002/src/registrar"
	"github.com/uncefact/tests-untp-sub002/src/resolution"
	"github.com/uncefact/tests-untp-sub002/src/scheme"
	"github.com/uncefact/tests-untp-sub002/src/serviceinstance"
	"github.com/uncefact/tests-untp-sub002/src/serviceregistry"

	"github.com/joho/godotenv"
)

// @title           Tenant Service Platform API
// @version         1.0
// @description     Multi-tenant service instance management and resolution
// @BasePath /v1
func main() {
	// Local overrides only; a missing .env file is the normal case.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	var (
		instanceHandler   *serviceinstance.Handler
		registrarHandler  *registrar.Handler
		schemeHandler     *scheme.Handler
		identifierHandler *identifier.Handler
		didHandler        *did.Handler
		onboardingHandler *onboarding.Handler

		jwtSigningKey []byte
		allowedOrigin string
	)

	type builder = appbuilder.AppBuilder[ApiConfigJson, ApiConfig]

	appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{}).
		LoadConfig(configPath).
		Apply(func(a *builder) {
			builderextensions.ConnectToDatabase(a)
			builderextensions.RunMigrations(true)

			if os.Getenv("SEED_DEV_DATA") == "true" {
				if err := InitializeDev(database.GetDatabaseConnection()); err != nil {
					a.Logger.Error(err, "Dev seed failed")
				}
			}
		}).
		InitRabbitmq().
		Apply(func(a *builder) {
			enc, err := encryption.NewService(a.Config.EncryptionConf.KeyHex)
			if err != nil {
				a.Logger.Error(err, "Invalid encryption key")
				panic(err)
			}

			registry := serviceregistry.Default()
			instanceRepo := serviceinstance.NewRepository()
			resolver := resolution.NewResolver(instanceRepo, enc, registry)

			var (
				registrarService *registrar.Service
				schemeService    *scheme.Service
				didRepo          did.Repository
			)
			instanceHandler, _ = serviceinstance.Build(enc, registry)
			registrarHandler, registrarService = registrar.Build()
			schemeHandler, schemeService = scheme.Build()
			identifierHandler = identifier.Build(schemeService, registrarService, resolver)
			didHandler, didRepo = did.Build(resolver)
			onboardingHandler = onboarding.Build(database.GetDatabaseConnection(), instanceRepo, didRepo)

			jwtSigningKey = []byte(a.Config.AuthConf.JwtSigningKey)
			allowedOrigin = a.Config.RestConf.AllowedOrigin
		}).
		Apply(func(a *builder) {
			a.AddGinMiddlewares(
				rest.NewMiddleware("v1", middleware.CORSMiddleware(allowedOrigin)),
				rest.NewMiddleware("v1", middleware.TenantMiddleware(jwtSigningKey)),
			)
			a.AddGinRoutes(serviceinstance.Routes(instanceHandler)...)
			a.AddGinRoutes(registrar.Routes(registrarHandler)...)
			a.AddGinRoutes(scheme.Routes(schemeHandler)...)
			a.AddGinRoutes(identifier.Routes(identifierHandler)...)
			a.AddGinRoutes(did.Routes(didHandler)...)
			a.AddGinRoutes(onboarding.Routes(onboardingHandler)...)
		}).
		InitGinRouter().
		Build().
		Start()
}
