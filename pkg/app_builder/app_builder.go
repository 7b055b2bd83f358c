package appbuilder

import (
	"fmt"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"
	"github.com/uncefact/tests-untp-sub002/pkg/rabbitmq"
	"github.com/uncefact/tests-untp-sub002/pkg/rest"
	"github.com/uncefact/tests-untp-sub002/pkg/utilities"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AppConfig interface {
	GetLoggerConfig() logger.LoggerConfig
	GetRabbitmqConfig() rabbitmq.RabbitmqConfig
	GetRestApiPort() uint16
}

// AppBuilder assembles the application step by step. Fields are exported so
// extension functions (database wiring, seeders) can reach the loaded config
// and logger.
type AppBuilder[T utilities.JsonConfigObj[U], U AppConfig] struct {
	Logger *logger.Logger
	Config U

	conn        *amqp.Connection
	routes      []rest.Route
	middlewares []rest.Middleware
	engine      *gin.Engine
}

func New[T utilities.JsonConfigObj[U], U AppConfig]() *AppBuilder[T, U] {
	return &AppBuilder[T, U]{}
}

func (a *AppBuilder[T, U]) InitLogger(loggerArgs logger.GlobalLoggerConfig) *AppBuilder[T, U] {
	logger.InitDefaultLogger(loggerArgs)
	a.Logger = logger.Default()
	a.Logger.Info("Logger initialized")

	return a
}

func (a *AppBuilder[T, U]) LoadConfig(filePath string) *AppBuilder[T, U] {
	a.Logger.Infof("Preparing to load config from %s ...", filePath)
	jsonConfig, err := utilities.ReadConfig[T, U](filePath)
	if err != nil {
		a.Logger.Error(err, "Failed to load config")
		panic(err)
	}

	a.Config = jsonConfig
	a.Logger.Info("Config successfully loaded.")
	return a
}

// Apply runs extension functions against the builder, used for concerns the
// builder itself does not know about (database, seed data).
func (a *AppBuilder[T, U]) Apply(extensions ...func(*AppBuilder[T, U])) *AppBuilder[T, U] {
	for _, extension := range extensions {
		extension(a)
	}
	return a
}

// InitRabbitmq connects to the broker and fills the publisher registry. A
// config without a broker host turns this into a no-op and all publishers
// degrade to noops.
func (a *AppBuilder[T, U]) InitRabbitmq() *AppBuilder[T, U] {
	rabbitmqConfig := a.Config.GetRabbitmqConfig()
	if !rabbitmqConfig.Enabled() {
		a.Logger.Warn("No Rabbitmq broker configured, lifecycle events will not be published")
		return a
	}

	a.Logger.Info("Preparing to connect to Rabbitmq server...")
	conn, err := rabbitmq.ConnectToRabbitmq(
		rabbitmqConfig.User,
		rabbitmqConfig.Password,
		rabbitmqConfig.Host,
	)
	if err != nil {
		panic(err)
	}

	a.conn = conn
	rabbitmq.InitializePublisherRegistry(conn, rabbitmqConfig.PublishersConfig)
	a.Logger.Info("Connection with Rabbitmq server established")

	return a
}

func (a *AppBuilder[T, U]) AddGinRoutes(routes ...rest.Route) *AppBuilder[T, U] {
	a.Logger.Info("Adding Gin REST API routes to Application...")
	a.routes = append(a.routes, routes...)
	return a
}

func (a *AppBuilder[T, U]) AddGinMiddlewares(middlewares ...rest.Middleware) *AppBuilder[T, U] {
	a.middlewares = append(a.middlewares, middlewares...)
	return a
}

func (a *AppBuilder[T, U]) InitGinRouter() *AppBuilder[T, U] {
	a.Logger.Info("Initializing Gin Router...")
	router := gin.Default()

	groups := map[string]*gin.RouterGroup{}
	group := func(name string) *gin.RouterGroup {
		if _, exists := groups[name]; !exists {
			groups[name] = router.Group("/" + name)
		}
		return groups[name]
	}

	for _, m := range a.middlewares {
		group(m.Group).Use(m.Handler)
	}

	a.Logger.Info("Registering REST API routes...")
	for _, r := range a.routes {
		g := group(r.Group)

		switch r.Method {
		case rest.GET:
			g.GET(r.Path, r.HandlerFunc)
		case rest.POST:
			g.POST(r.Path, r.HandlerFunc)
		case rest.PUT:
			g.PUT(r.Path, r.HandlerFunc)
		case rest.PATCH:
			g.PATCH(r.Path, r.HandlerFunc)
		case rest.DELETE:
			g.DELETE(r.Path, r.HandlerFunc)
		default:
			a.Logger.Warnf("Unrecognized HTTP method: %d", r.Method)
		}
	}

	a.engine = router
	a.Logger.Info("Successfully registered REST API routes.")
	return a
}

func (a *AppBuilder[T, U]) Build() *Application {
	return &Application{
		Logger: a.Logger,
		Addr:   fmt.Sprintf("0.0.0.0:%d", a.Config.GetRestApiPort()),
		Conn:   a.conn,
		Engine: a.engine,
	}
}
