package appbuilder

import (
	"github.com/uncefact/tests-untp-sub002/pkg/logger"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Application struct {
	Logger *logger.Logger
	Addr   string
	Conn   *amqp.Connection
	Engine *gin.Engine
}

func (a *Application) Start() {
	a.Logger.Info("Starting Application runtime...")

	a.Logger.Infof("REST API is now listening on: %s", a.Addr)
	if err := a.Engine.Run(a.Addr); err != nil {
		a.Logger.Fatal(err, "REST API server stopped")
	}
}
