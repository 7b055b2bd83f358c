package rest

import "github.com/gin-gonic/gin"

// Middleware scopes a gin handler to a route group. The builder installs
// group middlewares before registering the group's routes.
type Middleware struct {
	Handler gin.HandlerFunc
	Group   string
}

func NewMiddleware(group string, handler gin.HandlerFunc) Middleware {
	return Middleware{
		Group:   group,
		Handler: handler,
	}
}
