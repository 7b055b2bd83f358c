package apperrors

import (
	"github.com/uncefact/tests-untp-sub002/pkg/rest"

	"github.com/gin-gonic/gin"
)

// Respond is the single place errors become HTTP responses. Typed errors map
// to their status and code; anything untyped is a bare 500 with no internal
// detail leaked.
func Respond(c *gin.Context, err error) {
	status := StatusOf(err)
	message := err.Error()
	if status == 500 && CodeOf(err) == "" {
		message = "Internal server error"
	}
	rest.Fail(c, status, message, string(CodeOf(err)))
}
