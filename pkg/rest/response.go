package rest

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {ok, data} on success,
// {ok, error, code} on failure.

func Ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

func Fail(c *gin.Context, status int, message, code string) {
	body := gin.H{"ok": false, "error": message}
	if code != "" {
		body["code"] = code
	}
	c.JSON(status, body)
}
