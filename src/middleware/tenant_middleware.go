package middleware

import (
	"net/http"
	"strings"

	"github.com/uncefact/tests-untp-sub002/pkg/rest"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tenantContextKey = "tenantId"

// TenantId returns the tenant the request was authenticated for. Handlers
// run behind TenantMiddleware, so the key is always present.
func TenantId(c *gin.Context) string {
	return c.GetString(tenantContextKey)
}

// TenantMiddleware extracts the tenant scope from the bearer token's org
// claim. Authentication itself lives upstream; this layer only needs the
// tenant. Internal callers may short-circuit with the X-Tenant-Id header.
func TenantMiddleware(signingKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if headerTenant := c.GetHeader("X-Tenant-Id"); headerTenant != "" {
			c.Set(tenantContextKey, headerTenant)
			c.Next()
			return
		}

		authorization := c.GetHeader("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			rest.Fail(c, http.StatusUnauthorized, "Missing bearer token", "")
			c.Abort()
			return
		}

		token, err := jwt.Parse(
			[]byte(strings.TrimPrefix(authorization, "Bearer ")),
			jwt.WithKey(jwa.HS256, signingKey),
			jwt.WithValidate(true),
		)
		if err != nil {
			rest.Fail(c, http.StatusUnauthorized, "Invalid bearer token", "")
			c.Abort()
			return
		}

		org, ok := token.Get("org")
		tenantId, isString := org.(string)
		if !ok || !isString || tenantId == "" {
			rest.Fail(c, http.StatusUnauthorized, "Token carries no tenant claim", "")
			c.Abort()
			return
		}

		c.Set(tenantContextKey, tenantId)
		c.Next()
	}
}
