package middleware

import (
	"net/http"
	"strings"

	"sien_official/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAdminPassword = "x-admin-password"
	QueryAdminPassword  = "password"
	QueryCronKey        = "key"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// CredentialFunc extracts the caller-supplied secret from a request.
type CredentialFunc func(c *gin.Context) string

// Authorized reports whether credential matches secret. An unset secret never matches.
// The comparison is plain string equality.
func Authorized(secret, credential string) bool {
	return secret != "" && credential == secret
}

// AdminCredential reads the x-admin-password header, falling back to the password query parameter.
func AdminCredential(c *gin.Context) string {
	if v := c.GetHeader(HeaderAdminPassword); v != "" {
		return v
	}
	return c.Query(QueryAdminPassword)
}

// CronCredential reads the Authorization header (raw or "Bearer <secret>"), falling back to the key query parameter.
func CronCredential(c *gin.Context) string {
	if v := c.GetHeader("Authorization"); v != "" {
		return strings.TrimPrefix(v, "Bearer ")
	}
	return c.Query(QueryCronKey)
}

// RequireSecret aborts with 401 unless the request carries the configured secret.
// Requests matching skip (e.g. the public read) pass through unchecked.
func RequireSecret(secret string, credential CredentialFunc, skip func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skip != nil && skip(c) {
			c.Next()
			return
		}
		if !Authorized(secret, credential(c)) {
			Logger(c).Info("access denied")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

// IsPublicRead matches GET requests carrying type=public.
func IsPublicRead(c *gin.Context) bool {
	return c.Request.Method == http.MethodGet && c.Query("type") == "public"
}
