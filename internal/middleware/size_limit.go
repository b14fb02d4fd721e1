// Package middleware contain gin middlewares shared across routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// base64 inflates bodies by a third, plus some JSON envelope padding.
var encodingOverhead = int64(16 * 1024)

// SizeLimit is a middleware that caps the request body at maxBodyBytes of
// decoded content, allowing for base64 and JSON overhead on the wire.
// Oversized bodies surface as http.MaxBytesError at read time and usually
// respond with 413 request entity too large.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	wireLimit := maxBodyBytes + maxBodyBytes/3 + encodingOverhead
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, wireLimit)

		c.Next()
	}
}
