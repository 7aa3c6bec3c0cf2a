package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundscribe/soundscribe/util"
)

const defaultMaxBodySize = 30 * 1024 * 1024 // headroom over the 25MiB audio limit

// BodySizeLimit returns middleware that restricts the request body to the
// given size string (e.g. "30MB", "512KB", "1GB").
func BodySizeLimit(maxSize string) gin.HandlerFunc {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, size)
		c.Next()
	}
}
