package controller

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// requestIDHeader carries the per-request ID back to the client.
const requestIDHeader = "X-Request-Id"

// CORSMiddleware allows browser frontends on other origins to call the API.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware tags every request with a snowflake ID and logs the
// outcome under it, so one request's log lines can be grepped together.
func RequestIDMiddleware(node *snowflake.Node) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := node.Generate().String()
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		log.WithField("requestId", requestID).
			Debugf("%v %v -> %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
