package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorMiddleware provides centralized error handling
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			log.Printf("Error: %v", err.Err)

			// a handler may attach an error after committing its own
			// response (best-effort work); log it but don't write twice
			if c.Writer.Written() {
				return
			}

			var statusCode int
			if err.Meta != nil {
				if code, ok := err.Meta.(int); ok {
					statusCode = code
				}
			}
			if statusCode == 0 {
				statusCode = http.StatusInternalServerError
			}

			message := err.Error()
			if message == "" {
				message = "Internal server error"
			}

			c.JSON(statusCode, gin.H{"message": message})
		}
	}
}

// RecoveryMiddleware handles panics and prevents server crashes
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	}
}
