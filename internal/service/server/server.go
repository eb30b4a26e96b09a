package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewServer initializes the router serving titles as JSON
func NewServer(titleHandler *TitleHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger)

	router.SetTrustedProxies(nil)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/titles", titleHandler.GETTitleSearch)
	router.GET("/titles/:id", titleHandler.GETTitle)

	return router
}

// requestLogger logs every request once it has been served
func requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	log.Info().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("duration", time.Since(start)).
		Msg("Served request")
}
