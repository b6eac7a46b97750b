package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root identifies the API.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "The Crafty Couple's Rewards API"})
}

// Health reports process liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
