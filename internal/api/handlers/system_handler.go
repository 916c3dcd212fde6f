package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/pkg/response"
)

// Root godoc
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Animal adoption tracking API"})
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "healthy"})
}
