package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK      = "ok"
	statusRunning = "sensor bridge running"
)

// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusRunning})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Latest sensor reading
// @Description  Most recent tilt/temp/humid parsed from the serial device. Fields are null until a reading arrives.
// @Tags         sensor
// @Produce      json
// @Success      200  {object}  models.Reading
// @Router       /sensor [get]
func (h *Handler) getSensor(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.Latest())
}
