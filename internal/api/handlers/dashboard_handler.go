package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/application"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats godoc
// @Summary Task and submission counts
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} application.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	stats, err := h.svc.Stats(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
