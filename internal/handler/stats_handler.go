package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CesarJOtizM/didactic-succotash/internal/middleware"
	"github.com/CesarJOtizM/didactic-succotash/internal/service"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, stats)
}
