package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CesarJOtizM/didactic-succotash/internal/dto"
	"github.com/CesarJOtizM/didactic-succotash/internal/middleware"
	"github.com/CesarJOtizM/didactic-succotash/internal/service"
)

type MethodHandler struct {
	svc *service.MethodService
}

func NewMethodHandler(svc *service.MethodService) *MethodHandler {
	return &MethodHandler{svc: svc}
}

func (h *MethodHandler) ListByCountry(c *gin.Context) {
	country := c.Param("country")

	var amount int64
	if raw := c.Query("amount"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation failed",
				Details: "amount must be a positive integer",
			})
			return
		}
		amount = parsed
	}

	methods, err := h.svc.ListByCountry(country, amount)
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentMethodListResponse(country, methods))
}
