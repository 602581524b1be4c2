package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CesarJOtizM/didactic-succotash/internal/dto"
	"github.com/CesarJOtizM/didactic-succotash/internal/middleware"
	"github.com/CesarJOtizM/didactic-succotash/internal/service"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Details: err.Error(),
		})
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), service.CreateOrderParams{
		Amount:         req.Amount,
		Description:    req.Description,
		CountryIsoCode: req.CountryIsoCode,
		BaseURL:        baseURL(c),
	})
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPaymentOrderResponse(order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentOrderResponse(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	out := make([]dto.PaymentOrderResponse, len(orders))
	for i, order := range orders {
		out[i] = dto.NewPaymentOrderResponse(order)
	}

	c.JSON(http.StatusOK, dto.PaymentOrderListResponse{Orders: out, Total: len(out)})
}

func (h *OrderHandler) Process(c *gin.Context) {
	var req dto.ProcessPaymentOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation failed",
				Details: err.Error(),
			})
			return
		}
	}

	result, err := h.svc.ProcessOrder(c.Request.Context(), c.Param("uuid"), req.PaymentMethodID)
	if err != nil {
		status, resp := middleware.MapError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, dto.NewProcessPaymentResponse(result))
}

// baseURL reconstructs the externally visible origin so generated payment
// urls point back at the caller's host.
func baseURL(c *gin.Context) string {
	scheme := c.GetHeader("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
	}
	host := c.Request.Host
	if host == "" {
		host = "localhost:8080"
	}
	return scheme + "://" + host
}
