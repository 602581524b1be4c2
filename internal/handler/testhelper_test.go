package handler

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/CesarJOtizM/didactic-succotash/internal/catalog"
	"github.com/CesarJOtizM/didactic-succotash/internal/middleware"
	"github.com/CesarJOtizM/didactic-succotash/internal/model"
	"github.com/CesarJOtizM/didactic-succotash/internal/repository"
	"github.com/CesarJOtizM/didactic-succotash/internal/routing"
	"github.com/CesarJOtizM/didactic-succotash/internal/service"
)

// approveAllGateway forces deterministic routing outcomes for API tests.
type approveAllGateway struct {
	succeed bool
}

func (g *approveAllGateway) Attempt(_ context.Context, method model.PaymentMethod, _ int64, _ string) model.ProviderOutcome {
	return model.ProviderOutcome{
		Success:       g.succeed,
		TransactionID: "txn_test",
		ProviderID:    method.ID,
	}
}

func setupRouter(t *testing.T, gw routing.Gateway) (*gin.Engine, *repository.MemoryOrderRepository) {
	t.Helper()

	repo := repository.NewMemoryOrderRepository()
	cat := catalog.Default()
	table := routing.DefaultTable()
	router := routing.NewRouter(gw, table)

	orderHandler := NewOrderHandler(service.NewOrderService(repo, cat, router))
	methodHandler := NewMethodHandler(service.NewMethodService(cat))
	statsHandler := NewStatsHandler(service.NewStatsService(repo, cat, table))

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())

	api := engine.Group("/api")
	api.POST("/payment_order", orderHandler.Create)
	api.GET("/payment_order", orderHandler.List)
	api.GET("/payment_order/:uuid", orderHandler.Get)
	api.POST("/payment_order/:uuid/process", orderHandler.Process)
	api.GET("/payment_methods/:country", methodHandler.ListByCountry)
	api.GET("/stats/orders", statsHandler.Overview)

	return engine, repo
}
