// Package http exposes the order lifecycle over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
)

// Handlers bundles the application-layer handlers the server dispatches to.
type Handlers struct {
	CreateOrder   commands.CreateOrderCommandHandler
	AddItem       commands.AddItemCommandHandler
	ApplyDiscount commands.ApplyDiscountCommandHandler
	AcceptOrder   commands.AcceptOrderCommandHandler
	StartBaking   commands.StartBakingCommandHandler
	BoxOrder      commands.BoxOrderCommandHandler
	DispatchOrder commands.DispatchOrderCommandHandler
	DeliverOrder  commands.DeliverOrderCommandHandler
	CancelOrder   commands.CancelOrderCommandHandler
	SettlePayment commands.SettlePaymentCommandHandler
	RefundPayment commands.RefundPaymentCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetOrdersByStatus queries.GetOrdersByStatusQueryHandler
	GetPaymentRecord  queries.GetPaymentRecordQueryHandler
	GetAllCouriers    queries.GetAllCouriersQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)

	api.POST("/orders/:id/items", s.AddItem)
	api.POST("/orders/:id/discount", s.ApplyDiscount)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/bake", s.StartBaking)
	api.POST("/orders/:id/box", s.BoxOrder)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/orders/:id/payment", s.SettlePayment)
	api.POST("/orders/:id/refund", s.RefundPayment)
	api.GET("/orders/:id/payment", s.GetPaymentRecord)

	api.GET("/couriers", s.GetCouriers)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
