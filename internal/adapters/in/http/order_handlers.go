package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pricing"
	"pizzeria/internal/core/domain/model/product"
)

type locationDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type createOrderRequest struct {
	CustomerID  string      `json:"customer_id"`
	Destination locationDTO `json:"destination"`
	FirstOrder  bool        `json:"first_order"`
}

type addItemRequest struct {
	SKU      string   `json:"sku"`
	Size     string   `json:"size"`
	Toppings []string `json:"toppings"`
	Quantity int      `json:"quantity"`
}

type orderResponse struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	Destination locationDTO `json:"destination"`
	Status      string      `json:"status"`
	FirstOrder  bool        `json:"first_order"`
	Subtotal    string      `json:"subtotal"`
	Total       string      `json:"total"`
	CourierID   *string     `json:"courier_id,omitempty"`
}

type orderSummaryResponse struct {
	ID          string      `json:"id"`
	Destination locationDTO `json:"destination"`
	Total       string      `json:"total"`
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer_id")
	}

	destination, err := kernel.NewLocation(req.Destination.X, req.Destination.Y)
	if err != nil {
		return fail(ctx, err)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, destination, req.FirstOrder)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// AddItem handles POST /api/v1/orders/:id/items - adds an order line.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req addItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	size, err := product.SizeFromString(req.Size)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(orderID, req.SKU, size, req.Toppings, req.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AddItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyDiscount handles POST /api/v1/orders/:id/discount - attaches a
// pricing strategy. The body is the strategy descriptor, e.g.
// {"kind":"percent_off","percent":"10"}.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return badRequest(ctx, "invalid request body")
	}

	strategy, err := pricing.UnmarshalStrategy(raw)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewApplyDiscountCommand(orderID, strategy)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.ApplyDiscount.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartBaking handles POST /api/v1/orders/:id/bake.
func (s *Server) StartBaking(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewStartBakingCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.StartBaking.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BoxOrder handles POST /api/v1/orders/:id/box.
func (s *Server) BoxOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewBoxOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.BoxOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.DispatchOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders?status=X - lists orders in a status.
func (s *Server) GetOrders(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "missing or invalid status parameter")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return fail(ctx, err)
	}

	rows, err := s.handlers.GetOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]orderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = orderSummaryResponse{
			ID:          row.ID.String(),
			Destination: locationDTO{X: row.Destination.X(), Y: row.Destination.Y()},
			Total:       row.Total.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - the order read model.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := orderResponse{
		ID:          view.ID.String(),
		CustomerID:  view.CustomerID.String(),
		Destination: locationDTO{X: view.Destination.X(), Y: view.Destination.Y()},
		Status:      view.Status,
		FirstOrder:  view.IsFirstOrder,
		Subtotal:    view.Subtotal.String(),
		Total:       view.Total.String(),
	}
	if view.CourierID != nil {
		courierID := view.CourierID.String()
		response.CourierID = &courierID
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
