package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
)

type settlePaymentRequest struct {
	Method string `json:"method"`
}

type refundPaymentRequest struct {
	Amount string `json:"amount"`
}

type paymentResponse struct {
	ID         string   `json:"id"`
	OrderID    string   `json:"order_id"`
	Method     string   `json:"method"`
	Status     string   `json:"status"`
	Due        string   `json:"due"`
	Authorized string   `json:"authorized"`
	Captured   string   `json:"captured"`
	Refunded   string   `json:"refunded"`
	History    []string `json:"history"`
}

// SettlePayment handles POST /api/v1/orders/:id/payment - settles the
// order's total via the chosen method.
func (s *Server) SettlePayment(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req settlePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSettlePaymentCommand(orderID, method)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SettlePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundPayment handles POST /api/v1/orders/:id/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req refundPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRefundPaymentCommand(orderID, amount)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RefundPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPaymentRecord handles GET /api/v1/orders/:id/payment.
func (s *Server) GetPaymentRecord(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetPaymentRecordQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	view, err := s.handlers.GetPaymentRecord.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentResponse{
		ID:         view.ID.String(),
		OrderID:    view.OrderID.String(),
		Method:     view.Method,
		Status:     view.Status,
		Due:        view.Due.String(),
		Authorized: view.Authorized.String(),
		Captured:   view.Captured.String(),
		Refunded:   view.Refunded.String(),
		History:    view.History,
	})
}
