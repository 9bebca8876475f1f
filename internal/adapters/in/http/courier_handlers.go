package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzeria/internal/core/application/usecases/queries"
)

type courierResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Vehicle  string      `json:"vehicle"`
	Location locationDTO `json:"location"`
	OrderID  *string     `json:"order_id,omitempty"`
}

// GetCouriers handles GET /api/v1/couriers - the whole fleet with current
// positions and assignments.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]courierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = courierResponse{
			ID:       c.ID.String(),
			Name:     c.Name,
			Vehicle:  c.VehicleKind,
			Location: locationDTO{X: c.Location.X(), Y: c.Location.Y()},
		}
		if c.OrderID != nil {
			orderID := c.OrderID.String()
			response[i].OrderID = &orderID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
