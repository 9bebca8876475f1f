package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/pricing"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// conflictErrors are business rules the request ran into: the request was
// well-formed, the system state refuses it.
var conflictErrors = []error{
	order.ErrInvalidTransition,
	order.ErrAlreadyFinalized,
	order.ErrInvalidOrderOperation,
	order.ErrEmptyOrder,
	courier.ErrCourierBusy,
	courier.ErrCourierIdle,
	services.ErrNoCouriersAvailable,
	services.ErrCourierUnavailable,
	inventory.ErrInsufficientIngredients,
	inventory.ErrOvenCapacityExceeded,
	inventory.ErrOvenUnavailable,
	inventory.ErrReservationNotFound,
	inventory.ErrReservationAlreadySettled,
	payment.ErrPaymentAlreadyCaptured,
	payment.ErrPaymentNotAuthorized,
	payment.ErrRefundExceedsCapture,
	payment.ErrPaymentAmountMismatch,
	pricing.ErrCouponExpired,
	pricing.ErrCouponNotFirstOrder,
}

// badRequestErrors are malformed or out-of-range inputs.
var badRequestErrors = []error{
	errs.ErrValueIsRequired,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	order.ErrInvalidQuantity,
	pricing.ErrInvalidPricingOperation,
	menu.ErrMenuItemNotFound,
	menu.ErrDuplicateSKU,
}

// fail maps a domain error to an HTTP status and writes the error body.
func fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), Error{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return http.StatusNotFound
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// badRequest writes a 400 for requests that never reached the domain.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
