package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/client"
	"storefront-api/internal/dto"
	"storefront-api/internal/middleware"
	"storefront-api/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Pay(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)

	var req dto.PayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	paymentURL, err := h.paymentService.Pay(c.Request().Context(), id.UserID, req.OrderID, req.Description)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	case errors.Is(err, service.ErrOrderNotPending):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Order is not awaiting payment"})
	case errors.Is(err, client.ErrGatewayRejected):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Error in payment request",
			"error":   err.Error(),
		})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.PayResponse{PaymentURL: paymentURL})
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	authority := c.QueryParam("Authority")
	status := c.QueryParam("Status")

	refID, err := h.paymentService.Verify(c.Request().Context(), authority, status)
	switch {
	case errors.Is(err, service.ErrPaymentFailed):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Payment failed or canceled"})
	case errors.Is(err, service.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
	case errors.Is(err, client.ErrGatewayRejected):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Payment verification failed",
			"error":   err.Error(),
		})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.VerifyResponse{Message: "Payment successful", RefID: refID})
}
