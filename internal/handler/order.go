package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"
)

type OrderHandler struct {
	checkoutService service.CheckoutService
}

func NewOrderHandler(checkoutService service.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	order, err := h.checkoutService.Checkout(c.Request().Context(), c.Param("userId"))
	if errors.Is(err, service.ErrEmptyCart) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Cart is empty"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Error placing order",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Order placed successfully",
		"order":   dto.NewOrderResponse(order),
	})
}

func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.checkoutService.LatestOrder(c.Request().Context(), c.Param("userId"))
	if errors.Is(err, service.ErrOrderNotFound) {
		// no orders yet is not an error for this listing
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error retrieving orders"})
	}

	return c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
