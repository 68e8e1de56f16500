package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	err := h.cartService.AddItem(c.Request().Context(), c.Param("userId"), req.ProductID, req.Quantity)
	if errors.Is(err, service.ErrProductNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error adding product to cart"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Product added to cart"})
}

func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.cartService.Get(c.Request().Context(), c.Param("userId"))
	if errors.Is(err, service.ErrCartNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Cart not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error retrieving cart"})
	}

	return c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}
