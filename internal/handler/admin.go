package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"
)

// AdminHandler serves the management surface: users, products, reviews and
// discount codes. Every route is gated to the admin role.
type AdminHandler struct {
	userService     service.UserService
	catalogService  service.CatalogService
	reviewService   service.ReviewService
	discountService service.DiscountService
}

func NewAdminHandler(
	userService service.UserService,
	catalogService service.CatalogService,
	reviewService service.ReviewService,
	discountService service.DiscountService,
) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		catalogService:  catalogService,
		reviewService:   reviewService,
		discountService: discountService,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.Users(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if len(users) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No users found"})
	}

	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	err := h.userService.DeleteUser(c.Request().Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted"})
}

func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.Products(c.Request().Context(), nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if len(products) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No products found"})
	}

	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = dto.NewProductResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	err := h.catalogService.DeleteProduct(c.Request().Context(), c.Param("id"))
	if errors.Is(err, service.ErrProductNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted"})
}

func (h *AdminHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewService.Reviews(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if len(reviews) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No reviews found"})
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *AdminHandler) DeleteReview(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid review ID"})
	}

	err = h.reviewService.Delete(c.Request().Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Review not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Review deleted"})
}

func (h *AdminHandler) CreateDiscount(c echo.Context) error {
	var req dto.CreateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	code, err := h.discountService.Create(c.Request().Context(), req.DiscountPercentage, req.ExpiresAt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusCreated, code)
}

func (h *AdminHandler) ListDiscounts(c echo.Context) error {
	codes, err := h.discountService.Discounts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, codes)
}

func (h *AdminHandler) DeleteDiscount(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid discount ID"})
	}

	err = h.discountService.Delete(c.Request().Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Discount code not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Discount code removed."})
}
