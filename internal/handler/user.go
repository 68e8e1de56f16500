package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/dto"
	"storefront-api/internal/middleware"
	"storefront-api/internal/model"
	"storefront-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c echo.Context) error {
	return h.register(c, model.RoleCustomer)
}

// RegisterAdmin creates an admin account; the route is reachable without a
// token, matching the bootstrap flow of the admin surface.
func (h *UserHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, model.RoleAdmin)
}

func (h *UserHandler) register(c echo.Context, role model.Role) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	err := h.userService.Register(c.Request().Context(), req.Username, req.Email, req.Password, role)
	if errors.Is(err, service.ErrUserExists) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username or email already exists"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully"})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	signed, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email or password is invalid"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{Token: signed})
}

func (h *UserHandler) AddFavorite(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)

	favorites, err := h.userService.AddFavorite(c.Request().Context(), id.UserID, c.Param("productId"))
	if errors.Is(err, service.ErrProductNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
	}
	if errors.Is(err, service.ErrAlreadyFavorite) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product has already been added."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":          "Product added to favorites",
		"favoriteProducts": productResponses(favorites),
	})
}

func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)

	favorites, err := h.userService.RemoveFavorite(c.Request().Context(), id.UserID, c.Param("productId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":          "Product removed from favorites",
		"favoriteProducts": productResponses(favorites),
	})
}

func (h *UserHandler) Favorites(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)

	favorites, err := h.userService.Favorites(c.Request().Context(), id.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"favoriteProducts": productResponses(favorites)})
}

func productResponses(products []*model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = dto.NewProductResponse(p)
	}
	return out
}
