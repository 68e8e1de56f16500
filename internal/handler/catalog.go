package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	product, err := h.catalogService.CreateProduct(c.Request().Context(),
		req.Name, req.Price, req.CategoryID, req.Description, req.Image)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	return c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var categoryID *uint
	if raw := c.QueryParam("category"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category filter"})
		}
		id := uint(parsed)
		categoryID = &id
	}

	products, err := h.catalogService.Products(c.Request().Context(), categoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = dto.NewProductResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogService.Product(c.Request().Context(), c.Param("id"))
	if errors.Is(err, service.ErrProductNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	category, err := h.catalogService.CreateCategory(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error adding category", "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.Categories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error retrieving categories"})
	}

	return c.JSON(http.StatusOK, categories)
}
