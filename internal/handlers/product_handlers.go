package handlers

import (
	"errors"
	"net/http"

	"miniorder/internal/common"
	"miniorder/internal/models"
	"miniorder/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles HTTP requests for products
type ProductHandlers struct {
	productService services.ProductService
}

// NewProductHandlers creates a new product handlers instance
func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
	}
}

// ListProducts handles GET /api/products with optional name and category
// filters; name wins when both are given.
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	if name := c.QueryParam("name"); name != "" {
		product, err := h.productService.GetByName(ctx, name)
		if err != nil {
			return common.SendServerError(c, "Failed to list products: "+err.Error())
		}
		if product == nil {
			return c.JSON(http.StatusOK, []*models.Product{})
		}
		return c.JSON(http.StatusOK, []*models.Product{product})
	}

	if category := c.QueryParam("category"); category != "" {
		products, err := h.productService.FindByCategory(ctx, category)
		if err != nil {
			return common.SendServerError(c, "Failed to list products: "+err.Error())
		}
		return c.JSON(http.StatusOK, products)
	}

	products, err := h.productService.GetAll(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to list products: "+err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.productService.GetByID(ctx, c.Param("id"))
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve product: "+err.Error())
	}
	if product == nil {
		return common.SendNotFoundError(c, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.productService.Create(ctx, &product); err != nil {
		if errors.Is(err, services.ErrNegativePrice) {
			return common.SendValidationError(c, "price", err.Error())
		}
		return common.SendServerError(c, "Failed to create product: "+err.Error())
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var details models.Product
	if err := c.Bind(&details); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	product, err := h.productService.Update(ctx, c.Param("id"), &details)
	if err != nil {
		if errors.Is(err, services.ErrNegativePrice) {
			return common.SendValidationError(c, "price", err.Error())
		}
		return common.SendServerError(c, "Failed to update product: "+err.Error())
	}
	if product == nil {
		return common.SendNotFoundError(c, "Product")
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id. Previously created orders
// keep their product snapshots.
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.productService.Delete(ctx, c.Param("id")); err != nil {
		return common.SendServerError(c, "Failed to delete product: "+err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
