package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"miniorder/internal/common"
	"miniorder/internal/models"
	"miniorder/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderService
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{
		orderService: orderService,
	}
}

// GetOrders handles GET /api/orders. A minTotal filter wins over a date
// range; the date range applies only when both bounds are present.
func (h *OrderHandlers) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	if minTotalParam := c.QueryParam("minTotal"); minTotalParam != "" {
		minTotal, err := strconv.ParseFloat(minTotalParam, 64)
		if err != nil {
			return common.SendValidationError(c, "minTotal", "must be a number")
		}
		orders, err := h.orderService.GetByMinTotal(ctx, minTotal)
		if err != nil {
			return common.SendServerError(c, "Failed to retrieve orders: "+err.Error())
		}
		return c.JSON(http.StatusOK, orders)
	}

	fromParam := c.QueryParam("fromDate")
	toParam := c.QueryParam("toDate")
	if fromParam != "" && toParam != "" {
		from, err := common.ParseISODate(fromParam, "fromDate")
		if err != nil {
			return common.SendValidationError(c, "fromDate", err.Error())
		}
		to, err := common.ParseISODate(toParam, "toDate")
		if err != nil {
			return common.SendValidationError(c, "toDate", err.Error())
		}
		orders, err := h.orderService.GetByDateRange(ctx, from, to)
		if err != nil {
			return common.SendServerError(c, "Failed to retrieve orders: "+err.Error())
		}
		return c.JSON(http.StatusOK, orders)
	}

	orders, err := h.orderService.GetAll(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve orders: "+err.Error())
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetByID(ctx, c.Param("id"))
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve order: "+err.Error())
	}
	if order == nil {
		return common.SendNotFoundError(c, "Order")
	}
	return c.JSON(http.StatusOK, order)
}

// SearchOrders handles GET /api/orders/search. An email filter wins over a
// phone filter; with neither, every order is returned.
func (h *OrderHandlers) SearchOrders(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		orders []*models.Order
		err    error
	)
	switch {
	case c.QueryParam("email") != "":
		orders, err = h.orderService.GetByCustomerEmail(ctx, c.QueryParam("email"))
	case c.QueryParam("phone") != "":
		orders, err = h.orderService.GetByCustomerPhone(ctx, c.QueryParam("phone"))
	default:
		orders, err = h.orderService.GetAll(ctx)
	}
	if err != nil {
		return common.SendServerError(c, "Failed to search orders: "+err.Error())
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders. The body carries a customer id and
// per-item product ids; the response carries the fully resolved order.
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var order models.Order
	if err := c.Bind(&order); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	created, err := h.orderService.Create(ctx, &order)
	if err != nil {
		var productErr *services.ProductNotFoundError
		var quantityErr *services.InvalidQuantityError
		switch {
		case errors.Is(err, services.ErrCustomerNotFound),
			errors.As(err, &productErr),
			errors.As(err, &quantityErr):
			return common.SendClientError(c, err.Error())
		default:
			return common.SendServerError(c, "Failed to create order: "+err.Error())
		}
	}

	return c.JSON(http.StatusOK, created)
}

// DeleteOrder handles DELETE /api/orders/:id. Deleting an absent order is
// not an error.
func (h *OrderHandlers) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orderService.Delete(ctx, c.Param("id")); err != nil {
		return common.SendServerError(c, "Failed to delete order: "+err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
