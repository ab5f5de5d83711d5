package handlers

import (
	"net/http"

	"miniorder/internal/common"
	"miniorder/internal/models"
	"miniorder/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandlers handles HTTP requests for customers
type CustomerHandlers struct {
	customerService services.CustomerService
}

// NewCustomerHandlers creates a new customer handlers instance
func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{
		customerService: customerService,
	}
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customerService.GetAll(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to list customers: "+err.Error())
	}
	return c.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /api/customers/:id
func (h *CustomerHandlers) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := h.customerService.GetByID(ctx, c.Param("id"))
	if err != nil {
		return common.SendServerError(c, "Failed to retrieve customer: "+err.Error())
	}
	if customer == nil {
		return common.SendNotFoundError(c, "Customer")
	}
	return c.JSON(http.StatusOK, customer)
}

// SearchCustomers handles GET /api/customers/search. Email wins over phone,
// phone over name; with no filter, every customer is returned.
func (h *CustomerHandlers) SearchCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	switch {
	case c.QueryParam("email") != "":
		customer, err := h.customerService.GetByEmail(ctx, c.QueryParam("email"))
		if err != nil {
			return common.SendServerError(c, "Failed to search customers: "+err.Error())
		}
		return c.JSON(http.StatusOK, collectCustomers(customer))
	case c.QueryParam("phone") != "":
		customer, err := h.customerService.GetByPhone(ctx, c.QueryParam("phone"))
		if err != nil {
			return common.SendServerError(c, "Failed to search customers: "+err.Error())
		}
		return c.JSON(http.StatusOK, collectCustomers(customer))
	case c.QueryParam("name") != "":
		customers, err := h.customerService.FindByName(ctx, c.QueryParam("name"))
		if err != nil {
			return common.SendServerError(c, "Failed to search customers: "+err.Error())
		}
		return c.JSON(http.StatusOK, customers)
	default:
		customers, err := h.customerService.GetAll(ctx)
		if err != nil {
			return common.SendServerError(c, "Failed to search customers: "+err.Error())
		}
		return c.JSON(http.StatusOK, customers)
	}
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.customerService.Create(ctx, &customer); err != nil {
		return common.SendServerError(c, "Failed to create customer: "+err.Error())
	}
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /api/customers/:id
func (h *CustomerHandlers) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var details models.Customer
	if err := c.Bind(&details); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	customer, err := h.customerService.Update(ctx, c.Param("id"), &details)
	if err != nil {
		return common.SendServerError(c, "Failed to update customer: "+err.Error())
	}
	if customer == nil {
		return common.SendNotFoundError(c, "Customer")
	}
	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/customers/:id. Also deletes every
// order carrying this customer's email in its embedded snapshot.
func (h *CustomerHandlers) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.customerService.Delete(ctx, c.Param("id")); err != nil {
		return common.SendServerError(c, "Failed to delete customer: "+err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// collectCustomers wraps an optional single lookup result into the list
// shape the search endpoint always returns.
func collectCustomers(customer *models.Customer) []*models.Customer {
	if customer == nil {
		return []*models.Customer{}
	}
	return []*models.Customer{customer}
}
