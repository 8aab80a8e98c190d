package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
)

// CustomerHandler exposes customer registration and listing over HTTP.
type CustomerHandler struct {
	Desk *hotel.Desk
}

// NewCustomerHandler constructs a CustomerHandler bound to the given desk.
func NewCustomerHandler(desk *hotel.Desk) *CustomerHandler {
	if desk == nil {
		panic("nil desk passed to NewCustomerHandler")
	}
	return &CustomerHandler{Desk: desk}
}

// CreateCustomer handles POST /v1/customers.  Customer names are
// business keys, so registering an existing name yields 409.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var body struct {
		Name          string `json:"name"`
		ContactInfo   string `json:"contact_info"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	customer, err := h.Desk.AddCustomer(c.Request().Context(), body.Name, body.ContactInfo, body.PaymentMethod)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// ListCustomers handles GET /v1/customers and returns all customers.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"customers": h.Desk.Customers()})
}
