package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/kmazurek/orders-api/internal/events"
	"github.com/kmazurek/orders-api/internal/logging"
	"github.com/kmazurek/orders-api/internal/service"
	"github.com/kmazurek/orders-api/internal/transport"
)

type CustomerHTTP struct {
	Svc      *service.CustomerService
	Orders   *service.OrderService
	Producer *events.Producer
}

func (h *CustomerHTTP) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customers")

	customers, err := h.Svc.GetCustomers(ctx)
	if err != nil {
		l.Error("get_customers_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot list customers"))
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("get_customer_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	customer, err := h.Svc.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_customer_failed", "status", 404, "customer_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Customer not found"))
		}
		l.Error("get_customer_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot get customer"))
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create_customer")

	var req transport.CustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid body"))
	}

	if errs := req.Validate(); len(errs) > 0 {
		l.Warn("create_customer_failed", "status", 400, "reason", "validation")
		return c.JSON(http.StatusBadRequest, errs)
	}

	customer, err := h.Svc.CreateCustomer(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			l.Warn("create_customer_failed", "status", 400, "reason", "duplicate email")
			return c.JSON(http.StatusBadRequest, transport.ErrorBody("Customer with this email already exists"))
		}
		l.Error("create_customer_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot create customer"))
	}

	publish(c, h.Producer, events.TopicCustomers, fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_created",
		"customerID": customer.ID,
		"email":      customer.Email,
	})

	l.Info("create_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"Message":  "Customer created successfully",
		"customer": customer,
	})
}

func (h *CustomerHTTP) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.update_customer")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("update_customer_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	// Resolve the id before looking at the payload; a missing customer is
	// 404 no matter what the body holds.
	if _, err := h.Svc.GetCustomer(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_customer_failed", "status", 404, "customer_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Customer not found"))
		}
		l.Error("update_customer_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot update customer"))
	}

	var req transport.CustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_customer_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid body"))
	}

	if errs := req.Validate(); len(errs) > 0 {
		l.Warn("update_customer_failed", "status", 400, "reason", "validation")
		return c.JSON(http.StatusBadRequest, errs)
	}

	customer, err := h.Svc.UpdateCustomer(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("update_customer_failed", "status", 404, "customer_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Customer not found"))
		case errors.Is(err, service.ErrConflict):
			l.Warn("update_customer_failed", "status", 400, "reason", "duplicate email")
			return c.JSON(http.StatusBadRequest, transport.ErrorBody("Customer with this email already exists"))
		default:
			l.Error("update_customer_failed", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot update customer"))
		}
	}

	publish(c, h.Producer, events.TopicCustomers, fmt.Sprint(customer.ID), map[string]any{
		"type":       "customer_updated",
		"customerID": customer.ID,
		"email":      customer.Email,
	})

	l.Info("update_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"Message":  "Customer updated successfully",
		"customer": customer,
	})
}

func (h *CustomerHTTP) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.delete_customer")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("delete_customer_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	if err := h.Svc.DeleteCustomer(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("delete_customer_failed", "status", 404, "customer_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Customer not found"))
		case errors.Is(err, service.ErrConflict):
			l.Warn("delete_customer_failed", "status", 400, "reason", "customer has orders", "customer_id", id)
			return c.JSON(http.StatusBadRequest, transport.ErrorBody("Customer has existing orders"))
		default:
			l.Error("delete_customer_failed", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot delete customer"))
		}
	}

	publish(c, h.Producer, events.TopicCustomers, fmt.Sprint(id), map[string]any{
		"type":       "customer_deleted",
		"customerID": id,
	})

	l.Info("delete_customer_success", "customer_id", id)
	return c.JSON(http.StatusOK, map[string]any{
		"Message": "Customer deleted successfully",
	})
}

// GetCustomerOrders lists the orders owned by one customer.
func (h *CustomerHTTP) GetCustomerOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get_customer_orders")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("get_customer_orders_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	orders, err := h.Orders.ListOrdersForCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_customer_orders_failed", "status", 404, "customer_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Customer not found"))
		}
		l.Error("get_customer_orders_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot list orders"))
	}

	return c.JSON(http.StatusOK, transport.NewOrderViews(orders))
}
