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

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("get_order_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_order_failed", "status", 404, "order_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Order not found"))
		}
		l.Error("get_order_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot get order"))
	}

	return c.JSON(http.StatusOK, transport.NewOrderView(order))
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.OrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid body"))
	}

	orderDate, errs := req.Validate()
	if len(errs) > 0 {
		l.Warn("create_order_failed", "status", 400, "reason", "validation")
		return c.JSON(http.StatusBadRequest, errs)
	}

	order, err := h.Svc.CreateOrder(ctx, orderDate, *req.CustomerID)
	if err != nil {
		// A nonexistent customer_id is a bad payload, not a bad path,
		// hence 400 and not 404.
		if errors.Is(err, service.ErrReference) {
			l.Warn("create_order_failed", "status", 400, "reason", "customer missing", "customer_id", *req.CustomerID)
			return c.JSON(http.StatusBadRequest, transport.ErrorBody("Customer not found"))
		}
		l.Error("create_order_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot create order"))
	}

	publish(c, h.Producer, events.TopicOrders, fmt.Sprint(order.ID), map[string]any{
		"type":       "order_created",
		"orderID":    order.ID,
		"customerID": order.CustomerID,
	})

	l.Info("create_order_success", "order_id", order.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"Message": "Order created successfully",
		"order":   transport.NewOrderView(order),
	})
}

func (h *OrderHTTP) AddProductToOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.add_product_to_order")

	orderID, err := parseID(c, "id")
	if err != nil {
		l.Warn("add_product_failed", "status", 400, "reason", "bad order id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}
	productID, err := parseID(c, "product_id")
	if err != nil {
		l.Warn("add_product_failed", "status", 400, "reason", "bad product id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	if err := h.Svc.AddProductToOrder(ctx, orderID, productID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("add_product_failed", "status", 404, "order_id", orderID, "product_id", productID)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Order or Product not found"))
		case errors.Is(err, service.ErrConflict):
			l.Warn("add_product_failed", "status", 400, "reason", "duplicate pair", "order_id", orderID, "product_id", productID)
			return c.JSON(http.StatusBadRequest, transport.ErrorBody("Product already in order"))
		default:
			l.Error("add_product_failed", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot add product to order"))
		}
	}

	publish(c, h.Producer, events.TopicOrders, fmt.Sprint(orderID), map[string]any{
		"type":      "order_product_added",
		"orderID":   orderID,
		"productID": productID,
	})

	l.Info("add_product_success", "order_id", orderID, "product_id", productID)
	return c.JSON(http.StatusOK, map[string]any{
		"Message": "Product added to order successfully",
	})
}

// GetOrderProducts lists the products attached to one order.
func (h *OrderHTTP) GetOrderProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order_products")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("get_order_products_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	products, err := h.Svc.ListProductsInOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_order_products_failed", "status", 404, "order_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Order not found"))
		}
		l.Error("get_order_products_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot list products"))
	}

	return c.JSON(http.StatusOK, products)
}
