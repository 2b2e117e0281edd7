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

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer *events.Producer
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	products, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot list products"))
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_failed", "status", 404, "product_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Product not found"))
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot get product"))
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid body"))
	}

	if errs := req.Validate(); len(errs) > 0 {
		l.Warn("create_product_failed", "status", 400, "reason", "validation")
		return c.JSON(http.StatusBadRequest, errs)
	}

	product, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Error("create_product_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot create product"))
	}

	publish(c, h.Producer, events.TopicProducts, fmt.Sprint(product.ID), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.ProductName,
	})

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"Message": "Product created successfully",
		"product": product,
	})
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	// Resolve the id before looking at the payload; a missing product is
	// 404 no matter what the body holds.
	if _, err := h.Svc.GetProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_product_failed", "status", 404, "product_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Product not found"))
		}
		l.Error("update_product_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot update product"))
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid body"))
	}

	if errs := req.Validate(); len(errs) > 0 {
		l.Warn("update_product_failed", "status", 400, "reason", "validation")
		return c.JSON(http.StatusBadRequest, errs)
	}

	product, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_product_failed", "status", 404, "product_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Product not found"))
		}
		l.Error("update_product_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot update product"))
	}

	publish(c, h.Producer, events.TopicProducts, fmt.Sprint(product.ID), map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.ProductName,
	})

	l.Info("update_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, map[string]any{
		"Message": "Product updated successfully",
		"product": product,
	})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c, "id")
	if err != nil {
		l.Warn("delete_product_failed", "status", 400, "reason", "bad id", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorBody("invalid id"))
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_product_failed", "status", 404, "product_id", id)
			return c.JSON(http.StatusNotFound, transport.ErrorBody("Product not found"))
		}
		l.Error("delete_product_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorBody("cannot delete product"))
	}

	publish(c, h.Producer, events.TopicProducts, fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, map[string]any{
		"Message": "Product deleted successfully",
	})
}
