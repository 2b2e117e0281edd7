package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CustomerHandler *CustomerHTTP
	ProductHandler  *ProductHTTP
	OrderHandler    *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	customers := e.Group("/customers")
	customers.GET("", d.CustomerHandler.GetCustomers)
	customers.POST("", d.CustomerHandler.CreateCustomer)
	customers.GET("/:id", d.CustomerHandler.GetCustomer)
	customers.PUT("/:id", d.CustomerHandler.UpdateCustomer)
	customers.DELETE("/:id", d.CustomerHandler.DeleteCustomer)
	customers.GET("/:id/orders", d.CustomerHandler.GetCustomerOrders)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := e.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:id/add_product/:product_id", d.OrderHandler.AddProductToOrder)
	orders.GET("/:id/products", d.OrderHandler.GetOrderProducts)
}
