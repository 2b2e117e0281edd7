package transport

import (
	"time"

	"github.com/kmazurek/orders-api/internal/models"
)

// Pointer fields distinguish an absent key from a zero value, so required
// checks and PUT merges see what the client actually sent.
type CustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

type ProductRequest struct {
	ProductName *string  `json:"product_name"`
	Price       *float64 `json:"price"`
}

type OrderRequest struct {
	OrderDate  *string `json:"order_date"`
	CustomerID *uint   `json:"customer_id"`
}

// OrderView is the external order representation; dates go out ISO even
// though they come in as MM.DD.YYYY.
type OrderView struct {
	ID         uint   `json:"id"`
	OrderDate  string `json:"order_date"`
	CustomerID uint   `json:"customer_id"`
}

func NewOrderView(o *models.Order) OrderView {
	return OrderView{
		ID:         o.ID,
		OrderDate:  o.OrderDate.Format(time.DateOnly),
		CustomerID: o.CustomerID,
	}
}

func NewOrderViews(orders []models.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, NewOrderView(&orders[i]))
	}
	return views
}

func ErrorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
