package repo

import (
	"context"

	"github.com/kmazurek/orders-api/internal/models"
)

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) ListOrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) CountOrdersByCustomer(ctx context.Context, customerID uint) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRepo) CreateOrderProduct(ctx context.Context, link *models.OrderProduct) error {
	return r.DB.WithContext(ctx).Create(link).Error
}

func (r *GormRepo) CountOrderProduct(ctx context.Context, orderID, productID uint) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).
		Model(&models.OrderProduct{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListProductsInOrder resolves the association with an explicit join rather
// than a preloaded collection.
func (r *GormRepo) ListProductsInOrder(ctx context.Context, orderID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Where("order_products.order_id = ?", orderID).
		Order("products.id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
