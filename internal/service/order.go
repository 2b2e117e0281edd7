package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kmazurek/orders-api/internal/models"
	"github.com/kmazurek/orders-api/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.Repo.GetOrder(ctx, id)
}

// CreateOrder checks the referenced customer inside the same transaction as
// the insert. A missing customer is a bad payload reference, not a missing
// path resource, and comes back as ErrReference.
func (s *OrderService) CreateOrder(ctx context.Context, orderDate time.Time, customerID uint) (*models.Order, error) {
	order := &models.Order{
		OrderDate:  orderDate,
		CustomerID: customerID,
	}

	err := s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetCustomer(ctx, customerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %d", ErrReference, customerID)
			}
			return err
		}
		return tx.CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AddProductToOrder attaches a product to an order once. A second attempt on
// the same pair is rejected, not merged.
func (s *OrderService) AddProductToOrder(ctx context.Context, orderID, productID uint) error {
	err := s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetOrder(ctx, orderID); err != nil {
			return err
		}
		if _, err := tx.GetProduct(ctx, productID); err != nil {
			return err
		}

		count, err := tx.CountOrderProduct(ctx, orderID, productID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: product already in order", ErrConflict)
		}

		return tx.CreateOrderProduct(ctx, &models.OrderProduct{
			OrderID:   orderID,
			ProductID: productID,
		})
	})
	// The composite primary key backs the pre-check up under concurrency.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: product already in order", ErrConflict)
	}
	return err
}

func (s *OrderService) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	if _, err := s.Repo.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	return s.Repo.ListOrdersByCustomer(ctx, customerID)
}

func (s *OrderService) ListProductsInOrder(ctx context.Context, orderID uint) ([]models.Product, error) {
	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.Repo.ListProductsInOrder(ctx, orderID)
}
