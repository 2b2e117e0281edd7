package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kmazurek/orders-api/internal/models"
	"github.com/kmazurek/orders-api/internal/repo"
	"github.com/kmazurek/orders-api/internal/transport"
)

type CustomerService struct {
	Repo *repo.GormRepo
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return s.Repo.GetCustomer(ctx, id)
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.GetCustomers(ctx)
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req transport.CustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		Name:  *req.Name,
		Email: *req.Email,
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	err := s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		count, err := tx.CountCustomersByEmail(ctx, customer.Email, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: email taken", ErrConflict)
		}
		return tx.CreateCustomer(ctx, customer)
	})
	if err != nil {
		// A concurrent insert can slip past the pre-check; the unique
		// index catches it and it must not surface as a 500.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email taken", ErrConflict)
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, req transport.CustomerRequest) (*models.Customer, error) {
	var customer *models.Customer
	err := s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		existing, err := tx.GetCustomer(ctx, id)
		if err != nil {
			return err
		}

		count, err := tx.CountCustomersByEmail(ctx, *req.Email, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: email taken", ErrConflict)
		}

		existing.Name = *req.Name
		existing.Email = *req.Email
		if req.Address != nil {
			existing.Address = *req.Address
		}

		if err := tx.SaveCustomer(ctx, existing); err != nil {
			return err
		}
		customer = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email taken", ErrConflict)
		}
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer refuses to delete a customer that still owns orders; the
// Order.CustomerID foreign key must keep pointing at a live row.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetCustomer(ctx, id); err != nil {
			return err
		}
		count, err := tx.CountOrdersByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: customer has orders", ErrConflict)
		}
		return tx.DeleteCustomer(ctx, id)
	})
}
