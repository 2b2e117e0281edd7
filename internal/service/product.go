package service

import (
	"context"

	"github.com/kmazurek/orders-api/internal/models"
	"github.com/kmazurek/orders-api/internal/repo"
	"github.com/kmazurek/orders-api/internal/transport"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	product := &models.Product{
		ProductName: *req.ProductName,
		Price:       *req.Price,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	var product *models.Product
	err := s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		existing, err := tx.GetProduct(ctx, id)
		if err != nil {
			return err
		}

		existing.ProductName = *req.ProductName
		existing.Price = *req.Price

		if err := tx.SaveProduct(ctx, existing); err != nil {
			return err
		}
		product = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct drops the product together with its order associations so the
// join table never references a missing product.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetProduct(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteOrderProductsByProduct(ctx, id); err != nil {
			return err
		}
		return tx.DeleteProduct(ctx, id)
	})
}
