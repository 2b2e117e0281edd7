package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/kmazurek/orders-api/internal/models"
)

func (r *GormRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer := models.Customer{}
	if err := r.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepo) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return r.DB.WithContext(ctx).Create(customer).Error
}

func (r *GormRepo) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	return r.DB.WithContext(ctx).Save(customer).Error
}

func (r *GormRepo) DeleteCustomer(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountCustomersByEmail counts rows holding email, skipping excludeID so an
// update does not collide with its own row.
func (r *GormRepo) CountCustomersByEmail(ctx context.Context, email string, excludeID uint) (int64, error) {
	var count int64
	q := r.DB.WithContext(ctx).Model(&models.Customer{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
