package repository

import (
	"context"

	"estate-office-saas/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	List(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*model.Customer, error)
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepoImpl) List(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*model.Customer, error) {
	var customers []*model.Customer
	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Order("name").
		Find(&customers).Error

	if err != nil {
		return nil, err
	}

	return customers, nil
}
