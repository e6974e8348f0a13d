package repository

import (
	"context"

	"estate-office-saas/internal/model"

	"gorm.io/gorm"
)

type OfficeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, office *model.Office) error
	FindByID(ctx context.Context, officeID int64) (*model.Office, error)
	List(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*model.Office, error)
}

type officeRepoImpl struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &officeRepoImpl{
		db: db,
	}
}

func (r *officeRepoImpl) Create(ctx context.Context, tx *gorm.DB, office *model.Office) error {
	return tx.WithContext(ctx).Create(office).Error
}

func (r *officeRepoImpl) FindByID(ctx context.Context, officeID int64) (*model.Office, error) {
	var office model.Office
	err := r.db.WithContext(ctx).
		Where("id = ?", officeID).
		First(&office).Error

	if err != nil {
		return nil, err
	}

	return &office, nil
}

func (r *officeRepoImpl) List(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*model.Office, error) {
	var offices []*model.Office
	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Order("name").
		Find(&offices).Error

	if err != nil {
		return nil, err
	}

	return offices, nil
}
