package repository

import (
	"context"

	"estate-office-saas/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	FindByID(ctx context.Context, adminID int64) (*model.AdminUser, error)
}

type adminRepoImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepoImpl{
		db: db,
	}
}

func (r *adminRepoImpl) FindByID(ctx context.Context, adminID int64) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.db.WithContext(ctx).
		Where("id = ?", adminID).
		First(&admin).Error

	if err != nil {
		return nil, err
	}

	return &admin, nil
}
