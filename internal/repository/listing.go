package repository

import (
	"context"

	"estate-office-saas/internal/model"

	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	List(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*model.Listing, error)
}

type listingRepoImpl struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepoImpl{
		db: db,
	}
}

func (r *listingRepoImpl) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepoImpl) List(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*model.Listing, error) {
	var listings []*model.Listing
	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Order("created_at DESC").
		Find(&listings).Error

	if err != nil {
		return nil, err
	}

	return listings, nil
}
