package repository

import (
	"context"
	"time"

	"estate-office-saas/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, sub *model.Subscription) error
	GetByOfficeID(ctx context.Context, officeID int64) (*model.Subscription, error)
	ApplyPayment(ctx context.Context, tx *gorm.DB, officeID int64, plan model.Plan, periodEnd time.Time) error
	Adjust(ctx context.Context, officeID int64, updates map[string]interface{}) error
}

type subscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepoImpl{
		db: db,
	}
}

func (r *subscriptionRepoImpl) Create(ctx context.Context, tx *gorm.DB, sub *model.Subscription) error {
	return tx.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepoImpl) GetByOfficeID(ctx context.Context, officeID int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Where("office_id = ?", officeID).
		First(&sub).Error

	if err != nil {
		return nil, err
	}

	return &sub, nil
}

// ApplyPayment moves the subscription onto a paid plan. Runs inside the
// caller's transaction together with the payment-record update.
func (r *subscriptionRepoImpl) ApplyPayment(ctx context.Context, tx *gorm.DB, officeID int64, plan model.Plan, periodEnd time.Time) error {
	result := tx.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("office_id = ?", officeID).
		Updates(map[string]interface{}{
			"plan":               plan,
			"status":             model.SubscriptionActive,
			"current_period_end": periodEnd,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *subscriptionRepoImpl) Adjust(ctx context.Context, officeID int64, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("office_id = ?", officeID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
