package repository

import (
	"context"
	"time"

	"estate-office-saas/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, record *model.PaymentRecord) error
	FindByAuthority(ctx context.Context, authority string) (*model.PaymentRecord, error)
	MarkVerified(ctx context.Context, tx *gorm.DB, recordID, refID string) error
	MarkFailed(ctx context.Context, recordID string) error
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, record *model.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *paymentRepoImpl) FindByAuthority(ctx context.Context, authority string) (*model.PaymentRecord, error) {
	var record model.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("authority = ?", authority).
		First(&record).Error

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// MarkVerified only fires on a still-PENDING record so a replayed callback
// can never flip the same record twice.
func (r *paymentRepoImpl) MarkVerified(ctx context.Context, tx *gorm.DB, recordID, refID string) error {
	result := tx.WithContext(ctx).
		Model(&model.PaymentRecord{}).
		Where("id = ? AND status = ?", recordID, model.PaymentPending).
		Updates(map[string]interface{}{
			"status":     model.PaymentVerified,
			"ref_id":     refID,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *paymentRepoImpl) MarkFailed(ctx context.Context, recordID string) error {
	return r.db.WithContext(ctx).
		Model(&model.PaymentRecord{}).
		Where("id = ? AND status = ?", recordID, model.PaymentPending).
		Updates(map[string]interface{}{
			"status":     model.PaymentFailed,
			"updated_at": time.Now(),
		}).Error
}
