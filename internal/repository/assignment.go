package repository

import (
	"context"

	"estate-office-saas/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository interface {
	ListOfficeIDs(ctx context.Context, adminID int64) ([]int64, error)
	Assign(ctx context.Context, adminID, officeID int64) error
}

type assignmentRepoImpl struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepoImpl{
		db: db,
	}
}

// ListOfficeIDs always returns a non-nil slice; an admin with no
// assignments gets an empty one, not nil.
func (r *assignmentRepoImpl) ListOfficeIDs(ctx context.Context, adminID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.AdminOfficeAssignment{}).
		Where("admin_id = ?", adminID).
		Pluck("office_id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *assignmentRepoImpl) Assign(ctx context.Context, adminID, officeID int64) error {
	return r.db.WithContext(ctx).Create(&model.AdminOfficeAssignment{
		AdminID:  adminID,
		OfficeID: officeID,
	}).Error
}
