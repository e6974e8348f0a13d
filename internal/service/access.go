package service

import (
	"context"

	"estate-office-saas/internal/model"
	"estate-office-saas/internal/repository"

	"gorm.io/gorm"
)

// Actor is the authenticated admin making a request.
type Actor struct {
	AdminID int64
	Role    model.AdminRole
}

type AccessService interface {
	// AccessibleOfficeIDs returns nil for an unrestricted actor and an
	// explicit (possibly empty) slice for a scoped one. nil and empty mean
	// opposite things: nil is "everything", empty is "nothing".
	AccessibleOfficeIDs(ctx context.Context, actor Actor) ([]int64, error)
}

type accessServiceImpl struct {
	assignmentRepo repository.AssignmentRepository
}

func NewAccessService(assignmentRepo repository.AssignmentRepository) AccessService {
	return &accessServiceImpl{
		assignmentRepo: assignmentRepo,
	}
}

func (s *accessServiceImpl) AccessibleOfficeIDs(ctx context.Context, actor Actor) ([]int64, error) {
	if actor.Role == model.RoleSuperAdmin {
		return nil, nil
	}

	return s.assignmentRepo.ListOfficeIDs(ctx, actor.AdminID)
}

// OfficeFilter turns an accessible-office result into a gorm scope on the
// given column. nil ids adds no constraint; an empty slice matches nothing.
// Stacks with other scopes without touching them.
func OfficeFilter(column string, ids []int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ids == nil {
			return db
		}
		return db.Where(column+" IN ?", ids)
	}
}

// NameSearch is a case-blind substring match used by list endpoints.
func NameSearch(column, term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where(column+" LIKE ?", "%"+term+"%")
	}
}
