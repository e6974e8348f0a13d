package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estate-office-saas/internal/dto"
	"estate-office-saas/internal/model"
	"estate-office-saas/internal/repository"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrOfficeForbidden = errors.New("office not accessible to actor")
	ErrInvalidOffice   = errors.New("invalid office payload")
)

const trialLength = 14 * 24 * time.Hour

type OfficeService interface {
	CreateOffice(ctx context.Context, req *dto.CreateOfficeRequest) (*model.Office, error)
	GetOffice(ctx context.Context, actor Actor, officeID int64) (*model.Office, error)
	ListOffices(ctx context.Context, actor Actor, search string) ([]*model.Office, error)
	CanAccessOffice(ctx context.Context, actor Actor, officeID int64) (bool, error)
}

type officeServiceImpl struct {
	db               *gorm.DB
	genID            *snowflake.Node
	officeRepo       repository.OfficeRepository
	subscriptionRepo repository.SubscriptionRepository
	access           AccessService
	log              *zap.Logger
	now              func() time.Time
}

func NewOfficeService(
	db *gorm.DB,
	genID *snowflake.Node,
	officeRepo repository.OfficeRepository,
	subscriptionRepo repository.SubscriptionRepository,
	access AccessService,
	log *zap.Logger,
) OfficeService {
	return &officeServiceImpl{
		db:               db,
		genID:            genID,
		officeRepo:       officeRepo,
		subscriptionRepo: subscriptionRepo,
		access:           access,
		log:              log,
		now:              time.Now,
	}
}

// CreateOffice provisions the tenant and its single TRIAL subscription in one
// transaction. One subscription per office is an invariant from here on.
func (s *officeServiceImpl) CreateOffice(ctx context.Context, req *dto.CreateOfficeRequest) (*model.Office, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidOffice
	}

	office := &model.Office{
		ID:      s.genID.Generate().Int64(),
		Name:    name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	trialEnds := s.now().Add(trialLength)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.officeRepo.Create(ctx, tx, office); err != nil {
			return fmt.Errorf("store office: %w", err)
		}

		sub := &model.Subscription{
			OfficeID:    office.ID,
			Plan:        model.PlanTrial,
			Status:      model.SubscriptionActive,
			TrialEndsAt: &trialEnds,
		}
		if err := s.subscriptionRepo.Create(ctx, tx, sub); err != nil {
			return fmt.Errorf("provision trial subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("office created",
		zap.Int64("office_id", office.ID), zap.String("name", office.Name))

	return office, nil
}

func (s *officeServiceImpl) GetOffice(ctx context.Context, actor Actor, officeID int64) (*model.Office, error) {
	ok, err := s.CanAccessOffice(ctx, actor, officeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOfficeForbidden
	}

	return s.officeRepo.FindByID(ctx, officeID)
}

func (s *officeServiceImpl) ListOffices(ctx context.Context, actor Actor, search string) ([]*model.Office, error) {
	ids, err := s.access.AccessibleOfficeIDs(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("resolve accessible offices: %w", err)
	}

	return s.officeRepo.List(ctx,
		OfficeFilter("id", ids),
		NameSearch("name", search),
	)
}

func (s *officeServiceImpl) CanAccessOffice(ctx context.Context, actor Actor, officeID int64) (bool, error) {
	ids, err := s.access.AccessibleOfficeIDs(ctx, actor)
	if err != nil {
		return false, fmt.Errorf("resolve accessible offices: %w", err)
	}
	if ids == nil {
		return true, nil
	}

	for _, id := range ids {
		if id == officeID {
			return true, nil
		}
	}
	return false, nil
}
