package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estate-office-saas/internal/dto"
	"estate-office-saas/internal/model"
	"estate-office-saas/internal/repository"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var ErrInvalidListing = errors.New("invalid listing payload")
var ErrInvalidCustomer = errors.New("invalid customer payload")

// CrmService covers the per-office records agents work with day to day:
// property listings and customer contacts. Every operation is office-scoped
// through the same access resolver the office endpoints use.
type CrmService interface {
	CreateListing(ctx context.Context, actor Actor, officeID int64, req *dto.CreateListingRequest) (*model.Listing, error)
	ListListings(ctx context.Context, actor Actor, officeID int64, kind model.ListingKind) ([]*model.Listing, error)
	CreateCustomer(ctx context.Context, actor Actor, officeID int64, req *dto.CreateCustomerRequest) (*model.Customer, error)
	ListCustomers(ctx context.Context, actor Actor, officeID int64, search string) ([]*model.Customer, error)
}

type crmServiceImpl struct {
	genID        *snowflake.Node
	listingRepo  repository.ListingRepository
	customerRepo repository.CustomerRepository
	offices      OfficeService
}

func NewCrmService(
	genID *snowflake.Node,
	listingRepo repository.ListingRepository,
	customerRepo repository.CustomerRepository,
	offices OfficeService,
) CrmService {
	return &crmServiceImpl{
		genID:        genID,
		listingRepo:  listingRepo,
		customerRepo: customerRepo,
		offices:      offices,
	}
}

func (s *crmServiceImpl) guardOffice(ctx context.Context, actor Actor, officeID int64) error {
	ok, err := s.offices.CanAccessOffice(ctx, actor, officeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOfficeForbidden
	}
	return nil
}

func (s *crmServiceImpl) CreateListing(ctx context.Context, actor Actor, officeID int64, req *dto.CreateListingRequest) (*model.Listing, error) {
	if err := s.guardOffice(ctx, actor, officeID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || req.Price <= 0 {
		return nil, ErrInvalidListing
	}
	if req.Kind != model.ListingSale && req.Kind != model.ListingRent {
		return nil, ErrInvalidListing
	}

	listing := &model.Listing{
		ID:       s.genID.Generate().Int64(),
		OfficeID: officeID,
		Title:    title,
		Kind:     req.Kind,
		Price:    req.Price,
		Status:   "OPEN",
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("store listing: %w", err)
	}

	return listing, nil
}

func (s *crmServiceImpl) ListListings(ctx context.Context, actor Actor, officeID int64, kind model.ListingKind) ([]*model.Listing, error) {
	if err := s.guardOffice(ctx, actor, officeID); err != nil {
		return nil, err
	}

	scopes := []func(*gorm.DB) *gorm.DB{
		OfficeFilter("office_id", []int64{officeID}),
	}
	if kind != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("kind = ?", kind)
		})
	}

	return s.listingRepo.List(ctx, scopes...)
}

func (s *crmServiceImpl) CreateCustomer(ctx context.Context, actor Actor, officeID int64, req *dto.CreateCustomerRequest) (*model.Customer, error) {
	if err := s.guardOffice(ctx, actor, officeID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidCustomer
	}

	customer := &model.Customer{
		ID:       s.genID.Generate().Int64(),
		OfficeID: officeID,
		Name:     name,
		Phone:    req.Phone,
		Budget:   req.Budget,
		Note:     req.Note,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("store customer: %w", err)
	}

	return customer, nil
}

func (s *crmServiceImpl) ListCustomers(ctx context.Context, actor Actor, officeID int64, search string) ([]*model.Customer, error) {
	if err := s.guardOffice(ctx, actor, officeID); err != nil {
		return nil, err
	}

	return s.customerRepo.List(ctx,
		OfficeFilter("office_id", []int64{officeID}),
		NameSearch("name", search),
	)
}
