package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"estate-office-saas/internal/dto"
	"estate-office-saas/internal/model"
	"estate-office-saas/internal/repository"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupOfficeService(t *testing.T) (*gorm.DB, OfficeService, repository.AssignmentRepository) {
	t.Helper()

	db := setupTestDB(t)
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	assignments := repository.NewAssignmentRepository(db)
	svc := NewOfficeService(
		db,
		node,
		repository.NewOfficeRepository(db),
		repository.NewSubscriptionRepository(db),
		NewAccessService(assignments),
		zap.NewNop(),
	)

	return db, svc, assignments
}

func TestCreateOfficeProvisionsTrial(t *testing.T) {
	db, svc, _ := setupOfficeService(t)

	office, err := svc.CreateOffice(context.Background(), &dto.CreateOfficeRequest{
		Name:  "Pars Realty",
		Phone: "021-1234567",
	})
	if err != nil {
		t.Fatalf("create office: %v", err)
	}

	var sub model.Subscription
	if err := db.Where("office_id = ?", office.ID).First(&sub).Error; err != nil {
		t.Fatalf("subscription not provisioned: %v", err)
	}
	if sub.Plan != model.PlanTrial || sub.Status != model.SubscriptionActive {
		t.Fatalf("expected TRIAL/ACTIVE, got %s/%s", sub.Plan, sub.Status)
	}
	if sub.TrialEndsAt == nil || !sub.TrialEndsAt.After(time.Now()) {
		t.Fatalf("trial end not set in the future: %v", sub.TrialEndsAt)
	}
	if sub.CurrentPeriodEnd != nil {
		t.Fatalf("trial must not carry a paid period end")
	}
}

func TestCreateOfficeRequiresName(t *testing.T) {
	_, svc, _ := setupOfficeService(t)

	if _, err := svc.CreateOffice(context.Background(), &dto.CreateOfficeRequest{Name: "   "}); !errors.Is(err, ErrInvalidOffice) {
		t.Fatalf("expected ErrInvalidOffice, got %v", err)
	}
}

func TestListOfficesAppliesScope(t *testing.T) {
	db, svc, assignments := setupOfficeService(t)

	offices := []model.Office{
		{ID: 1, Name: "North Branch"},
		{ID: 2, Name: "South Branch"},
		{ID: 3, Name: "West Branch"},
	}
	if err := db.Create(&offices).Error; err != nil {
		t.Fatalf("seed offices: %v", err)
	}
	if err := assignments.Assign(context.Background(), 7, 2); err != nil {
		t.Fatalf("assign: %v", err)
	}

	all, err := svc.ListOffices(context.Background(), Actor{AdminID: 9, Role: model.RoleSuperAdmin}, "")
	if err != nil {
		t.Fatalf("list as super admin: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("super admin should see all offices, got %d", len(all))
	}

	scoped, err := svc.ListOffices(context.Background(), Actor{AdminID: 7, Role: model.RoleOfficeAdmin}, "")
	if err != nil {
		t.Fatalf("list as office admin: %v", err)
	}
	if len(scoped) != 1 || scoped[0].ID != 2 {
		t.Fatalf("office admin should see only office 2, got %v", scoped)
	}

	none, err := svc.ListOffices(context.Background(), Actor{AdminID: 8, Role: model.RoleOfficeAdmin}, "")
	if err != nil {
		t.Fatalf("list with no assignments: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("unassigned admin must see nothing, got %d", len(none))
	}
}

func TestCanAccessOffice(t *testing.T) {
	_, svc, assignments := setupOfficeService(t)

	if err := assignments.Assign(context.Background(), 7, 2); err != nil {
		t.Fatalf("assign: %v", err)
	}

	ok, err := svc.CanAccessOffice(context.Background(), Actor{AdminID: 7, Role: model.RoleOfficeAdmin}, 2)
	if err != nil || !ok {
		t.Fatalf("expected access to assigned office, ok=%v err=%v", ok, err)
	}

	ok, err = svc.CanAccessOffice(context.Background(), Actor{AdminID: 7, Role: model.RoleOfficeAdmin}, 3)
	if err != nil || ok {
		t.Fatalf("expected no access to unassigned office, ok=%v err=%v", ok, err)
	}

	ok, err = svc.CanAccessOffice(context.Background(), Actor{AdminID: 1, Role: model.RoleSuperAdmin}, 3)
	if err != nil || !ok {
		t.Fatalf("super admin must access any office, ok=%v err=%v", ok, err)
	}
}
