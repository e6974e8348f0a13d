package service

import (
	"errors"
	"testing"

	"estate-office-saas/internal/model"
)

func TestPlanPriceIncludesVAT(t *testing.T) {
	small, err := PlanPrice(model.PlanSmall)
	if err != nil {
		t.Fatalf("small plan price: %v", err)
	}
	if small != 5_341_000 {
		t.Fatalf("expected 4,900,000 + 9%% VAT = 5,341,000, got %d", small)
	}

	large, err := PlanPrice(model.PlanLarge)
	if err != nil {
		t.Fatalf("large plan price: %v", err)
	}
	if large != 10_791_000 {
		t.Fatalf("expected 9,900,000 + 9%% VAT = 10,791,000, got %d", large)
	}
}

func TestPlanPriceRejectsTrial(t *testing.T) {
	if _, err := PlanPrice(model.PlanTrial); !errors.Is(err, ErrPlanNotPurchasable) {
		t.Fatalf("expected ErrPlanNotPurchasable, got %v", err)
	}
}
