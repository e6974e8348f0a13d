package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate-office-saas/internal/dto"
	"estate-office-saas/internal/model"
	"estate-office-saas/internal/service"

	"github.com/labstack/echo/v4"
)

type stubBillingService struct {
	gotStatus    string
	gotAuthority string
	outcome      service.Outcome
}

func (s *stubBillingService) InitiatePurchase(ctx context.Context, officeID int64, plan model.Plan) (*dto.PurchaseResponse, error) {
	return nil, nil
}

func (s *stubBillingService) HandleCallback(ctx context.Context, status, authority string) service.Outcome {
	s.gotStatus = status
	s.gotAuthority = authority
	return s.outcome
}

func (s *stubBillingService) GetSubscription(ctx context.Context, officeID int64) (*model.Subscription, error) {
	return nil, nil
}

func (s *stubBillingService) AdjustSubscription(ctx context.Context, officeID int64, req *dto.AdjustSubscriptionRequest) error {
	return nil
}

func callbackRequest(t *testing.T, stub *stubBillingService, target string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewBillingHandler(stub, nil, "https://panel.example")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Callback(c); err != nil {
		t.Fatalf("callback handler: %v", err)
	}
	return rec
}

func TestCallbackRedirectsWithOutcome(t *testing.T) {
	stub := &stubBillingService{outcome: service.OutcomeSuccess}

	rec := callbackRequest(t, stub, "/api/billing/callback?Authority=abc123&Status=OK")

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	location := rec.Header().Get("Location")
	want := "https://panel.example/settings/subscription?payment=success"
	if location != want {
		t.Fatalf("expected redirect to %s, got %s", want, location)
	}
	if stub.gotStatus != "OK" || stub.gotAuthority != "abc123" {
		t.Fatalf("params not forwarded: %s/%s", stub.gotStatus, stub.gotAuthority)
	}
}

func TestCallbackAcceptsLowercaseParams(t *testing.T) {
	stub := &stubBillingService{outcome: service.OutcomeCancelled}

	rec := callbackRequest(t, stub, "/api/billing/callback?authority=xyz&status=NOK")

	if stub.gotStatus != "NOK" || stub.gotAuthority != "xyz" {
		t.Fatalf("lowercase params not accepted: %s/%s", stub.gotStatus, stub.gotAuthority)
	}
	location := rec.Header().Get("Location")
	want := "https://panel.example/settings/subscription?payment=cancelled"
	if location != want {
		t.Fatalf("expected redirect to %s, got %s", want, location)
	}
}

func TestCallbackNeverReturnsBody(t *testing.T) {
	for _, outcome := range []service.Outcome{
		service.OutcomeCancelled,
		service.OutcomeError,
		service.OutcomeAlreadyVerified,
		service.OutcomeFailed,
		service.OutcomeSuccess,
	} {
		stub := &stubBillingService{outcome: outcome}
		rec := callbackRequest(t, stub, "/api/billing/callback?Authority=a&Status=OK")

		if rec.Code != http.StatusFound {
			t.Fatalf("outcome %s: expected redirect, got %d", outcome, rec.Code)
		}
	}
}
