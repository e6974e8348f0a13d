package service

import (
	"context"
	"fmt"
	"time"

	"estate-office-saas/internal/client"
	"estate-office-saas/internal/dto"
	"estate-office-saas/internal/model"
	"estate-office-saas/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Outcome is the indicator carried on the post-callback redirect. It is the
// only thing the payer ever sees from the reconciliation flow.
type Outcome string

const (
	OutcomeCancelled       Outcome = "cancelled"
	OutcomeError           Outcome = "error"
	OutcomeAlreadyVerified Outcome = "already_verified"
	OutcomeFailed          Outcome = "failed"
	OutcomeSuccess         Outcome = "success"
)

// gatewayStatusOK is the single status token the gateway redirect may carry
// for a completed payment. Anything else means the payer bailed out.
const gatewayStatusOK = "OK"

type BillingService interface {
	InitiatePurchase(ctx context.Context, officeID int64, plan model.Plan) (*dto.PurchaseResponse, error)
	HandleCallback(ctx context.Context, status, authority string) Outcome
	GetSubscription(ctx context.Context, officeID int64) (*model.Subscription, error)
	AdjustSubscription(ctx context.Context, officeID int64, req *dto.AdjustSubscriptionRequest) error
}

type billingServiceImpl struct {
	db               *gorm.DB
	gateway          client.GatewayClient
	serviceBaseUrl   string
	paymentRepo      repository.PaymentRepository
	subscriptionRepo repository.SubscriptionRepository
	log              *zap.Logger
	now              func() time.Time
}

func NewBillingService(
	db *gorm.DB,
	gateway client.GatewayClient,
	serviceBaseUrl string,
	paymentRepo repository.PaymentRepository,
	subscriptionRepo repository.SubscriptionRepository,
	log *zap.Logger,
) BillingService {
	return &billingServiceImpl{
		db:               db,
		gateway:          gateway,
		serviceBaseUrl:   serviceBaseUrl,
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		log:              log,
		now:              time.Now,
	}
}

// InitiatePurchase opens a payment session with the gateway and stores the
// PENDING record keyed by the returned authority before handing the pay URL
// back. The record must exist before the payer is redirected, otherwise the
// callback has nothing to trust.
func (s *billingServiceImpl) InitiatePurchase(ctx context.Context, officeID int64, plan model.Plan) (*dto.PurchaseResponse, error) {
	amount, err := PlanPrice(plan)
	if err != nil {
		return nil, err
	}

	callbackURL := fmt.Sprintf("%s/api/billing/callback", s.serviceBaseUrl)
	description := fmt.Sprintf("subscription %s for office %d", plan, officeID)

	resp, err := s.gateway.RequestPayment(ctx, amount, description, callbackURL)
	if err != nil {
		return nil, fmt.Errorf("gateway request payment: %w", err)
	}

	record := &model.PaymentRecord{
		ID:        uuid.New().String(),
		OfficeID:  officeID,
		Plan:      plan,
		Amount:    amount,
		Authority: resp.Authority,
		Status:    model.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store payment record: %w", err)
	}

	return &dto.PurchaseResponse{
		Authority: resp.Authority,
		PayURL:    resp.PayURL,
	}, nil
}

// HandleCallback reconciles one gateway redirect. Trust comes only from the
// stored record looked up by authority; every exit is an Outcome, never an
// error, and only the verify-then-commit path mutates anything.
func (s *billingServiceImpl) HandleCallback(ctx context.Context, status, authority string) Outcome {
	if status != gatewayStatusOK {
		return OutcomeCancelled
	}
	if authority == "" {
		return OutcomeError
	}

	record, err := s.paymentRepo.FindByAuthority(ctx, authority)
	if err != nil {
		s.log.Warn("payment callback for unknown authority",
			zap.String("authority", authority), zap.Error(err))
		return OutcomeError
	}

	// Replayed or duplicated callback: the record was already applied once
	// and must never credit the subscription again.
	if record.Status == model.PaymentVerified {
		return OutcomeAlreadyVerified
	}

	verify, err := s.gateway.VerifyPayment(ctx, record.Amount, authority)
	if err != nil {
		// Best effort; the PENDING record can be reconciled by hand if this
		// write is lost.
		if markErr := s.paymentRepo.MarkFailed(ctx, record.ID); markErr != nil {
			s.log.Warn("mark payment failed", zap.String("record_id", record.ID), zap.Error(markErr))
		}
		s.log.Info("gateway refused verification",
			zap.String("record_id", record.ID), zap.Error(err))
		return OutcomeFailed
	}

	sub, err := s.subscriptionRepo.GetByOfficeID(ctx, record.OfficeID)
	if err != nil {
		s.log.Error("verified payment with no subscription to credit",
			zap.String("record_id", record.ID),
			zap.Int64("office_id", record.OfficeID),
			zap.Error(err))
		return OutcomeError
	}

	periodEnd := NextPeriodEnd(s.now(), sub.CurrentPeriodEnd)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.MarkVerified(ctx, tx, record.ID, verify.RefID); err != nil {
			return fmt.Errorf("mark payment verified: %w", err)
		}
		if err := s.subscriptionRepo.ApplyPayment(ctx, tx, record.OfficeID, record.Plan, periodEnd); err != nil {
			return fmt.Errorf("apply payment to subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		// The gateway captured the money but the local commit did not land.
		// The record stays PENDING for manual reconciliation.
		s.log.Error("payment commit failed after gateway capture",
			zap.String("record_id", record.ID),
			zap.String("ref_id", verify.RefID),
			zap.Error(err))
		return OutcomeError
	}

	return OutcomeSuccess
}

func (s *billingServiceImpl) GetSubscription(ctx context.Context, officeID int64) (*model.Subscription, error) {
	return s.subscriptionRepo.GetByOfficeID(ctx, officeID)
}

// AdjustSubscription is the manual back-office override: change plan or
// status, or push the period end out by whole days.
func (s *billingServiceImpl) AdjustSubscription(ctx context.Context, officeID int64, req *dto.AdjustSubscriptionRequest) error {
	updates := map[string]interface{}{
		"updated_at": s.now(),
	}

	if req.Plan != nil {
		updates["plan"] = *req.Plan
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ExtendDays > 0 {
		sub, err := s.subscriptionRepo.GetByOfficeID(ctx, officeID)
		if err != nil {
			return fmt.Errorf("load subscription: %w", err)
		}

		base := s.now()
		if sub.CurrentPeriodEnd != nil && sub.CurrentPeriodEnd.After(base) {
			base = *sub.CurrentPeriodEnd
		}
		updates["current_period_end"] = base.AddDate(0, 0, req.ExtendDays)
	}

	return s.subscriptionRepo.Adjust(ctx, officeID, updates)
}
