package service

import (
	"errors"

	"estate-office-saas/internal/model"

	"github.com/shopspring/decimal"
)

var ErrPlanNotPurchasable = errors.New("plan cannot be purchased")

// Base plan prices in rial, before VAT. TRIAL is provisioned, never sold.
var planBasePrice = map[model.Plan]int64{
	model.PlanSmall: 4_900_000,
	model.PlanLarge: 9_900_000,
}

var vatRate = decimal.NewFromFloat(0.09)

// PlanPrice returns the charge amount for a plan in rial, VAT included.
// The same amount must be used for the gateway request and the later verify
// call, so callers store it on the PaymentRecord.
func PlanPrice(plan model.Plan) (int64, error) {
	base, ok := planBasePrice[plan]
	if !ok {
		return 0, ErrPlanNotPurchasable
	}

	price := decimal.NewFromInt(base)
	total := price.Add(price.Mul(vatRate)).Round(0)

	return total.IntPart(), nil
}
