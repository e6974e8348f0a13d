package dto

import "estate-office-saas/internal/model"

type PurchaseRequest struct {
	OfficeID int64      `json:"office_id"`
	Plan     model.Plan `json:"plan"`
}

type PurchaseResponse struct {
	Authority string `json:"authority"`
	PayURL    string `json:"pay_url"`
}

type AdjustSubscriptionRequest struct {
	Plan       *model.Plan               `json:"plan,omitempty"`
	Status     *model.SubscriptionStatus `json:"status,omitempty"`
	ExtendDays int                       `json:"extend_days,omitempty"`
}

type CreateOfficeRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CreateListingRequest struct {
	Title string            `json:"title"`
	Kind  model.ListingKind `json:"kind"`
	Price int64             `json:"price"`
}

type CreateCustomerRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Budget int64  `json:"budget"`
	Note   string `json:"note"`
}
