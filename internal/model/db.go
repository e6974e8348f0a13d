package model

import "time"

type Plan string

const (
	PlanTrial Plan = "TRIAL"
	PlanSmall Plan = "SMALL"
	PlanLarge Plan = "LARGE"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionGrace     SubscriptionStatus = "GRACE"
	SubscriptionLocked    SubscriptionStatus = "LOCKED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentVerified PaymentStatus = "VERIFIED"
	PaymentFailed   PaymentStatus = "FAILED"
)

type AdminRole string

const (
	RoleSuperAdmin  AdminRole = "SUPER_ADMIN"
	RoleOfficeAdmin AdminRole = "OFFICE_ADMIN"
)

// Office is one tenant (a real-estate agency).
type Office struct {
	ID        int64  `gorm:"primaryKey;not null"`
	Name      string `gorm:"size:128;index;not null"`
	Phone     string `gorm:"size:32"`
	Address   string `gorm:"size:256"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subscription is 1:1 with Office. TrialEndsAt only matters while plan is
// TRIAL; CurrentPeriodEnd only for paid plans.
type Subscription struct {
	OfficeID         int64              `gorm:"primaryKey;not null"`
	Plan             Plan               `gorm:"size:16;not null"`
	Status           SubscriptionStatus `gorm:"size:16;index;not null"`
	TrialEndsAt      *time.Time
	CurrentPeriodEnd *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PaymentRecord is one attempted purchase. Authority is the gateway-issued
// session token and the only inbound value the callback flow trusts.
type PaymentRecord struct {
	ID        string        `gorm:"primaryKey;size:36;not null"`
	OfficeID  int64         `gorm:"index;not null"`
	Plan      Plan          `gorm:"size:16;not null"` // SMALL or LARGE, never TRIAL
	Amount    int64         `gorm:"not null"`         // rial
	Authority string        `gorm:"size:64;uniqueIndex;not null"`
	Status    PaymentStatus `gorm:"size:16;index;not null"`
	RefID     string        `gorm:"size:64"` // set once VERIFIED
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AdminUser struct {
	ID        int64     `gorm:"primaryKey;not null"`
	Email     string    `gorm:"size:128;uniqueIndex;not null"`
	Role      AdminRole `gorm:"size:32;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminOfficeAssignment grants an OFFICE_ADMIN access to one office.
type AdminOfficeAssignment struct {
	AdminID   int64 `gorm:"primaryKey;not null"`
	OfficeID  int64 `gorm:"primaryKey;not null"`
	CreatedAt time.Time
}

type ListingKind string

const (
	ListingSale ListingKind = "SALE"
	ListingRent ListingKind = "RENT"
)

type Listing struct {
	ID        int64       `gorm:"primaryKey;not null"`
	OfficeID  int64       `gorm:"index;not null"`
	Title     string      `gorm:"size:256;not null"`
	Kind      ListingKind `gorm:"size:16;index;not null"`
	Price     int64       `gorm:"not null"`               // rial
	Status    string      `gorm:"size:32;index;not null"` // OPEN, RESERVED, CLOSED
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Customer struct {
	ID        int64  `gorm:"primaryKey;not null"`
	OfficeID  int64  `gorm:"index;not null"`
	Name      string `gorm:"size:128;index;not null"`
	Phone     string `gorm:"size:32;index"`
	Budget    int64  // rial, 0 = unknown
	Note      string `gorm:"size:1024"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
