package models

import "time"

// Vendor is a restaurant or store selling through the platform.
type Vendor struct {
	ID                string             `firestore:"-" json:"id"`
	Name              string             `firestore:"name,omitempty" json:"name,omitempty"`
	BusinessName      string             `firestore:"businessName,omitempty" json:"businessName,omitempty"`
	OwnerName         string             `firestore:"ownerName,omitempty" json:"ownerName,omitempty"`
	Email             string             `firestore:"email,omitempty" json:"email,omitempty"`
	Phone             string             `firestore:"phone,omitempty" json:"phone,omitempty"`
	Address           string             `firestore:"address,omitempty" json:"address,omitempty"`
	City              string             `firestore:"city,omitempty" json:"city,omitempty"`
	Cuisine           []string           `firestore:"cuisine,omitempty" json:"cuisine,omitempty"`
	GSTIN             string             `firestore:"gstin,omitempty" json:"gstin,omitempty"`
	FSSAINumber       string             `firestore:"fssaiNumber,omitempty" json:"fssaiNumber,omitempty"`
	IsOnline          bool               `firestore:"isOnline" json:"isOnline"`
	SetupComplete     bool               `firestore:"setupComplete" json:"setupComplete"`
	Rating            float64            `firestore:"rating,omitempty" json:"rating,omitempty"`
	TotalOrders       int                `firestore:"totalOrders,omitempty" json:"totalOrders,omitempty"`
	TotalEarnings     float64            `firestore:"totalEarnings,omitempty" json:"totalEarnings,omitempty"`
	AveragePrepTime   float64            `firestore:"averagePrepTime,omitempty" json:"averagePrepTime,omitempty"`
	CommissionRate    *float64           `firestore:"commissionRate,omitempty" json:"commissionRate,omitempty"`
	CommissionHistory []CommissionChange `firestore:"commissionHistory,omitempty" json:"commissionHistory,omitempty"`
	Suspension
	Verification
	CreatedAt *time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (v *Vendor) SetID(id string) { v.ID = id }

// DisplayName is the business name, then the profile name.
func (v Vendor) DisplayName() string {
	if v.BusinessName != "" {
		return v.BusinessName
	}
	return v.Name
}

// CommissionChange is one entry of a vendor's commission history.
type CommissionChange struct {
	Rate         float64   `firestore:"rate" json:"rate"`
	PreviousRate float64   `firestore:"previousRate" json:"previousRate"`
	ChangedBy    string    `firestore:"changedBy" json:"changedBy"`
	ChangedAt    time.Time `firestore:"changedAt" json:"changedAt"`
	Reason       string    `firestore:"reason,omitempty" json:"reason,omitempty"`
}
