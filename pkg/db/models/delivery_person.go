package models

import "time"

// DeliveryPerson is a rider delivering orders for the platform.
type DeliveryPerson struct {
	ID              string       `firestore:"-" json:"id"`
	Name            string       `firestore:"name,omitempty" json:"name,omitempty"`
	Email           string       `firestore:"email,omitempty" json:"email,omitempty"`
	Phone           string       `firestore:"phone,omitempty" json:"phone,omitempty"`
	City            string       `firestore:"city,omitempty" json:"city,omitempty"`
	VehicleType     string       `firestore:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	VehicleNumber   string       `firestore:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	LicenseNumber   string       `firestore:"licenseNumber,omitempty" json:"licenseNumber,omitempty"`
	BankDetails     *BankDetails `firestore:"bankDetails,omitempty" json:"bankDetails,omitempty"`
	IsOnline        bool         `firestore:"isOnline" json:"isOnline"`
	IsAvailable     bool         `firestore:"isAvailable" json:"isAvailable"`
	Rating          float64      `firestore:"rating,omitempty" json:"rating,omitempty"`
	TotalDeliveries int          `firestore:"totalDeliveries,omitempty" json:"totalDeliveries,omitempty"`
	TotalEarnings   float64      `firestore:"totalEarnings,omitempty" json:"totalEarnings,omitempty"`
	TotalTips       float64      `firestore:"totalTips,omitempty" json:"totalTips,omitempty"`
	CODCollected    float64      `firestore:"codCollected,omitempty" json:"codCollected,omitempty"`
	CODSettled      float64      `firestore:"codSettled,omitempty" json:"codSettled,omitempty"`
	LastSyncedAt    *time.Time   `firestore:"lastSyncedAt,omitempty" json:"lastSyncedAt,omitempty"`
	Suspension
	Verification
	CreatedAt *time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt *time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (d *DeliveryPerson) SetID(id string) { d.ID = id }

// BankDetails is where rider payouts are sent.
type BankDetails struct {
	AccountHolder string `firestore:"accountHolder,omitempty" json:"accountHolder,omitempty"`
	AccountNumber string `firestore:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	IFSC          string `firestore:"ifsc,omitempty" json:"ifsc,omitempty"`
	UPIID         string `firestore:"upiId,omitempty" json:"upiId,omitempty"`
}

// DeliveryTask is a single assignment of an order to a rider.
type DeliveryTask struct {
	ID               string     `firestore:"-" json:"id"`
	OrderID          string     `firestore:"orderId" json:"orderId"`
	DeliveryPersonID string     `firestore:"deliveryPersonId" json:"deliveryPersonId"`
	Status           string     `firestore:"status" json:"status"`
	DistanceKm       float64    `firestore:"distanceKm,omitempty" json:"distanceKm,omitempty"`
	Tip              float64    `firestore:"tip,omitempty" json:"tip,omitempty"`
	CreatedAt        *time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	CompletedAt      *time.Time `firestore:"completedAt,omitempty" json:"completedAt,omitempty"`
}

func (t *DeliveryTask) SetID(id string) { t.ID = id }
