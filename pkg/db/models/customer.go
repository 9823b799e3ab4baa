package models

import "time"

// Customer is an end user placing orders.
type Customer struct {
	ID          string     `firestore:"-" json:"id"`
	Name        string     `firestore:"name,omitempty" json:"name,omitempty"`
	Email       string     `firestore:"email,omitempty" json:"email,omitempty"`
	Phone       string     `firestore:"phone,omitempty" json:"phone,omitempty"`
	Addresses   []Address  `firestore:"addresses,omitempty" json:"addresses,omitempty"`
	IsBlocked   bool       `firestore:"isBlocked" json:"isBlocked"`
	AdminNotes  string     `firestore:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	TotalOrders int        `firestore:"totalOrders,omitempty" json:"totalOrders,omitempty"`
	TotalSpent  float64    `firestore:"totalSpent,omitempty" json:"totalSpent,omitempty"`
	CreatedAt   *time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (c *Customer) SetID(id string) { c.ID = id }

// Address is a saved delivery address.
type Address struct {
	Label     string  `firestore:"label,omitempty" json:"label,omitempty"`
	Line1     string  `firestore:"line1" json:"line1"`
	Line2     string  `firestore:"line2,omitempty" json:"line2,omitempty"`
	City      string  `firestore:"city" json:"city"`
	State     string  `firestore:"state,omitempty" json:"state,omitempty"`
	Pincode   string  `firestore:"pincode,omitempty" json:"pincode,omitempty"`
	Lat       float64 `firestore:"lat,omitempty" json:"lat,omitempty"`
	Lng       float64 `firestore:"lng,omitempty" json:"lng,omitempty"`
	IsDefault bool    `firestore:"isDefault,omitempty" json:"isDefault,omitempty"`
}
