package models

import (
	"time"

	"github.com/delito/admin-api/pkg/enums"
)

// AdminLog is an audit record of an admin mutation.
type AdminLog struct {
	ID         string            `firestore:"id" json:"id"`
	Action     enums.AdminAction `firestore:"action" json:"action"`
	TargetType enums.TargetType  `firestore:"targetType" json:"targetType"`
	TargetID   string            `firestore:"targetId" json:"targetId"`
	AdminID    string            `firestore:"adminId" json:"adminId"`
	Details    map[string]any    `firestore:"details,omitempty" json:"details,omitempty"`
	Timestamp  time.Time         `firestore:"timestamp" json:"timestamp"`
}

// PlatformSettings is the settings/platform document.
type PlatformSettings struct {
	DefaultCommissionRate *float64   `firestore:"defaultCommissionRate,omitempty" json:"defaultCommissionRate,omitempty"`
	UpdatedAt             *time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	UpdatedBy             string     `firestore:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}
