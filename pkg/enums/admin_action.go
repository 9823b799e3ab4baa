package enums

// AdminAction names an entry in the admin audit log.
type AdminAction string

const (
	AdminActionVendorSuspended           AdminAction = "vendor_suspended"
	AdminActionVendorReinstated          AdminAction = "vendor_reinstated"
	AdminActionDeliverySuspended         AdminAction = "delivery_person_suspended"
	AdminActionDeliveryReinstated        AdminAction = "delivery_person_reinstated"
	AdminActionVendorApproved            AdminAction = "vendor_approved"
	AdminActionVendorRejected            AdminAction = "vendor_rejected"
	AdminActionDeliveryApproved          AdminAction = "delivery_person_approved"
	AdminActionDeliveryRejected          AdminAction = "delivery_person_rejected"
	AdminActionCommissionUpdated         AdminAction = "commission_updated"
	AdminActionPlatformCommissionUpdated AdminAction = "platform_commission_updated"
	AdminActionDeliveryEarningsSynced    AdminAction = "delivery_earnings_synced"
)

// String implements fmt.Stringer.
func (a AdminAction) String() string {
	return string(a)
}

// TargetType names the kind of document an admin action touched.
type TargetType string

const (
	TargetVendor         TargetType = "vendor"
	TargetDeliveryPerson TargetType = "delivery_person"
	TargetPlatform       TargetType = "platform"
)
