package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/delito/admin-api/pkg/db/models"
	"github.com/delito/admin-api/pkg/enums"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var (
	cuisines     = []string{"North Indian", "South Indian", "Chinese", "Biryani", "Street Food", "Desserts", "Cafe", "Pizza", "Thali", "Bakery"}
	vehicleTypes = []string{"bike", "scooter", "bicycle"}
	cities       = []string{"Bengaluru", "Mumbai", "Delhi", "Hyderabad", "Pune", "Chennai"}
	dishes       = []string{"Paneer Tikka", "Masala Dosa", "Veg Biryani", "Butter Chicken", "Hakka Noodles", "Gulab Jamun", "Chole Bhature", "Idli Sambar"}
	statusMix    = []enums.OrderStatus{
		enums.OrderStatusDelivered, enums.OrderStatusDelivered, enums.OrderStatusDelivered, enums.OrderStatusCompleted,
		enums.OrderStatusPending, enums.OrderStatusPreparing, enums.OrderStatusSentForDelivery, enums.OrderStatusCancelled,
	}
)

// Factory builds realistic documents for seeding a development project.
type Factory struct {
	fake faker.Faker
	now  time.Time
}

func NewFactory(fake faker.Faker, now time.Time) *Factory {
	return &Factory{fake: fake, now: now.UTC()}
}

func (f *Factory) pick(values []string) string {
	return values[f.fake.IntBetween(0, len(values)-1)]
}

func (f *Factory) pastTime(days int) time.Time {
	return f.fake.Time().TimeBetween(f.now.AddDate(0, 0, -days), f.now).UTC()
}

func (f *Factory) Vendor() models.Vendor {
	created := f.pastTime(365)
	name := f.fake.Company().Name()
	v := models.Vendor{
		ID:              cuid.New(),
		Name:            f.fake.Person().Name(),
		BusinessName:    name,
		OwnerName:       f.fake.Person().Name(),
		Email:           f.fake.Internet().Email(),
		Phone:           f.fake.Phone().Number(),
		City:            f.pick(cities),
		Cuisine:         []string{f.pick(cuisines), f.pick(cuisines)},
		IsOnline:        f.fake.IntBetween(0, 3) > 0,
		SetupComplete:   true,
		Rating:          f.fake.Float64(1, 3, 5),
		AveragePrepTime: f.fake.Float64(0, 15, 45),
		CreatedAt:       &created,
	}
	switch f.fake.IntBetween(0, 9) {
	case 0:
		v.VerificationStatus = enums.VerificationStatusPending
		v.IsOnline = false
		v.SetupComplete = false
	case 1:
		rate := float64(f.fake.IntBetween(8, 20))
		v.CommissionRate = &rate
		v.IsVerified = true
		v.VerificationStatus = enums.VerificationStatusApproved
	default:
		v.IsVerified = true
		v.VerificationStatus = enums.VerificationStatusApproved
	}
	return v
}

func (f *Factory) DeliveryPerson() models.DeliveryPerson {
	created := f.pastTime(365)
	name := f.fake.Person().Name()
	online := f.fake.IntBetween(0, 1) == 1
	return models.DeliveryPerson{
		ID:            cuid.New(),
		Name:          name,
		Email:         f.fake.Internet().Email(),
		Phone:         f.fake.Phone().Number(),
		City:          f.pick(cities),
		VehicleType:   f.pick(vehicleTypes),
		VehicleNumber: fmt.Sprintf("KA%02d-%04d", f.fake.IntBetween(1, 60), f.fake.IntBetween(1000, 9999)),
		BankDetails:   &models.BankDetails{AccountHolder: name, UPIID: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@upi"},
		IsOnline:      online,
		IsAvailable:   online,
		Rating:        f.fake.Float64(1, 3, 5),
		Verification:  models.Verification{IsVerified: true, VerificationStatus: enums.VerificationStatusApproved},
		CreatedAt:     &created,
	}
}

func (f *Factory) Customer() models.Customer {
	created := f.pastTime(365)
	city := f.pick(cities)
	return models.Customer{
		ID:    cuid.New(),
		Name:  f.fake.Person().Name(),
		Email: f.fake.Internet().Email(),
		Phone: f.fake.Phone().Number(),
		Addresses: []models.Address{{
			Label:     "Home",
			Line1:     f.fake.Address().StreetAddress(),
			City:      city,
			IsDefault: true,
		}},
		IsBlocked: f.fake.IntBetween(0, 19) == 0,
		CreatedAt: &created,
	}
}

// Order builds an order from vendor to customer. Orders past preparation get
// riderID; an empty riderID leaves the order unassigned.
func (f *Factory) Order(vendorID, customerID, riderID string) models.Order {
	created := f.pastTime(120)
	status := statusMix[f.fake.IntBetween(0, len(statusMix)-1)]

	items := make([]models.OrderItem, 0, 3)
	var itemTotal float64
	for i := f.fake.IntBetween(1, 3); i > 0; i-- {
		item := models.OrderItem{Name: f.pick(dishes), Quantity: f.fake.IntBetween(1, 3), Price: float64(f.fake.IntBetween(8, 45) * 10)}
		itemTotal += item.Price * float64(item.Quantity)
		items = append(items, item)
	}
	fee := float64(f.fake.IntBetween(2, 6) * 10)
	tax := float64(int(itemTotal*0.05*100)) / 100
	o := models.Order{
		ID:          cuid.New(),
		OrderNumber: fmt.Sprintf("DL%06d", f.fake.IntBetween(1, 999999)),
		VendorID:    vendorID,
		CustomerID:  customerID,
		Status:      status,
		Items:       items,
		ItemTotal:   itemTotal,
		Subtotal:    itemTotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       itemTotal + fee + tax,
		PaymentMode: enums.AllPaymentModes[f.fake.IntBetween(0, len(enums.AllPaymentModes)-1)],
		CreatedAt:   created,
	}
	if status.Bucket() == enums.OrderBucketInTransit || status.IsCompleted() {
		o.DeliveryPersonID = riderID
	}
	if status.IsCompleted() {
		delivered := created.Add(time.Duration(f.fake.IntBetween(25, 70)) * time.Minute)
		o.DeliveredAt = &delivered
		o.Rating = float64(f.fake.IntBetween(3, 5))
		o.DeliveryRating = float64(f.fake.IntBetween(3, 5))
		o.PreparationTime = float64(f.fake.IntBetween(12, 40))
		o.PaymentStatus = "paid"
	}
	if status == enums.OrderStatusCancelled {
		cancelled := created.Add(10 * time.Minute)
		o.CancelledAt = &cancelled
		o.CancelReason = "customer cancelled"
	}
	return o
}

// Task builds the delivery task for an assigned order, or nil when the
// order has no rider.
func (f *Factory) Task(order models.Order) *models.DeliveryTask {
	if order.DeliveryPersonID == "" {
		return nil
	}
	created := order.CreatedAt
	task := &models.DeliveryTask{
		ID:               cuid.New(),
		OrderID:          order.ID,
		DeliveryPersonID: order.DeliveryPersonID,
		Status:           enums.TaskStatusPickedUp.String(),
		DistanceKm:       f.fake.Float64(1, 1, 9),
		CreatedAt:        &created,
	}
	if order.Status.IsCompleted() {
		task.Status = enums.TaskStatusCompleted.String()
		task.CompletedAt = order.DeliveredAt
		if f.fake.IntBetween(0, 3) == 0 {
			task.Tip = float64(f.fake.IntBetween(1, 5) * 10)
		}
	}
	return task
}

func (f *Factory) Complaint(order models.Order) models.Complaint {
	created := order.CreatedAt.Add(2 * time.Hour)
	statuses := []enums.ComplaintStatus{enums.ComplaintStatusOpen, enums.ComplaintStatusInProgress, enums.ComplaintStatusResolved, enums.ComplaintStatusClosed}
	priorities := []enums.ComplaintPriority{enums.ComplaintPriorityLow, enums.ComplaintPriorityMedium, enums.ComplaintPriorityHigh, enums.ComplaintPriorityUrgent}
	c := models.Complaint{
		ID:               cuid.New(),
		OrderID:          order.ID,
		CustomerID:       order.CustomerID,
		VendorID:         order.VendorID,
		DeliveryPersonID: order.DeliveryPersonID,
		Type:             enums.AllComplaintTypes[f.fake.IntBetween(0, len(enums.AllComplaintTypes)-1)],
		Subject:          f.fake.Lorem().Sentence(5),
		Description:      f.fake.Lorem().Sentence(16),
		Status:           statuses[f.fake.IntBetween(0, len(statuses)-1)],
		Priority:         priorities[f.fake.IntBetween(0, len(priorities)-1)],
		CreatedAt:        &created,
	}
	if c.Status.IsTerminal() {
		resolved := created.Add(6 * time.Hour)
		c.ResolvedAt = &resolved
		c.Resolution = f.fake.Lorem().Sentence(8)
	}
	if c.Type == enums.ComplaintTypeMissingItems || c.Type == enums.ComplaintTypeWrongOrder {
		c.RefundStatus = enums.RefundStatusPending
		c.RefundAmount = order.ItemTotal
	}
	return c
}
