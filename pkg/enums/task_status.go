package enums

// TaskStatus tracks a delivery task assigned to a rider.
type TaskStatus string

const (
	TaskStatusAssigned  TaskStatus = "assigned"
	TaskStatusAccepted  TaskStatus = "accepted"
	TaskStatusPickedUp  TaskStatus = "picked_up"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// String implements fmt.Stringer.
func (t TaskStatus) String() string {
	return string(t)
}
