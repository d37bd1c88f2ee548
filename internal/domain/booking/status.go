package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// InitialStatus is stored when a new appointment does not name one.
func InitialStatus() Status {
	return StatusScheduled
}

// Known reports whether s is one of the statuses the shop front-ends
// understand. Other values are stored as given.
func (s Status) Known() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Create defaults
// ===============================

const (
	DefaultServiceDuration   = 30
	DefaultSurchargeMaxValue = 50
	DefaultSurchargeMinValue = 0
	MaxStatusLength          = 20
)
