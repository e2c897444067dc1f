package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusActive
}
