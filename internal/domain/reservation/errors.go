package reservation

import (
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
)

var (
	ErrInvalidDate  = httperr.ErrValidation("invalid_date")
	ErrInvalidTime  = httperr.ErrValidation("invalid_time")
	ErrPastDate     = httperr.ErrBusiness("past_date")
	ErrInvalidDur   = httperr.ErrValidation("invalid_duration")
	ErrInvalidAlign = httperr.ErrValidation("invalid_alignment")

	ErrCanteenNotFound     = canteen.ErrCanteenNotFound
	ErrStudentNotFound     = httperr.ErrNotFound("student_not_found")
	ErrNotFound            = httperr.ErrNotFound("reservation_not_found")
	ErrOutsideWorkingHours = httperr.ErrBusiness("outside_working_hours")
	ErrStudentDoubleBooked = httperr.ErrBusiness("student_double_booked")
	ErrCapacityExceeded    = httperr.ErrBusiness("capacity_exceeded")
	ErrNotOwner            = httperr.ErrForbidden("not_owner")
	ErrAdmissionContended  = httperr.ErrConflict("admission_contended")
)
