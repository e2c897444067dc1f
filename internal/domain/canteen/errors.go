package canteen

import "github.com/BruksfildServices01/canteen-scheduler/internal/httperr"

var (
	ErrCanteenNotFound     = httperr.ErrNotFound("canteen_not_found")
	ErrDuplicateName       = httperr.ErrConflict("duplicate_canteen_name")
	ErrInvalidSlotDuration = httperr.ErrValidation("invalid_slot_duration")
)
