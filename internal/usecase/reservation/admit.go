package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/canteen-scheduler/internal/audit"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/capacity"
	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/metrics"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
	"github.com/BruksfildServices01/canteen-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AdmitReservationInput struct {
	StudentID string
	CanteenID string
	Date      string
	Time      string
	Duration  int
}

// ======================================================
// USE CASE
// ======================================================

type AdmitReservation struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
	log    *zerolog.Logger
	now    func() time.Time
}

func NewAdmitReservation(
	repo domain.Repository,
	locker domain.Locker,
	audit *audit.Dispatcher,
	log *zerolog.Logger,
) *AdmitReservation {
	return &AdmitReservation{
		repo:   repo,
		locker: locker,
		audit:  audit,
		log:    log,
		now:    timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute either commits one Active reservation or rejects the request
// without touching the store.
func (uc *AdmitReservation) Execute(
	ctx context.Context,
	in AdmitReservationInput,
) (*models.Reservation, error) {

	res, err := uc.admit(ctx, in)
	if err != nil {
		outcome := outcomeOf(err)
		metrics.IncAdmission(outcome)
		uc.log.Debug().
			Str("canteen_id", in.CanteenID).
			Str("student_id", in.StudentID).
			Str("date", in.Date).
			Str("time", in.Time).
			Str("outcome", outcome).
			Msg("reservation rejected")
		return nil, err
	}

	metrics.IncAdmission(metrics.OutcomeAdmitted)
	uc.audit.Dispatch(audit.Event{
		ActorID:  res.StudentID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: res.ID,
		Metadata: map[string]any{
			"canteen_id": res.CanteenID,
			"date":       res.Date,
			"start":      domain.StartOf(res).String(),
			"duration":   res.Duration,
		},
	})

	return res, nil
}

func (uc *AdmitReservation) admit(
	ctx context.Context,
	in AdmitReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// Identifiers and request shape
	// --------------------------------------------------
	studentID, err := ids.Parse(in.StudentID)
	if err != nil {
		return nil, err
	}
	canteenID, err := ids.Parse(in.CanteenID)
	if err != nil {
		return nil, err
	}

	date, start, err := domain.ParseSchedule(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	req := domain.Request{
		StudentID: studentID,
		CanteenID: canteenID,
		Date:      date,
		Start:     start,
		Duration:  in.Duration,
	}
	if err := domain.CheckShape(req, uc.now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Serialize per canteen and day, then per student and day
	// --------------------------------------------------
	day := timezone.FormatDate(date)

	for _, key := range []string{
		domain.AdmissionKey(canteenID, day),
		domain.StudentKey(studentID, day),
	} {
		unlock, err := uc.locker.Lock(ctx, key)
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, domain.ErrAdmissionContended
		}
		if err != nil {
			return nil, fmt.Errorf("admission lock: %w", err)
		}
		defer unlock()
	}

	// --------------------------------------------------
	// Store-backed checks and insert, one transaction
	// --------------------------------------------------
	var created *models.Reservation
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ct, err := tx.LockCanteen(ctx, canteenID)
		if err != nil {
			return err
		}

		exists, err := tx.StudentExists(ctx, studentID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrStudentNotFound
		}

		if !canteen.Fits(canteen.FromModels(ct.WorkingHours), req.Start, req.End()) {
			return domain.ErrOutsideWorkingHours
		}

		overlapping, err := tx.CountStudentOverlapping(ctx, studentID, day, req.Start, req.End())
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return domain.ErrStudentDoubleBooked
		}

		room, err := capacity.NewResolver(tx).HasRoom(ctx, canteenID, ct.Capacity, day, req.Start, req.End())
		if err != nil {
			return err
		}
		if !room {
			return domain.ErrCapacityExceeded
		}

		res := &models.Reservation{
			ID:          ids.New(),
			StudentID:   studentID,
			CanteenID:   canteenID,
			Date:        day,
			StartMinute: int(req.Start),
			EndMinute:   int(req.End()),
			Duration:    req.Duration,
			Status:      string(domain.InitialStatus()),
		}
		if err := tx.Create(ctx, res); err != nil {
			return err
		}
		created = res
		return nil
	})
	if httperr.IsExclusionConflict(err) {
		return nil, domain.ErrAdmissionContended
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

// outcomeOf labels a rejection for metrics.
func outcomeOf(err error) string {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return "store_error"
}
