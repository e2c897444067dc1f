package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/canteen-scheduler/internal/dto"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/canteen-scheduler/internal/middleware"
	ucReservation "github.com/BruksfildServices01/canteen-scheduler/internal/usecase/reservation"
)

type ReservationHandler struct {
	admit  *ucReservation.AdmitReservation
	cancel *ucReservation.CancelReservation
	get    *ucReservation.GetReservation
}

func NewReservationHandler(
	admit *ucReservation.AdmitReservation,
	cancel *ucReservation.CancelReservation,
	get *ucReservation.GetReservation,
) *ReservationHandler {
	return &ReservationHandler{
		admit:  admit,
		cancel: cancel,
		get:    get,
	}
}

// StudentID falls back to the caller when omitted.
type CreateReservationRequest struct {
	StudentID string `json:"student_id"`
	CanteenID string `json:"canteen_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Duration  int    `json:"duration"`
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed JSON body.")
		return
	}
	if req.StudentID == "" {
		req.StudentID = middleware.SubjectID(c)
	}

	res, err := h.admit.Execute(c.Request.Context(), ucReservation.AdmitReservationInput{
		StudentID: req.StudentID,
		CanteenID: req.CanteenID,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Reservation(res))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Reservation(res))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	res, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), middleware.SubjectID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Reservation(res))
}
