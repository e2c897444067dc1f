package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/dto"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/canteen-scheduler/internal/middleware"
	ucCanteen "github.com/BruksfildServices01/canteen-scheduler/internal/usecase/canteen"
)

// ======================================================
// HANDLER
// ======================================================

type CanteenHandler struct {
	create *ucCanteen.CreateCanteen
	get    *ucCanteen.GetCanteen
	list   *ucCanteen.ListCanteens
	update *ucCanteen.UpdateCanteen
	remove *ucCanteen.DeleteCanteen
	status *ucCanteen.CanteenStatus
}

func NewCanteenHandler(
	create *ucCanteen.CreateCanteen,
	get *ucCanteen.GetCanteen,
	list *ucCanteen.ListCanteens,
	update *ucCanteen.UpdateCanteen,
	remove *ucCanteen.DeleteCanteen,
	status *ucCanteen.CanteenStatus,
) *CanteenHandler {
	return &CanteenHandler{
		create: create,
		get:    get,
		list:   list,
		update: update,
		remove: remove,
		status: status,
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *CanteenHandler) Create(c *gin.Context) {
	var req domain.Draft
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed JSON body.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), middleware.SubjectID(c), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Canteen(created))
}

func (h *CanteenHandler) Get(c *gin.Context) {
	ct, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Canteen(ct))
}

func (h *CanteenHandler) List(c *gin.Context) {
	canteens, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.Canteens(canteens))
}

func (h *CanteenHandler) Update(c *gin.Context) {
	var req domain.Patch
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed JSON body.")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), middleware.SubjectID(c), c.Param("id"), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.Canteen(updated))
}

func (h *CanteenHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.SubjectID(c), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// AVAILABILITY
// ======================================================

func statusInput(c *gin.Context) ucCanteen.StatusInput {
	// a non-numeric duration becomes 0 and fails validation
	duration, _ := strconv.Atoi(c.Query("duration"))
	return ucCanteen.StatusInput{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		StartTime: c.Query("startTime"),
		EndTime:   c.Query("endTime"),
		Duration:  duration,
	}
}

func (h *CanteenHandler) Status(c *gin.Context) {
	out, err := h.status.Execute(c.Request.Context(), c.Param("id"), statusInput(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *CanteenHandler) StatusAll(c *gin.Context) {
	out, err := h.status.ExecuteAll(c.Request.Context(), statusInput(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}
