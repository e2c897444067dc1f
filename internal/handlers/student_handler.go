package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/student"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httpresp"
	ucStudent "github.com/BruksfildServices01/canteen-scheduler/internal/usecase/student"
)

type StudentHandler struct {
	create *ucStudent.CreateStudent
	get    *ucStudent.GetStudent
}

func NewStudentHandler(
	create *ucStudent.CreateStudent,
	get *ucStudent.GetStudent,
) *StudentHandler {
	return &StudentHandler{create: create, get: get}
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req domain.Draft
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed JSON body.")
		return
	}

	s, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *StudentHandler) Get(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}
