package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sedbms/internal/model"
	"sedbms/internal/service"
)

// MarkHandler handles marks entry.
type MarkHandler struct {
	markService service.MarkService
}

// NewMarkHandler creates a new mark handler.
func NewMarkHandler(markService service.MarkService) *MarkHandler {
	return &MarkHandler{markService: markService}
}

// UpsertMarkRequest represents the marks entry form. Numeric fields are
// pointers so a missing field can be told apart from a zero value.
type UpsertMarkRequest struct {
	USN         string `json:"usn" form:"usn" validate:"required"`
	SubjectCode string `json:"subject_code" form:"subject_code" validate:"required"`
	Semester    *int   `json:"semester" form:"semester" validate:"required"`
	CIEMarks    *int   `json:"cie_marks" form:"cie" validate:"required"`
	SEEMarks    *int   `json:"see_marks" form:"see" validate:"required"`
}

// MarkResponse wraps a stored mark.
type MarkResponse struct {
	Message string      `json:"message"`
	Mark    *model.Mark `json:"mark"`
}

// List godoc
// @Summary List all marks with totals and grade points
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MarkDetail
// @Failure 401 {object} errors.ErrorResponse
// @Router /marks [get]
func (h *MarkHandler) List(c echo.Context) error {
	marks, err := h.markService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, marks)
}

// Upsert godoc
// @Summary Add or update marks
// @Description A second entry for the same student, subject and semester replaces the first.
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpsertMarkRequest true "Marks"
// @Success 200 {object} MarkResponse
// @Success 201 {object} MarkResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /marks [post]
func (h *MarkHandler) Upsert(c echo.Context) error {
	var req UpsertMarkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mark := &model.Mark{
		USN:         req.USN,
		SubjectCode: req.SubjectCode,
		Semester:    *req.Semester,
		CIEMarks:    *req.CIEMarks,
		SEEMarks:    *req.SEEMarks,
	}
	created, err := h.markService.Upsert(c.Request().Context(), mark)
	if err != nil {
		return respondError(err)
	}

	if created {
		return c.JSON(http.StatusCreated, MarkResponse{Message: "Marks added successfully!", Mark: mark})
	}
	return c.JSON(http.StatusOK, MarkResponse{Message: "Marks updated successfully!", Mark: mark})
}
