package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sedbms/internal/model"
	"sedbms/internal/service"
)

// SubjectHandler handles subject endpoints.
type SubjectHandler struct {
	subjectService service.SubjectService
}

// NewSubjectHandler creates a new subject handler.
func NewSubjectHandler(subjectService service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// CreateSubjectRequest represents a new subject form.
type CreateSubjectRequest struct {
	Code        string `json:"code" form:"code" validate:"required"`
	Name        string `json:"name" form:"name" validate:"required"`
	Credits     *int   `json:"credits" form:"credits" validate:"required"`
	Semester    *int   `json:"semester" form:"semester" validate:"required"`
	SubjectType string `json:"subject_type" form:"subject_type"`
}

// SubjectResponse wraps a created subject.
type SubjectResponse struct {
	Message string         `json:"message"`
	Subject *model.Subject `json:"subject"`
}

// List godoc
// @Summary List subjects
// @Description Filtered by semester and ordered by code, or all ordered by semester and code.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param semester query int false "Semester filter"
// @Success 200 {array} model.Subject
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /subjects [get]
func (h *SubjectHandler) List(c echo.Context) error {
	semester := 0
	if raw := c.QueryParam("semester"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return badRequest("invalid semester")
		}
		semester = n
	}

	subjects, err := h.subjectService.List(c.Request().Context(), semester)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, subjects)
}

// Create godoc
// @Summary Add a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSubjectRequest true "Subject"
// @Success 201 {object} SubjectResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /subjects [post]
func (h *SubjectHandler) Create(c echo.Context) error {
	var req CreateSubjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subject := &model.Subject{
		Code:        req.Code,
		Name:        req.Name,
		Credits:     *req.Credits,
		Semester:    *req.Semester,
		SubjectType: req.SubjectType,
	}
	if err := h.subjectService.Create(c.Request().Context(), subject); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, SubjectResponse{
		Message: "Subject added successfully!",
		Subject: subject,
	})
}
