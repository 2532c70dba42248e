package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"sedbms/internal/model"
	"sedbms/internal/service"
)

// StudentHandler handles student endpoints.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudentRequest represents a new student form. Numeric fields are
// pointers so that only absence is a bad request; range checks belong to the store.
type CreateStudentRequest struct {
	USN             string `json:"usn" form:"usn" validate:"required"`
	Name            string `json:"name" form:"name" validate:"required"`
	Branch          string `json:"branch" form:"branch" validate:"required"`
	AdmissionYear   *int   `json:"admission_year" form:"admission_year" validate:"required"`
	CurrentSemester *int   `json:"current_semester" form:"current_semester" validate:"required"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
}

// StudentResponse wraps a created student.
type StudentResponse struct {
	Message string         `json:"message"`
	Student *model.Student `json:"student"`
}

// DeleteStudentResponse confirms a deletion.
type DeleteStudentResponse struct {
	Message string `json:"message"`
	USN     string `json:"usn"`
	Name    string `json:"name"`
}

// List godoc
// @Summary List students with CGPA
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.StudentSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.studentService.ListWithCGPA(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, students)
}

// Create godoc
// @Summary Add a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStudentRequest true "Student"
// @Success 201 {object} StudentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req CreateStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	student := &model.Student{
		USN:             req.USN,
		Name:            req.Name,
		Branch:          req.Branch,
		AdmissionYear:   *req.AdmissionYear,
		CurrentSemester: *req.CurrentSemester,
		Email:           req.Email,
		Phone:           req.Phone,
	}
	if err := h.studentService.Create(c.Request().Context(), student); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, StudentResponse{
		Message: "Student added successfully!",
		Student: student,
	})
}

// Get godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param usn path string true "USN"
// @Success 200 {object} model.Student
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/{usn} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.studentService.Get(c.Request().Context(), c.Param("usn"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, student)
}

// Delete godoc
// @Summary Delete a student and all their marks
// @Description Admin only.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param usn path string true "USN"
// @Success 200 {object} DeleteStudentResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/{usn} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	usn := model.NormalizeKey(c.Param("usn"))
	name, err := h.studentService.Delete(c.Request().Context(), usn)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, DeleteStudentResponse{
		Message: fmt.Sprintf("Student %s - %s deleted successfully!", usn, name),
		USN:     usn,
		Name:    name,
	})
}
