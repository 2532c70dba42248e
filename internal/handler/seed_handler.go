package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sedbms/internal/seed"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	repos   seed.Repos
	fixture *seed.Fixture
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(repos seed.Repos, fixture *seed.Fixture) *SeedHandler {
	return &SeedHandler{repos: repos, fixture: fixture}
}

// SeedResponse reports how many records a seed run created.
type SeedResponse struct {
	Message  string `json:"message"`
	Users    int    `json:"users"`
	Students int    `json:"students"`
	Subjects int    `json:"subjects"`
	Marks    int    `json:"marks"`
}

// Seed godoc
// @Summary Load default accounts and sample records
// @Description Admin only. Records that already exist are left unchanged.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	res, err := seed.Apply(c.Request().Context(), h.repos, h.fixture)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Message:  "Seed completed",
		Users:    res.Users,
		Students: res.Students,
		Subjects: res.Subjects,
		Marks:    res.Marks,
	})
}
