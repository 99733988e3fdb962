package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligasala/registration-portal/internal/api/middleware"
	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

// FixtureHandler handles the published schedule: public reads and
// admin-credentialed writes.
type FixtureHandler struct {
	service ports.FixtureService
}

func NewFixtureHandler(service ports.FixtureService) *FixtureHandler {
	return &FixtureHandler{service: service}
}

type matchRequest struct {
	HomeTeam       string `json:"equipo1" validate:"required"`
	AwayTeam       string `json:"equipo2" validate:"required"`
	KickOff        string `json:"fechaPartido"`
	HomeExtraValue string `json:"valor_adicional_eq1"`
	AwayExtraValue string `json:"valor_adicional_eq2"`
}

type fixtureRoundRequest struct {
	Number     int            `json:"numeroFecha" validate:"required,gte=1"`
	Title      string         `json:"titulo" validate:"required"`
	DateHeader string         `json:"fechaCabecera"`
	Matches    []matchRequest `json:"partidos" validate:"dive"`
}

func (r fixtureRoundRequest) toDomain() *domain.FixtureRound {
	matches := make([]domain.Match, 0, len(r.Matches))
	for _, m := range r.Matches {
		matches = append(matches, domain.Match{
			HomeTeam:       m.HomeTeam,
			AwayTeam:       m.AwayTeam,
			KickOff:        m.KickOff,
			HomeExtraValue: m.HomeExtraValue,
			AwayExtraValue: m.AwayExtraValue,
		})
	}
	return &domain.FixtureRound{
		Number:     r.Number,
		Title:      r.Title,
		DateHeader: r.DateHeader,
		Matches:    matches,
	}
}

// List handles GET /api/fixture.
func (h *FixtureHandler) List(c echo.Context) error {
	rounds, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if rounds == nil {
		rounds = []domain.FixtureRound{}
	}
	return c.JSON(http.StatusOK, rounds)
}

// Create handles POST /api/fixture.
func (h *FixtureHandler) Create(c echo.Context) error {
	var req fixtureRoundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), middleware.CurrentSession(c), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/fixture/:id.
func (h *FixtureHandler) Update(c echo.Context) error {
	var req fixtureRoundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/fixture/:id.
func (h *FixtureHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
