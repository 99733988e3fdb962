package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligasala/registration-portal/internal/api/middleware"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

// RosterHandler handles roster viewing and editing for managers plus the
// public roster-by-code view.
type RosterHandler struct {
	service ports.RosterService
}

func NewRosterHandler(service ports.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// ListByManager handles GET /api/dirigentes/:id/jugadores.
func (h *RosterHandler) ListByManager(c echo.Context) error {
	players, err := h.service.ListByManager(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

// PublicRoster handles GET /api/equipos/:codigo/jugadores.
func (h *RosterHandler) PublicRoster(c echo.Context) error {
	roster, err := h.service.PublicRoster(c.Request().Context(), c.Param("codigo"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roster)
}

// Update handles PUT /api/jugadores/:id. The payload is the same multipart
// envelope as registration, with every field optional.
func (h *RosterHandler) Update(c echo.Context) error {
	update := ports.PlayerUpdate{
		FirstName:             c.FormValue("firstName"),
		LastName:              c.FormValue("lastName"),
		BirthDate:             parseBirthDate(c.FormValue("dob")),
		Identification:        c.FormValue("identificacion"),
		JerseyNumber:          c.FormValue("numjugador"),
		IDFront:               formAttachment(c, "idImage"),
		IDBack:                formAttachment(c, "idBackImage"),
		Selfie:                formAttachment(c, "selfieImage"),
		GuardianAuthorization: formAttachment(c, "autorizacion"),
	}

	player, err := h.service.UpdatePlayer(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, player)
}

// Delete handles DELETE /api/jugadores/:id.
func (h *RosterHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePlayer(c.Request().Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
