package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligasala/registration-portal/internal/api/middleware"
	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

// AdminHandler handles login and manager/team management.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type loginRequest struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type managerRequest struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"password"`
	Name     string `json:"nombre" validate:"required"`
}

type teamRequest struct {
	Name      string `json:"nombre" validate:"required"`
	Code      string `json:"codigo" validate:"required"`
	ManagerID string `json:"dirigente"`
}

// Login handles POST /api/dirigentes/login.
//
// @Summary      Check a credential pair and learn its role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  domain.LoginResult
// @Failure      401   {object}  map[string]string
// @Router       /api/dirigentes/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ListManagers handles GET /api/admin/dirigentes.
func (h *AdminHandler) ListManagers(c echo.Context) error {
	managers, err := h.service.ListManagers(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return err
	}
	if managers == nil {
		managers = []domain.Manager{}
	}
	return c.JSON(http.StatusOK, managers)
}

// CreateManager handles POST /api/admin/dirigentes.
func (h *AdminHandler) CreateManager(c echo.Context) error {
	var req managerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateManager(c.Request().Context(), middleware.CurrentSession(c), domain.Manager{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateManager handles PUT /api/admin/dirigentes/:id.
func (h *AdminHandler) UpdateManager(c echo.Context) error {
	var req managerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateManager(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"), domain.Manager{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteManager handles DELETE /api/admin/dirigentes/:id.
func (h *AdminHandler) DeleteManager(c echo.Context) error {
	if err := h.service.DeleteManager(c.Request().Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTeams handles GET /api/admin/equipos.
func (h *AdminHandler) ListTeams(c echo.Context) error {
	teams, err := h.service.ListTeams(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return err
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	return c.JSON(http.StatusOK, teams)
}

// CreateTeam handles POST /api/admin/equipos.
func (h *AdminHandler) CreateTeam(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateTeam(c.Request().Context(), middleware.CurrentSession(c), domain.Team{
		Name:      req.Name,
		Code:      req.Code,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateTeam handles PUT /api/admin/equipos/:id.
func (h *AdminHandler) UpdateTeam(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload inválido")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateTeam(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"), domain.Team{
		Name:      req.Name,
		Code:      req.Code,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteTeam handles DELETE /api/admin/equipos/:id.
func (h *AdminHandler) DeleteTeam(c echo.Context) error {
	if err := h.service.DeleteTeam(c.Request().Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
