package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligasala/registration-portal/internal/api/metrics"
	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
	"github.com/ligasala/registration-portal/internal/core/service"
)

// RegistrationHandler handles the public registration endpoints.
type RegistrationHandler struct {
	service ports.RegistrationService
}

func NewRegistrationHandler(service ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

type windowResponse struct {
	Open   bool   `json:"open"`
	Notice string `json:"notice,omitempty"`
}

type validateCodeResponse struct {
	Name string `json:"nombre"`
}

type registerResponse struct {
	Message string         `json:"message"`
	Field   string         `json:"field,omitempty"`
	Player  *domain.Player `json:"player,omitempty"`
}

// Window handles GET /api/registration.
//
// @Summary      Registration window state
// @Tags         registration
// @Produce      json
// @Success      200  {object}  windowResponse
// @Router       /api/registration [get]
func (h *RegistrationHandler) Window(c echo.Context) error {
	w := h.service.Window()
	resp := windowResponse{Open: w.Open}
	if !w.Open {
		resp.Notice = w.Notice
	}
	return c.JSON(http.StatusOK, resp)
}

// ValidateCode handles GET /api/equipos/validate/:code.
//
// @Summary      Resolve a manager code to its team name
// @Tags         registration
// @Produce      json
// @Param        code  path      string  true  "Manager code"
// @Success      200   {object}  validateCodeResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/equipos/validate/{code} [get]
func (h *RegistrationHandler) ValidateCode(c echo.Context) error {
	name, err := h.service.ValidateManagerCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(lookupResult(err)).Inc()
		return err
	}
	metrics.LookupsTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, validateCodeResponse{Name: name})
}

// Register handles POST /api/users.
//
// @Summary      Register a player
// @Tags         registration
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  registerResponse
// @Failure      400  {object}  registerResponse
// @Failure      409  {object}  registerResponse
// @Failure      413  {object}  registerResponse
// @Router       /api/users [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	metrics.SubmissionsInFlight.Inc()
	defer metrics.SubmissionsInFlight.Dec()

	// The team name is not read from the form; the service resolves the
	// manager code itself and fills it in.
	draft := &domain.RegistrationDraft{
		ManagerCode:           c.FormValue("codigoDirigente"),
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

	result, err := h.service.Register(c.Request().Context(), draft)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(submissionOutcome(err)).Inc()
		resp := registerResponse{Message: service.SubmissionMessage(err)}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			resp.Field = verr.Field
		}
		return c.JSON(statusFor(err), resp)
	}

	metrics.SubmissionsTotal.WithLabelValues("registered").Inc()
	return c.JSON(http.StatusCreated, registerResponse{Message: result.Message, Player: result.Player})
}

func lookupResult(err error) string {
	if errors.Is(err, domain.ErrInvalidManagerCode) {
		return "invalid"
	}
	return "error"
}

func submissionOutcome(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "rejected"
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "unreachable"
	default:
		return "upstream_error"
	}
}
