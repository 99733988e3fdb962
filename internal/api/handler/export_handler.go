package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligasala/registration-portal/internal/api/metrics"
	"github.com/ligasala/registration-portal/internal/api/middleware"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

// ExportHandler streams the binary reports through to the caller.
type ExportHandler struct {
	service ports.ExportService
}

func NewExportHandler(service ports.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// PlayersExcel handles GET /api/users/export.
func (h *ExportHandler) PlayersExcel(c echo.Context) error {
	return h.stream(c, "players_excel", func(ctx context.Context) (*ports.Download, error) {
		return h.service.PlayersExcel(ctx, middleware.CurrentSession(c))
	})
}

// RosterWord handles GET /api/jugadores/reporte/:id.
func (h *ExportHandler) RosterWord(c echo.Context) error {
	return h.stream(c, "roster_word", func(ctx context.Context) (*ports.Download, error) {
		return h.service.RosterWord(ctx, middleware.CurrentSession(c), c.Param("id"))
	})
}

// RosterPDF handles GET /api/jugadores/reporte-pdf/:id.
func (h *ExportHandler) RosterPDF(c echo.Context) error {
	return h.stream(c, "roster_pdf", func(ctx context.Context) (*ports.Download, error) {
		return h.service.RosterPDF(ctx, middleware.CurrentSession(c), c.Param("id"))
	})
}

// ConsolidatedAuthorizations handles GET /api/admin/autorizaciones/consolidado.
func (h *ExportHandler) ConsolidatedAuthorizations(c echo.Context) error {
	return h.stream(c, "authorizations_pdf", func(ctx context.Context) (*ports.Download, error) {
		return h.service.ConsolidatedAuthorizations(ctx, middleware.CurrentSession(c))
	})
}

// stream fetches the report and copies it straight to the response. The
// body is always closed, whatever the outcome.
func (h *ExportHandler) stream(c echo.Context, report string, fetch func(context.Context) (*ports.Download, error)) error {
	d, err := fetch(c.Request().Context())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(report, "error").Inc()
		return err
	}
	defer d.Body.Close()

	metrics.ExportsTotal.WithLabelValues(report, "ok").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, d.Filename))
	return c.Stream(http.StatusOK, d.ContentType, d.Body)
}
