package upstream

import (
	"context"
	"mime"
	"net/http"
	"net/url"

	"github.com/ligasala/registration-portal/internal/core/ports"
)

// The fallback filenames match the patterns the reports are saved under.
// When the upstream sets Content-Disposition its filename wins, which is how
// the roster reports get their Reporte_<equipo> names.
const (
	playersExcelFilename   = "jugadores.xlsx"
	rosterWordFilename     = "Reporte.docx"
	rosterPDFFilename      = "Reporte.pdf"
	consolidatedFilename   = "autorizaciones_consolidado.pdf"
	defaultBinaryMediaType = "application/octet-stream"
)

func (c *Client) PlayersExcel(ctx context.Context, credential string) (*ports.Download, error) {
	return c.download(ctx, "/api/users/export", credential, playersExcelFilename)
}

func (c *Client) RosterWord(ctx context.Context, credential, managerID string) (*ports.Download, error) {
	return c.download(ctx, "/api/jugadores/reporte/"+url.PathEscape(managerID), credential, rosterWordFilename)
}

func (c *Client) RosterPDF(ctx context.Context, credential, managerID string) (*ports.Download, error) {
	return c.download(ctx, "/api/jugadores/reporte-pdf/"+url.PathEscape(managerID), credential, rosterPDFFilename)
}

func (c *Client) ConsolidatedAuthorizations(ctx context.Context, credential string) (*ports.Download, error) {
	return c.download(ctx, "/api/admin/autorizaciones/consolidado", credential, consolidatedFilename)
}

// download issues a report request under the export timeout and hands the
// body back unread. The caller streams and closes it.
func (c *Client) download(ctx context.Context, path, credential, fallbackFilename string) (*ports.Download, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, credential, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(c.export, req)
	if err != nil {
		return nil, err
	}
	if !success(resp.StatusCode) {
		return nil, statusError(resp)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultBinaryMediaType
	}
	return &ports.Download{
		ContentType: contentType,
		Filename:    dispositionFilename(resp.Header.Get("Content-Disposition"), fallbackFilename),
		Body:        resp.Body,
	}, nil
}

func dispositionFilename(disposition, fallback string) string {
	if disposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return fallback
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return fallback
}
