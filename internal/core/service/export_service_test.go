package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

type stubExportGateway struct {
	download *ports.Download
	err      error
}

func (g *stubExportGateway) PlayersExcel(_ context.Context, credential string) (*ports.Download, error) {
	return g.download, g.err
}

func (g *stubExportGateway) RosterWord(_ context.Context, credential, managerID string) (*ports.Download, error) {
	return g.download, g.err
}

func (g *stubExportGateway) RosterPDF(_ context.Context, credential, managerID string) (*ports.Download, error) {
	return g.download, g.err
}

func (g *stubExportGateway) ConsolidatedAuthorizations(_ context.Context, credential string) (*ports.Download, error) {
	return g.download, g.err
}

func stubDownload(filename string) *ports.Download {
	return &ports.Download{
		ContentType: "application/octet-stream",
		Filename:    filename,
		Body:        io.NopCloser(strings.NewReader("binary")),
	}
}

func TestPlayersExcelRequiresAdmin(t *testing.T) {
	svc := NewExportService(&stubExportGateway{download: stubDownload("jugadores.xlsx")}, discardLogger)

	if _, err := svc.PlayersExcel(context.Background(), managerSession()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}

	d, err := svc.PlayersExcel(context.Background(), adminSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Filename != "jugadores.xlsx" {
		t.Errorf("filename = %q", d.Filename)
	}
}

func TestRosterReportsAllowManagers(t *testing.T) {
	svc := NewExportService(&stubExportGateway{download: stubDownload("Reporte_Tigres FC.docx")}, discardLogger)

	if _, err := svc.RosterWord(context.Background(), managerSession(), "d1"); err != nil {
		t.Errorf("manager word report: %v", err)
	}
	if _, err := svc.RosterPDF(context.Background(), nil, "d1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("no session: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.RosterWord(context.Background(), managerSession(), ""); !errors.Is(err, domain.ErrManagerNotFound) {
		t.Errorf("blank manager id: got %v, want ErrManagerNotFound", err)
	}
}

func TestConsolidatedAuthorizationsSurfaceGatewayError(t *testing.T) {
	svc := NewExportService(&stubExportGateway{err: domain.ErrUpstreamTimeout}, discardLogger)

	_, err := svc.ConsolidatedAuthorizations(context.Background(), adminSession())
	if !errors.Is(err, domain.ErrUpstreamTimeout) {
		t.Errorf("got %v, want ErrUpstreamTimeout", err)
	}
}
