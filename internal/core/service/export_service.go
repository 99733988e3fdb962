package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

type ExportService struct {
	gateway ports.ExportGateway
	logger  zerolog.Logger
}

func NewExportService(gateway ports.ExportGateway, logger zerolog.Logger) *ExportService {
	return &ExportService{gateway: gateway, logger: logger}
}

func (s *ExportService) PlayersExcel(ctx context.Context, sess *domain.Session) (*ports.Download, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.download(ctx, "players_excel", func(ctx context.Context) (*ports.Download, error) {
		return s.gateway.PlayersExcel(ctx, sess.Credential)
	})
}

func (s *ExportService) RosterWord(ctx context.Context, sess *domain.Session, managerID string) (*ports.Download, error) {
	if err := requireCredential(sess); err != nil {
		return nil, err
	}
	if managerID == "" {
		return nil, domain.ErrManagerNotFound
	}
	return s.download(ctx, "roster_word", func(ctx context.Context) (*ports.Download, error) {
		return s.gateway.RosterWord(ctx, sess.Credential, managerID)
	})
}

func (s *ExportService) RosterPDF(ctx context.Context, sess *domain.Session, managerID string) (*ports.Download, error) {
	if err := requireCredential(sess); err != nil {
		return nil, err
	}
	if managerID == "" {
		return nil, domain.ErrManagerNotFound
	}
	return s.download(ctx, "roster_pdf", func(ctx context.Context) (*ports.Download, error) {
		return s.gateway.RosterPDF(ctx, sess.Credential, managerID)
	})
}

func (s *ExportService) ConsolidatedAuthorizations(ctx context.Context, sess *domain.Session) (*ports.Download, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.download(ctx, "authorizations_pdf", func(ctx context.Context) (*ports.Download, error) {
		return s.gateway.ConsolidatedAuthorizations(ctx, sess.Credential)
	})
}

func (s *ExportService) download(ctx context.Context, kind string, fetch func(context.Context) (*ports.Download, error)) (*ports.Download, error) {
	d, err := fetch(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("report", kind).Msg("export failed")
		return nil, err
	}
	s.logger.Info().Str("report", kind).Str("filename", d.Filename).Msg("export ready")
	return d, nil
}
