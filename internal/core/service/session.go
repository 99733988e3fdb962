package service

import "github.com/ligasala/registration-portal/internal/core/domain"

func requireCredential(sess *domain.Session) error {
	if sess == nil || sess.Credential == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

func requireAdmin(sess *domain.Session) error {
	if err := requireCredential(sess); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
