package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL:       baseURL,
		LookupTimeout: 2 * time.Second,
		SubmitTimeout: 2 * time.Second,
		ExportTimeout: 2 * time.Second,
	}, zerolog.Nop())
}

func TestValidateManagerCode(t *testing.T) {
	t.Run("resolves team name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/equipos/validate/AB12" {
				t.Errorf("path = %q", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"nombre":"Tigres FC"}`))
		}))
		defer srv.Close()

		name, err := newTestClient(srv.URL).ValidateManagerCode(context.Background(), "AB12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "Tigres FC" {
			t.Errorf("name = %q", name)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"no existe"}`, http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).ValidateManagerCode(context.Background(), "ZZ99")
		if !errors.Is(err, domain.ErrInvalidManagerCode) {
			t.Errorf("got %v, want ErrInvalidManagerCode", err)
		}
	})
}

func TestStatusErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Identificación duplicada"}`))
	}))
	defer srv.Close()

	var out []domain.Manager
	err := newTestClient(srv.URL).getJSON(context.Background(), newTestClient(srv.URL).lookup, "/api/admin/dirigentes", "Basic x", &out)
	var uerr *domain.UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if uerr.Status != http.StatusConflict || uerr.Detail != "Identificación duplicada" {
		t.Errorf("got %+v", uerr)
	}
}

func TestTimeoutDistinctFromUnreachable(t *testing.T) {
	t.Run("slow server maps to timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()

		c := New(Config{
			BaseURL:       srv.URL,
			LookupTimeout: 50 * time.Millisecond,
			SubmitTimeout: 50 * time.Millisecond,
			ExportTimeout: 50 * time.Millisecond,
		}, zerolog.Nop())

		var out struct{}
		err := c.getJSON(context.Background(), c.lookup, "/api/fixture", "", &out)
		if !errors.Is(err, domain.ErrUpstreamTimeout) {
			t.Errorf("got %v, want ErrUpstreamTimeout", err)
		}
	})

	t.Run("closed server maps to unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := newTestClient(srv.URL)
		var out struct{}
		err := c.getJSON(context.Background(), c.lookup, "/api/fixture", "", &out)
		if !errors.Is(err, domain.ErrUpstreamUnavailable) {
			t.Errorf("got %v, want ErrUpstreamUnavailable", err)
		}
	})
}

func TestCredentialForwardedVerbatim(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).ListManagers(context.Background(), "Basic YWRtaW46c2VjcmV0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Basic YWRtaW46c2VjcmV0" {
		t.Errorf("authorization header = %q", got)
	}
}

func TestLoginMapsRejectionToUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"credenciales inválidas"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Login(context.Background(), "dir", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}
