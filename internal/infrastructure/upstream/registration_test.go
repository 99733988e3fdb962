package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

func attachment(field, filename, contentType, content string) *domain.Attachment {
	return &domain.Attachment{
		Field:       field,
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestSubmitRegistrationEncodesMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("firstName"); got != "JOSE MARIA" {
			t.Errorf("firstName = %q", got)
		}
		if got := r.FormValue("dob"); got != "2000-01-10" {
			t.Errorf("dob = %q", got)
		}
		if got := r.FormValue("numjugador"); got != "10" {
			t.Errorf("numjugador = %q", got)
		}

		file, header, err := r.FormFile("idImage")
		if err != nil {
			t.Fatalf("idImage part missing: %v", err)
		}
		defer file.Close()
		if header.Header.Get("Content-Type") != "image/jpeg" {
			t.Errorf("idImage content type = %q", header.Header.Get("Content-Type"))
		}
		body, _ := io.ReadAll(file)
		if string(body) != "front-bytes" {
			t.Errorf("idImage body = %q", body)
		}

		if _, _, err := r.FormFile("autorizacion"); err == nil {
			t.Error("autorizacion part present, none was attached")
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Player{ID: "p1", FirstName: "JOSE MARIA", TeamName: "Tigres FC"})
	}))
	defer srv.Close()

	draft := &domain.RegistrationDraft{
		ManagerCode:    "AB12",
		TeamName:       "Tigres FC",
		FirstName:      "JOSE MARIA",
		LastName:       "PEREZ",
		BirthDate:      time.Date(2000, time.January, 10, 0, 0, 0, 0, time.UTC),
		Identification: "1712345678",
		JerseyNumber:   "10",
		IDFront:        attachment("idImage", "front.jpg", "image/jpeg", "front-bytes"),
		IDBack:         attachment("idBackImage", "back.jpg", "image/jpeg", "back-bytes"),
		Selfie:         attachment("selfieImage", "selfie.png", "image/png", "selfie-bytes"),
	}

	player, err := newTestClient(srv.URL).SubmitRegistration(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player.ID != "p1" || player.TeamName != "Tigres FC" {
		t.Errorf("player = %+v", player)
	}
}

func TestGetPlayer(t *testing.T) {
	t.Run("returns the record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/jugadores/p1" {
				t.Errorf("path = %q", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Basic x" {
				t.Errorf("authorization = %q", got)
			}
			json.NewEncoder(w).Encode(domain.Player{ID: "p1", GuardianURL: "/uploads/aut.pdf"})
		}))
		defer srv.Close()

		player, err := newTestClient(srv.URL).GetPlayer(context.Background(), "Basic x", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !player.HasGuardianAuthorization() {
			t.Errorf("player = %+v, want stored authorization", player)
		}
	})

	t.Run("maps 404", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"no existe"}`, http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).GetPlayer(context.Background(), "Basic x", "nope")
		if !errors.Is(err, domain.ErrPlayerNotFound) {
			t.Errorf("got %v, want ErrPlayerNotFound", err)
		}
	})
}

func TestUpdatePlayerSendsOnlyTouchedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %q", r.Method)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("numjugador"); got != "7" {
			t.Errorf("numjugador = %q", got)
		}
		if _, ok := r.MultipartForm.Value["firstName"]; ok {
			t.Error("firstName sent, should be omitted when unchanged")
		}
		json.NewEncoder(w).Encode(domain.Player{ID: "p1", JerseyNumber: 7})
	}))
	defer srv.Close()

	player, err := newTestClient(srv.URL).UpdatePlayer(context.Background(), "Basic x", "p1", ports.PlayerUpdate{JerseyNumber: "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player.JerseyNumber != 7 {
		t.Errorf("player = %+v", player)
	}
}
