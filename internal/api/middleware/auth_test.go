package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/course-api/internal/core/domain"
)

type stubAuthenticator struct {
	users map[string]string // email -> password
	err   error
	calls int
}

func (s *stubAuthenticator) Authenticate(_ context.Context, email, password string) (*domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if pw, ok := s.users[email]; !ok || pw != password {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.User{ID: "u1", EmailAddress: email}, nil
}

func newStubAuthenticator() *stubAuthenticator {
	return &stubAuthenticator{users: map[string]string{"alice@example.com": "Secret123"}}
}

func runAuth(t *testing.T, auth *stubAuthenticator, setup func(r *http.Request)) (called bool, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := BasicAuth(auth, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err = handler(c)
	return called, err
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("alice@example.com", "Secret123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := BasicAuth(newStubAuthenticator(), zerolog.Nop())(func(c echo.Context) error {
		called = true
		u := Principal(c)
		if u == nil || u.EmailAddress != "alice@example.com" {
			t.Fatalf("principal not set: %+v", u)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBasicAuth_MissingHeader(t *testing.T) {
	called, err := runAuth(t, newStubAuthenticator(), nil)
	if called {
		t.Fatal("should not reach next")
	}
	if !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestBasicAuth_NonBasicScheme(t *testing.T) {
	called, err := runAuth(t, newStubAuthenticator(), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer abc")
	})
	if called || !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials without reaching next, got %v (called=%v)", err, called)
	}
}

func TestBasicAuth_MalformedEncoding(t *testing.T) {
	called, err := runAuth(t, newStubAuthenticator(), func(r *http.Request) {
		r.Header.Set("Authorization", "Basic %%%not-base64")
	})
	if called || !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials without reaching next, got %v (called=%v)", err, called)
	}
}

func TestBasicAuth_EmptyPassword(t *testing.T) {
	called, err := runAuth(t, newStubAuthenticator(), func(r *http.Request) {
		r.SetBasicAuth("alice@example.com", "")
	})
	if called || !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials without reaching next, got %v (called=%v)", err, called)
	}
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	called, err := runAuth(t, newStubAuthenticator(), func(r *http.Request) {
		r.SetBasicAuth("alice@example.com", "secret123")
	})
	if called || !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials without reaching next, got %v (called=%v)", err, called)
	}
}

func TestBasicAuth_UnknownEmail(t *testing.T) {
	called, err := runAuth(t, newStubAuthenticator(), func(r *http.Request) {
		r.SetBasicAuth("ghost@example.com", "Secret123")
	})
	if called || !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials without reaching next, got %v (called=%v)", err, called)
	}
}

func TestBasicAuth_StoreErrorPropagates(t *testing.T) {
	auth := newStubAuthenticator()
	auth.err = errors.New("mongo down")

	called, err := runAuth(t, auth, func(r *http.Request) {
		r.SetBasicAuth("alice@example.com", "Secret123")
	})
	if called {
		t.Fatal("should not reach next")
	}
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected raw store error, got %v", err)
	}
}

func TestPrincipal_AbsentOutsideAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if Principal(c) != nil {
		t.Fatal("expected nil principal")
	}
}
