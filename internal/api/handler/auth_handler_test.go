package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fcamara/user-address-api/internal/api"
	"github.com/fcamara/user-address-api/internal/api/handler"
	"github.com/fcamara/user-address-api/internal/core/domain"
)

type stubAuthService struct {
	token string
	err   error
	email string
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, error) {
	s.email = email
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func (s *stubAuthService) ResolveToken(_ context.Context, _ string) (*domain.Principal, error) {
	return nil, domain.ErrInvalidCredentials
}

func performLogin(t *testing.T, svc *stubAuthService, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.NewAuthHandler(svc).Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{token: "signed-token"}

	rec := performLogin(t, svc, `{"email":"u1@example.com","password":"pass123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected issued token, got %q", resp.Token)
	}
	if svc.email != "u1@example.com" {
		t.Fatalf("expected email to reach the service, got %q", svc.email)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}

	rec := performLogin(t, svc, `{"email":"u1@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("expected an error message in the envelope")
	}
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"pass123"}`},
		{"malformed email", `{"email":"not-an-email","password":"pass123"}`},
		{"missing password", `{"email":"u1@example.com"}`},
		{"malformed json", `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{token: "never"}
			rec := performLogin(t, svc, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if svc.email != "" {
				t.Fatalf("service must not be called for invalid input")
			}
		})
	}
}
