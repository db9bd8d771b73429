package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/services"
	"github.com/skillshare-lk/user-service/internal/utils"
	"github.com/skillshare-lk/user-service/internal/validator"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
	lastReq   *validator.SignupRequest
}

func (s *stubAuthService) Signup(ctx context.Context, req *validator.SignupRequest) (*services.TokenResponse, error) {
	s.lastReq = req
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &services.TokenResponse{
		Token: "tok",
		User:  &models.PublicUser{ID: "u1", Email: req.Email, Role: models.UserRole(req.Role)},
	}, nil
}

func (s *stubAuthService) Login(ctx context.Context, req *validator.LoginRequest) (*services.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &services.TokenResponse{
		Token: "tok",
		User:  &models.PublicUser{ID: "u1", Email: req.Email},
	}, nil
}

func (s *stubAuthService) GetProfile(ctx context.Context, userID string) (*models.PublicUser, error) {
	return &models.PublicUser{ID: userID}, nil
}

type noopStorage struct{}

func (noopStorage) SaveProfilePhoto(file *multipart.FileHeader) (string, error) {
	return "/uploads/profiles/fake.jpg", nil
}

func newAuthHandlerRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := NewAuthHandler(svc, noopStorage{}, logger)

	router := gin.New()
	router.POST("/api/auth/signup", h.Signup)
	router.POST("/api/auth/login", h.Login)
	return router
}

func signupForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestSignupHandler(t *testing.T) {
	svc := &stubAuthService{}
	router := newAuthHandlerRouter(svc)

	body, contentType := signupForm(t, map[string]string{
		"email":     "a@b.com",
		"password":  "secret1",
		"firstName": "A",
		"lastName":  "B",
		"role":      "learner",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body)
	}
	if svc.lastReq == nil || svc.lastReq.Email != "a@b.com" || svc.lastReq.Role != "learner" {
		t.Errorf("form not bound into request: %+v", svc.lastReq)
	}

	var resp services.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token == "" {
		t.Error("response missing token")
	}
}

func TestSignupHandlerEmailTaken(t *testing.T) {
	svc := &stubAuthService{signupErr: services.ErrEmailTaken}
	router := newAuthHandlerRouter(svc)

	body, contentType := signupForm(t, map[string]string{
		"email":     "a@b.com",
		"password":  "secret1",
		"firstName": "A",
		"lastName":  "B",
		"role":      "learner",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	if !strings.Contains(resp.Error, "already exists") {
		t.Errorf("error = %q, want an email-exists indicator", resp.Error)
	}
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: services.ErrInvalidCredentials}
	router := newAuthHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginHandlerMalformedBody(t *testing.T) {
	router := newAuthHandlerRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
