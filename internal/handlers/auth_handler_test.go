package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"phlegm-site/internal/config"
	"phlegm-site/internal/models"
)

func doLogin(t *testing.T, cfg *config.Config, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewAuthHandler(cfg)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Login(w, req)
	return w
}

func TestLoginIssuesAdminToken(t *testing.T) {
	cfg := &config.Config{AdminPassword: "hunter2", JWTSecret: "dev", JWTExpiresInSeconds: 3600}
	w := doLogin(t, cfg, `{"password": "hunter2"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ExpiresIn != 3600 {
		t.Fatalf("expected expires_in 3600, got %d", resp.ExpiresIn)
	}

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("dev"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "admin" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	cfg := &config.Config{AdminPassword: "hunter2", JWTSecret: "dev"}
	w := doLogin(t, cfg, `{"password": "letmein"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

// With no password configured nothing authenticates, including empty input.
func TestLoginNoPasswordConfigured(t *testing.T) {
	cfg := &config.Config{JWTSecret: "dev"}
	w := doLogin(t, cfg, `{"password": "anything"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginMissingPassword(t *testing.T) {
	cfg := &config.Config{AdminPassword: "hunter2", JWTSecret: "dev"}
	w := doLogin(t, cfg, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginPrefersBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	cfg := &config.Config{
		AdminPassword:     "ignored-plaintext",
		AdminPasswordHash: string(hash),
		JWTSecret:         "dev",
	}

	if w := doLogin(t, cfg, `{"password": "s3cret"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for hash match, got %d", w.Code)
	}
	if w := doLogin(t, cfg, `{"password": "ignored-plaintext"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("plaintext must not match when a hash is set, got %d", w.Code)
	}
}
