package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Varun5711/promokit/internal/auth"
	"github.com/Varun5711/promokit/internal/service"
	"github.com/Varun5711/promokit/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthHandler() *AuthHandler {
	store := storage.NewMemoryUserStore()
	hasher := auth.NewHasher(bcrypt.MinCost)
	jwtManager := auth.NewJWTManager("test-secret", 7*24*time.Hour)
	users := service.NewUserService(store, hasher, jwtManager)
	return NewAuthHandler(users, nil)
}

func doSignup(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Signup(w, req)
	return w
}

func doLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Login(w, req)
	return w
}

func doMe(t *testing.T, h *AuthHandler, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	h.Me(w, req)
	return w
}

func TestSignup(t *testing.T) {
	h := newTestAuthHandler()

	w := doSignup(t, h, `{"email":"a@b.com","password":"secret1","name":"A"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"success":true}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	h := newTestAuthHandler()

	doSignup(t, h, `{"email":"a@b.com","password":"secret1","name":"A"}`)
	w := doSignup(t, h, `{"email":"a@b.com","password":"other-password","name":"B"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Email exists"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestSignup_InvalidBody(t *testing.T) {
	h := newTestAuthHandler()

	w := doSignup(t, h, `{not json`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	h := newTestAuthHandler()

	doSignup(t, h, `{"email":"a@b.com","password":"secret1","name":"A"}`)
	w := doLogin(t, h, `{"email":"a@b.com","password":"secret1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected non-empty token")
	}
	if resp.Name != "A" {
		t.Errorf("expected name 'A', got '%s'", resp.Name)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newTestAuthHandler()

	doSignup(t, h, `{"email":"a@b.com","password":"secret1","name":"A"}`)

	// Unknown email and wrong password must produce the identical response.
	wMissing := doLogin(t, h, `{"email":"nobody@b.com","password":"secret1"}`)
	wWrongPw := doLogin(t, h, `{"email":"a@b.com","password":"wrong-password"}`)

	for _, w := range []*httptest.ResponseRecorder{wMissing, wWrongPw} {
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Invalid credentials"}` {
			t.Errorf("unexpected body: %s", got)
		}
	}
	if wMissing.Body.String() != wWrongPw.Body.String() {
		t.Error("failure branches must be indistinguishable")
	}
}

func TestMe(t *testing.T) {
	h := newTestAuthHandler()

	doSignup(t, h, `{"email":"a@b.com","password":"secret1","name":"A"}`)
	login := doLogin(t, h, `{"email":"a@b.com","password":"secret1"}`)

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	w := doMe(t, h, "Bearer "+loginResp.Token)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Iat   int64  `json:"iat"`
		Exp   int64  `json:"exp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &claims); err != nil {
		t.Fatalf("failed to decode claims: %v", err)
	}
	if claims.Email != "a@b.com" || claims.Name != "A" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Exp <= claims.Iat {
		t.Errorf("expected exp after iat, got iat=%d exp=%d", claims.Iat, claims.Exp)
	}
}

func TestMe_NoToken(t *testing.T) {
	h := newTestAuthHandler()

	w := doMe(t, h, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"No token"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestMe_GarbledToken(t *testing.T) {
	h := newTestAuthHandler()

	w := doMe(t, h, "Bearer not-a-real-token")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Invalid token"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestMe_ExpiredToken(t *testing.T) {
	store := storage.NewMemoryUserStore()
	hasher := auth.NewHasher(bcrypt.MinCost)
	expired := auth.NewJWTManager("test-secret", -time.Hour)
	h := NewAuthHandler(service.NewUserService(store, hasher, expired), nil)

	doSignup(t, h, `{"email":"a@b.com","password":"secret1","name":"A"}`)
	login := doLogin(t, h, `{"email":"a@b.com","password":"secret1"}`)

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	w := doMe(t, h, "Bearer "+loginResp.Token)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Invalid token"}` {
		t.Errorf("unexpected body: %s", got)
	}
}
