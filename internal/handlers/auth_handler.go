package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Varun5711/promokit/internal/events"
	"github.com/Varun5711/promokit/internal/logger"
	usermodel "github.com/Varun5711/promokit/internal/models/user"
	"github.com/Varun5711/promokit/internal/service"
	"github.com/Varun5711/promokit/internal/validation"
)

// Client-facing error strings are part of the API contract and must not
// change: the login failure message is identical for unknown-email and
// wrong-password, and /me does not say why a token was rejected.
const (
	msgEmailExists        = "Email exists"
	msgDBError            = "DB error"
	msgInvalidCredentials = "Invalid credentials"
	msgNoToken            = "No token"
	msgInvalidToken       = "Invalid token"
)

type AuthHandler struct {
	users    *service.UserService
	producer *events.Producer
	log      *logger.Logger
}

// NewAuthHandler wires the auth endpoints. producer may be nil; auth works
// without the analytics pipeline.
func NewAuthHandler(users *service.UserService, producer *events.Producer) *AuthHandler {
	return &AuthHandler{
		users:    users,
		producer: producer,
		log:      logger.New("auth-handler"),
	}
}

type signupResponse struct {
	Success bool `json:"success"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req usermodel.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("Failed to decode signup request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.users.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			respondError(w, http.StatusBadRequest, msgEmailExists)
		case validation.IsInputError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("Failed to register user: %v", err)
			respondError(w, http.StatusInternalServerError, msgDBError)
		}
		return
	}

	h.publish(r, events.KindSignup, req.Email)
	respondJSON(w, http.StatusOK, signupResponse{Success: true})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req usermodel.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("Failed to decode login request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.users.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.publish(r, events.KindLoginFailed, req.Email)
			respondError(w, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		h.log.Error("Failed to login: %v", err)
		respondError(w, http.StatusInternalServerError, msgDBError)
		return
	}

	h.publish(r, events.KindLogin, req.Email)
	respondJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		respondError(w, http.StatusUnauthorized, msgNoToken)
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := h.users.Profile(token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	respondJSON(w, http.StatusOK, claims)
}

func (h *AuthHandler) publish(r *http.Request, kind string, email string) {
	if h.producer == nil {
		return
	}

	event := &events.AuthEvent{
		Kind:      kind,
		Email:     email,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}
	if err := h.producer.Publish(r.Context(), event); err != nil {
		h.log.Warn("Failed to publish %s event: %v", kind, err)
	}
}
