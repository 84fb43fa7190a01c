package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"transit-delay-service/internal/api/dto"
	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/ports"
)

// Auth-domain failures keep the original client contract: HTTP 200 with
// success=false and a fixed bilingual message.
const (
	errMissingCredentials = "البريد وكلمة المرور مطلوبان / Email and password are required"
	errUserExists         = "المستخدم موجود بالفعل / User already exists"
	errBadCredentials     = "بيانات خاطئة / Invalid credentials"
)

type AuthHandler struct {
	Repo   ports.UserRepository
	Logger *slog.Logger
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		writeJSON(w, r, http.StatusOK, dto.AuthResponse{Success: false, Error: errMissingCredentials})
		return
	}

	existing, err := h.Repo.FindUser(r.Context(), email)
	if err != nil {
		h.Logger.Error("signup lookup failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		writeJSON(w, r, http.StatusOK, dto.AuthResponse{Success: false, Error: errUserExists})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error("password hashing failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	user := domain.User{Email: email, PasswordHash: string(hash), Name: strings.TrimSpace(req.Name)}
	if err := h.Repo.CreateUser(r.Context(), user); err != nil {
		h.Logger.Error("signup insert failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    &dto.AuthUser{Email: user.Email, Name: user.Name},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		writeJSON(w, r, http.StatusOK, dto.AuthResponse{Success: false, Error: errMissingCredentials})
		return
	}

	user, err := h.Repo.FindUser(r.Context(), email)
	if err != nil {
		h.Logger.Error("login lookup failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		writeJSON(w, r, http.StatusOK, dto.AuthResponse{Success: false, Error: errBadCredentials})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeJSON(w, r, http.StatusOK, dto.AuthResponse{Success: false, Error: errBadCredentials})
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    &dto.AuthUser{Email: user.Email, Name: user.Name},
	})
}

func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request) (dto.AuthRequest, bool) {
	var req dto.AuthRequest

	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, false
	}

	return req, true
}
