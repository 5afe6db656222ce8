package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gatherhub/server/internal/api/problem"
	"github.com/gatherhub/server/internal/domain/users"
)

type AuthHandler struct {
	Users *users.Service
	Env   string
}

func NewAuthHandler(service *users.Service, env string) *AuthHandler {
	return &AuthHandler{Users: service, Env: env}
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	Dashboard string `json:"dashboard"`
}

// SignUp handles POST /signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Users == nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Server error", nil, h.Env)
		return
	}

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, r, http.StatusBadRequest, "https://gatherhub.dev/problems/validation-error", "Invalid request", err, h.Env)
		return
	}

	result, err := h.Users.SignUp(r.Context(), users.SignUpParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr users.ValidationError
		if errors.As(err, &verr) {
			problem.Write(w, r, http.StatusBadRequest, "https://gatherhub.dev/problems/validation-error", "Invalid request", err, h.Env, problem.WithDetail(verr.Error()))
			return
		}
		// Store failures, including a duplicate email, all surface as a
		// generic server error; the cause is logged, never returned.
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Error registering user", err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, signUpResponse{
		Message: "User registered successfully!",
		Token:   result.Token,
	})
}

// SignIn handles POST /signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Users == nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Server error", nil, h.Env)
		return
	}

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, r, http.StatusBadRequest, "https://gatherhub.dev/problems/validation-error", "Invalid request", err, h.Env)
		return
	}

	result, err := h.Users.SignIn(r.Context(), users.SignInParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var verr users.ValidationError
		switch {
		case errors.As(err, &verr):
			problem.Write(w, r, http.StatusBadRequest, "https://gatherhub.dev/problems/validation-error", "Invalid request", err, h.Env, problem.WithDetail(verr.Error()))
		case errors.Is(err, users.ErrNotFound):
			problem.Write(w, r, http.StatusNotFound, "https://gatherhub.dev/problems/not-found", "User not found", err, h.Env)
		case errors.Is(err, users.ErrInvalidCredentials):
			problem.Write(w, r, http.StatusUnauthorized, "https://gatherhub.dev/problems/unauthorized", "Invalid credentials", nil, h.Env)
		default:
			problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Error signing in", err, h.Env)
		}
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{
		Message:   "Sign in successful!",
		Token:     result.Token,
		Dashboard: result.Dashboard,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
