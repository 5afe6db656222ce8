package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gatherhub/server/internal/auth"
	"github.com/gatherhub/server/internal/domain/users"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	createFn      func(params users.CreateParams) (*users.User, error)
	getFn         func(email string) (*users.User, error)
	updateTokenFn func(userID int64, token string) error
}

func (s stubUserRepo) Create(_ context.Context, params users.CreateParams) (*users.User, error) {
	return s.createFn(params)
}

func (s stubUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	return s.getFn(email)
}

func (s stubUserRepo) UpdateToken(_ context.Context, userID int64, token string) error {
	if s.updateTokenFn == nil {
		return nil
	}
	return s.updateTokenFn(userID, token)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(int64, bool) (string, error) {
	return s.token, s.err
}

func newAuthHandler(repo users.Repository, issuer users.TokenIssuer) *AuthHandler {
	return NewAuthHandler(users.NewService(repo, issuer), "test")
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler(res, req)
	return res
}

func TestSignUpSuccess(t *testing.T) {
	repo := stubUserRepo{
		createFn: func(params users.CreateParams) (*users.User, error) {
			return &users.User{ID: 1, Name: params.Name, Email: params.Email}, nil
		},
	}
	h := newAuthHandler(repo, stubIssuer{token: "signed-jwt"})

	res := postJSON(t, h.SignUp, "/signup", `{"name":"Ada","email":"ada@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusCreated, res.Code)

	var payload signUpResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "User registered successfully!", payload.Message)
	require.Equal(t, "signed-jwt", payload.Token)
}

func TestSignUpMissingFields(t *testing.T) {
	h := newAuthHandler(stubUserRepo{}, stubIssuer{token: "signed-jwt"})

	res := postJSON(t, h.SignUp, "/signup", `{"email":"ada@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "application/problem+json", res.Header().Get("Content-Type"))
	require.Contains(t, res.Body.String(), "all fields are required")
}

func TestSignUpInvalidEmail(t *testing.T) {
	h := newAuthHandler(stubUserRepo{}, stubIssuer{token: "signed-jwt"})

	res := postJSON(t, h.SignUp, "/signup", `{"name":"Ada","email":"ada.example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSignUpWeakPassword(t *testing.T) {
	h := newAuthHandler(stubUserRepo{}, stubIssuer{token: "signed-jwt"})

	res := postJSON(t, h.SignUp, "/signup", `{"name":"Ada","email":"ada@example.com","password":"abc12345"}`)

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Contains(t, res.Body.String(), "password")
}

func TestSignUpMalformedBody(t *testing.T) {
	h := newAuthHandler(stubUserRepo{}, stubIssuer{token: "signed-jwt"})

	res := postJSON(t, h.SignUp, "/signup", `{"name":`)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSignUpDuplicateEmailIsServerError(t *testing.T) {
	repo := stubUserRepo{
		createFn: func(users.CreateParams) (*users.User, error) {
			return nil, errors.New(`duplicate key value violates unique constraint "usertable_email_key"`)
		},
	}
	h := NewAuthHandler(users.NewService(repo, stubIssuer{token: "signed-jwt"}), "production")

	res := postJSON(t, h.SignUp, "/signup", `{"name":"Ada","email":"ada@example.com","password":"Abc123!@"}`)

	// A duplicate email collapses into the generic store-error path, and
	// production responses never echo the store's message.
	require.Equal(t, http.StatusInternalServerError, res.Code)
	require.Contains(t, res.Body.String(), "Error registering user")
	require.NotContains(t, res.Body.String(), "duplicate key")
}

func TestSignUpTokenPersistFailure(t *testing.T) {
	repo := stubUserRepo{
		createFn: func(params users.CreateParams) (*users.User, error) {
			return &users.User{ID: 1}, nil
		},
		updateTokenFn: func(int64, string) error {
			return errors.New("connection reset")
		},
	}
	h := newAuthHandler(repo, stubIssuer{token: "signed-jwt"})

	res := postJSON(t, h.SignUp, "/signup", `{"name":"Ada","email":"ada@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusInternalServerError, res.Code)
}

func TestSignInSuccess(t *testing.T) {
	digest, err := auth.HashPassword("Abc123!@")
	require.NoError(t, err)

	stored := "token-from-signup"
	repo := stubUserRepo{
		getFn: func(string) (*users.User, error) {
			return &users.User{ID: 1, PasswordHash: digest, IsAdmin: true, Token: &stored}, nil
		},
	}
	h := newAuthHandler(repo, stubIssuer{token: "fresh-token"})

	res := postJSON(t, h.SignIn, "/signin", `{"email":"ada@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusOK, res.Code)

	var payload signInResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "Sign in successful!", payload.Message)
	require.Equal(t, stored, payload.Token) // stored token, not freshly minted
	require.Equal(t, "admin-dashboard", payload.Dashboard)
}

func TestSignInUnknownEmail(t *testing.T) {
	repo := stubUserRepo{
		getFn: func(string) (*users.User, error) {
			return nil, users.ErrNotFound
		},
	}
	h := newAuthHandler(repo, stubIssuer{token: "fresh-token"})

	res := postJSON(t, h.SignIn, "/signin", `{"email":"ghost@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestSignInWrongPassword(t *testing.T) {
	digest, err := auth.HashPassword("Abc123!@")
	require.NoError(t, err)

	stored := "token-from-signup"
	repo := stubUserRepo{
		getFn: func(string) (*users.User, error) {
			return &users.User{ID: 1, PasswordHash: digest, Token: &stored}, nil
		},
	}
	h := newAuthHandler(repo, stubIssuer{token: "fresh-token"})

	res := postJSON(t, h.SignIn, "/signin", `{"email":"ada@example.com","password":"Wrong123!@"}`)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	require.NotContains(t, res.Body.String(), stored)
}

func TestSignInMissingFields(t *testing.T) {
	h := newAuthHandler(stubUserRepo{}, stubIssuer{token: "fresh-token"})

	res := postJSON(t, h.SignIn, "/signin", `{"email":"ada@example.com"}`)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSignInStoreError(t *testing.T) {
	repo := stubUserRepo{
		getFn: func(string) (*users.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := newAuthHandler(repo, stubIssuer{token: "fresh-token"})

	res := postJSON(t, h.SignIn, "/signin", `{"email":"ada@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusInternalServerError, res.Code)
}
