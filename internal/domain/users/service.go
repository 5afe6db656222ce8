package users

import (
	"context"
	"fmt"

	"github.com/gatherhub/server/internal/auth"
	"github.com/gatherhub/server/internal/validation"
)

// Dashboard labels returned on signin so clients know which view to route to.
const (
	DashboardAdmin = "admin-dashboard"
	DashboardUser  = "user-dashboard"
)

const weakPasswordMessage = "password must be at least 8 characters long, include an uppercase letter, a lowercase letter, a digit, and a special character"

// TokenIssuer creates a signed identity assertion for a user.
type TokenIssuer interface {
	Issue(userID int64, isAdmin bool) (string, error)
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type SignUpParams struct {
	Name     string
	Email    string
	Password string
}

type SignUpResult struct {
	Token string
}

// SignUp validates input, hashes the password, inserts the user, issues a
// token bound to the new identifier, and persists that token on the row.
// A duplicate email surfaces as a plain store error, not a distinct
// conflict; callers map it to a generic server error.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (*SignUpResult, error) {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, ValidationError{Message: "all fields are required"}
	}
	if !validation.ValidEmail(params.Email) {
		return nil, ValidationError{Field: "email", Message: "invalid email format"}
	}
	if !validation.StrongPassword(params.Password) {
		return nil, ValidationError{Field: "password", Message: weakPasswordMessage}
	}

	digest, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, CreateParams{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: digest,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// A failure here leaves the user row without a token; there is no
	// rollback of the insert.
	if err := s.repo.UpdateToken(ctx, user.ID, token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	return &SignUpResult{Token: token}, nil
}

type SignInParams struct {
	Email    string
	Password string
}

type SignInResult struct {
	Token     string
	Dashboard string
}

// SignIn verifies credentials and returns the token stored at signup time.
// No fresh token is minted here: the session credential is fixed at
// registration until the user signs up again.
func (s *Service) SignIn(ctx context.Context, params SignInParams) (*SignInResult, error) {
	if params.Email == "" || params.Password == "" {
		return nil, ValidationError{Message: "all fields are required"}
	}
	if !validation.ValidEmail(params.Email) {
		return nil, ValidationError{Field: "email", Message: "invalid email format"}
	}

	user, err := s.repo.GetByEmail(ctx, params.Email)
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(params.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	dashboard := DashboardUser
	if user.IsAdmin {
		dashboard = DashboardAdmin
	}

	var token string
	if user.Token != nil {
		token = *user.Token
	}

	return &SignInResult{Token: token, Dashboard: dashboard}, nil
}
