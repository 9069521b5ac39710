package client

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/types"
)

var errIncompleteToken = errors.New("response missing access token or user")

// AuthService handles registration, login and logout. Successful
// registration and login persist the returned session in the store.
type AuthService struct {
	client *Client
}

// Register creates an account and stores the resulting session. All fields
// are checked locally before any network call; the server's own duplicate
// email check surfaces as a RemoteError.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*types.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &apierror.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if len(password) < 6 {
		return nil, &apierror.ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}

	body := types.RegisterRequest{Name: name, Email: email, Password: password}
	return s.completeAuth(ctx, "/api/auth/register", body)
}

// Login authenticates with an existing account and stores the resulting
// session, overwriting any previous one.
func (s *AuthService) Login(ctx context.Context, email, password string) (*types.User, error) {
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &apierror.ValidationError{Field: "password", Message: "must not be empty"}
	}

	body := types.LoginRequest{Email: email, Password: password}
	return s.completeAuth(ctx, "/api/auth/login", body)
}

// Logout clears the stored session. It is purely local and succeeds even
// when no session exists.
func (s *AuthService) Logout() error {
	return s.client.sessions.Clear()
}

func (s *AuthService) completeAuth(ctx context.Context, path string, body interface{}) (*types.User, error) {
	var resp types.TokenResponse
	if err := s.client.do(ctx, http.MethodPost, path, nil, body, &resp, false); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.User.ID == "" {
		return nil, &apierror.SchemaError{Path: path, Err: errIncompleteToken}
	}

	sess := &types.Session{Token: resp.AccessToken, User: resp.User}
	if err := s.client.sessions.Save(sess); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func checkEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &apierror.ValidationError{Field: "email", Message: "must not be empty"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &apierror.ValidationError{Field: "email", Message: "must be a valid address"}
	}
	return nil
}
