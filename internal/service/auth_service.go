package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/eiderao/novva-recruit/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// ErrInvalidToken is returned when the identity provider rejects the
// caller's bearer token.
var ErrInvalidToken = errors.New("invalid or expired token")

// AuthUser is the identity the provider vouches for. Tenant membership and
// display name come from the user_profiles table, not from here.
type AuthUser struct {
	ID    uuid.UUID
	Email string
}

type AuthServiceInterface interface {
	VerifyToken(ctx context.Context, token string) (*AuthUser, error)
}

// AuthService validates bearer tokens against the Supabase GoTrue endpoint.
type AuthService struct {
	client *resty.Client
	apiKey string
}

func NewAuthService() *AuthService {
	cfg := config.LoadSupabaseConfig()
	return &AuthService{
		client: resty.New().SetBaseURL(cfg.URL),
		apiKey: cfg.ServiceKey,
	}
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (*AuthUser, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("apikey", s.apiKey).
		SetHeader("Authorization", "Bearer "+token).
		Get("/auth/v1/user")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, ErrInvalidToken
	}

	body := resp.String()
	id, err := uuid.Parse(gjson.Get(body, "id").String())
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &AuthUser{
		ID:    id,
		Email: gjson.Get(body, "email").String(),
	}, nil
}
