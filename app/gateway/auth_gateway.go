package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/driver/authapi"
	"slidealbum-service/app/port"
	apperrors "slidealbum-service/app/utils/errors"
)

// AuthGateway translates raw auth API responses into domain results.
type AuthGateway struct {
	client *authapi.Client
	logger *slog.Logger

	// validating collapses concurrent validateToken calls for the same
	// token into one upstream request. Results are not cached beyond the
	// in-flight call; a revoked token must not outlive its revocation.
	validating singleflight.Group
}

// NewAuthGateway creates a new auth gateway
func NewAuthGateway(client *authapi.Client, logger *slog.Logger) *AuthGateway {
	return &AuthGateway{
		client: client,
		logger: logger.With("component", "auth_gateway"),
	}
}

var _ port.AuthGateway = (*AuthGateway)(nil)

// loginPayload mirrors the login response wire format. The boolean-ish
// fields arrive as "1"/"0" strings from the original service; flexBool
// tolerates strings, numbers and actual booleans.
type loginPayload struct {
	SessionToken         string    `json:"sessionToken"`
	ID                   int       `json:"id"`
	Username             string    `json:"username"`
	Firstname            string    `json:"firstname"`
	Lastname             string    `json:"lastname"`
	IsAdmin              flexBool  `json:"isAdmin"`
	ShouldChangePassword flexBool  `json:"shouldChangePassword"`
	Customers            *[]string `json:"customers"`
}

// Login authenticates the credentials against the external service.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*domain.SessionContext, error) {
	resp, err := g.client.Login(ctx, username, password)
	if err != nil {
		g.logger.Error("login call failed", "username", username, "error", err)
		return nil, apperrors.NewAuthServiceError(err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return g.parseLoginPayload(resp.Body)
	case http.StatusUnauthorized:
		// A normal negative outcome, not a service failure.
		return nil, apperrors.ErrInvalidCredentials
	default:
		g.logger.Error("unexpected login status", "username", username, "status", resp.StatusCode)
		return nil, apperrors.ErrAuthServiceUnavailable.WithDetails(
			fmt.Sprintf("login returned status %d", resp.StatusCode))
	}
}

func (g *AuthGateway) parseLoginPayload(body []byte) (*domain.SessionContext, error) {
	var payload loginPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		g.logger.Error("undecodable login payload", "error", err)
		return nil, apperrors.ErrMalformedAuthResponse.WithCause(err)
	}

	switch {
	case payload.SessionToken == "":
		return nil, apperrors.ErrMalformedAuthResponse.WithDetails("sessionToken is missing")
	case payload.Username == "":
		return nil, apperrors.ErrMalformedAuthResponse.WithDetails("username is missing")
	case payload.Customers == nil:
		return nil, apperrors.ErrMalformedAuthResponse.WithDetails("customers is missing")
	}

	customers := make([]string, len(*payload.Customers))
	copy(customers, *payload.Customers)

	return &domain.SessionContext{
		Token: payload.SessionToken,
		Identity: domain.Identity{
			ID:                 payload.ID,
			Username:           payload.Username,
			FirstName:          payload.Firstname,
			LastName:           payload.Lastname,
			Admin:              bool(payload.IsAdmin),
			MustChangePassword: bool(payload.ShouldChangePassword),
			Customers:          customers,
		},
	}, nil
}

// Logout asks the service to revoke the token.
func (g *AuthGateway) Logout(ctx context.Context, token string) error {
	resp, err := g.client.Logout(ctx, token)
	if err != nil {
		g.logger.Error("logout call failed", "error", err)
		return apperrors.NewAuthServiceError(err)
	}
	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("logout not confirmed", "status", resp.StatusCode)
		return apperrors.ErrAuthServiceUnavailable.WithDetails(
			fmt.Sprintf("logout returned status %d", resp.StatusCode))
	}
	return nil
}

// Validate reports whether the token is still valid. It fails closed: any
// transport failure or non-200 status counts as invalid.
func (g *AuthGateway) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	valid, err, _ := g.validating.Do(token, func() (interface{}, error) {
		resp, err := g.client.ValidateToken(ctx, token)
		if err != nil {
			g.logger.Warn("token validation call failed", "error", err)
			return false, nil
		}
		return resp.StatusCode == http.StatusOK, nil
	})
	if err != nil {
		return false
	}
	return valid.(bool)
}

// flexBool decodes true/false, 1/0 and "1"/"0" alike.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true", "1", `"1"`, `"true"`:
		*f = true
	case "false", "0", `"0"`, `"false"`, "null", `""`:
		*f = false
	default:
		return fmt.Errorf("cannot parse %s as boolean flag", data)
	}
	return nil
}
