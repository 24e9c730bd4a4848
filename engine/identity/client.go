// Package identity talks to the external identity service. The service owns
// credential verification and account lifecycle; this package only shapes
// requests and classifies failures.
package identity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/pkg/config"
)

// Identity is the verified identity record returned by the identity service.
// It is created by the service during provisioning and read-only afterwards.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Service is the minimal identity-service contract consumed by the gateway.
type Service interface {
	// VerifyToken exchanges a bearer credential for a verified identity.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
	// CreateAccount provisions a new account for the given email.
	CreateAccount(ctx context.Context, email string) (*Identity, error)
	// DeleteAccount removes an account. Used as the compensating action of
	// the provisioning workflow.
	DeleteAccount(ctx context.Context, id string) error
}

// Client implements Service over the identity service HTTP API.
type Client struct {
	http *resty.Client
}

// NewClient builds an identity service client from configuration. The
// service-role credential authorizes admin operations; token verification
// sends the end user's credential instead.
func NewClient(cfg *config.IdentityConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("apikey", cfg.ServiceKey.Value())
	return &Client{http: client}
}

// VerifyToken exchanges the caller's bearer credential for its identity.
// Every failure mode is Unauthenticated: the credential could not be tied to
// a subject, and no later check may run without one.
func (c *Client) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	var ident Identity
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&ident).
		Get("/auth/v1/user")
	if err != nil {
		return nil, core.WrapError(core.KindUnauthenticated, "credential verification failed", err)
	}
	if resp.IsError() {
		return nil, core.Unauthenticatedf("invalid or expired credential")
	}
	if ident.ID == "" {
		return nil, core.Unauthenticatedf("credential resolved to no identity")
	}
	return &ident, nil
}

// CreateAccount provisions an identity using the service-role credential.
// The email is expected to be normalized by the caller.
func (c *Client) CreateAccount(ctx context.Context, email string) (*Identity, error) {
	var ident Identity
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.serviceKey()).
		SetBody(map[string]any{
			"email":         email,
			"email_confirm": true,
		}).
		SetResult(&ident).
		Post("/auth/v1/admin/users")
	if err != nil {
		return nil, core.Upstreamf(err, "identity service unreachable")
	}
	if resp.StatusCode() == http.StatusConflict || resp.StatusCode() == http.StatusUnprocessableEntity {
		return nil, core.Conflictf("an account already exists for %s", email)
	}
	if resp.IsError() {
		return nil, core.Upstreamf(
			fmt.Errorf("identity service returned %d: %s", resp.StatusCode(), resp.String()),
			"account creation rejected",
		)
	}
	if ident.ID == "" {
		return nil, core.Upstreamf(nil, "identity service returned no account id")
	}
	return &ident, nil
}

// DeleteAccount removes the identity with the given id.
func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.serviceKey()).
		Delete("/auth/v1/admin/users/" + id)
	if err != nil {
		return core.Upstreamf(err, "identity service unreachable")
	}
	if resp.IsError() {
		return core.Upstreamf(
			fmt.Errorf("identity service returned %d: %s", resp.StatusCode(), resp.String()),
			"account deletion rejected",
		)
	}
	return nil
}

func (c *Client) serviceKey() string {
	return c.http.Header.Get("apikey")
}
