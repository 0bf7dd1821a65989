package identity

import (
	"context"
	"fmt"

	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates Google ID tokens against the configured OAuth
// client audience
type GoogleVerifier struct {
	audience string
	logger   coreport.Logger
}

// NewGoogleVerifier creates a verifier for the given OAuth client id
func NewGoogleVerifier(audience string, logger coreport.Logger) *GoogleVerifier {
	return &GoogleVerifier{audience: audience, logger: logger}
}

// Verify validates the raw ID token and extracts the holder's identity
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*gateway.ExternalIdentity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.audience)
	if err != nil {
		v.logger.Warn("Rejected identity token", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("failed to validate identity token: %w", err)
	}

	identity := &gateway.ExternalIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}

	if identity.Email == "" {
		return nil, fmt.Errorf("identity token carries no email claim")
	}

	return identity, nil
}
