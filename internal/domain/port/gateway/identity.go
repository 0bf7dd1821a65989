package gateway

import "context"

// ExternalIdentity is the subset of a verified ID token the service needs.
type ExternalIdentity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityVerifier validates a third-party identity token against the
// configured audience and extracts the holder's identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*ExternalIdentity, error)
}
