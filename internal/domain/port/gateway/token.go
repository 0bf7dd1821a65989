package gateway

import (
	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/google/uuid"
)

// Session is the authenticated identity carried by a valid bearer token.
type Session struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenIssuer signs and parses session tokens. Tokens are stateless: there is
// no revocation list, a token stays valid until its natural expiry.
type TokenIssuer interface {
	// Issue signs a token embedding the user id and role
	Issue(userID uuid.UUID, role entity.Role) (string, error)

	// Parse validates signature and expiry and returns the embedded session
	Parse(raw string) (*Session, error)
}
