package entity

import (
	"net/mail"
	"strings"
	"time"

	errs "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VerificationStatus tracks admin review of an account or a farmland parcel.
type VerificationStatus string

const (
	StatusPendingVerification VerificationStatus = "pending_verification"
	StatusVerified            VerificationStatus = "verified"
	StatusRejected            VerificationStatus = "rejected"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

// User is an account on the marketplace. Exactly one of PasswordHash or
// GoogleID is set depending on how the account was created. Role is fixed at
// creation and never changes.
type User struct {
	ID            uuid.UUID
	Name          string
	Email         string
	PasswordHash  string
	GoogleID      string
	Role          Role
	Status        VerificationStatus
	Blocked       bool
	WalletBalance decimal.Decimal
	DocumentURLs  []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser builds a locally registered user. The password is expected to be
// hashed already; plaintext must never reach this constructor.
func NewUser(name, email, passwordHash string, role Role, tp coreport.TimeProvider) (*User, error) {
	v := validateIdentity(name, email)
	if passwordHash == "" {
		v.Add("password", "password hash must not be empty")
	}
	if role != RoleFarmer && role != RoleCompany {
		v.Add("role", "role must be farmer or company")
	}
	if v.HasErrors() {
		return nil, v
	}

	now := tp.Now()
	return &User{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(name),
		Email:         normalizeEmail(email),
		PasswordHash:  passwordHash,
		Role:          role,
		Status:        StatusPendingVerification,
		WalletBalance: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewGoogleUser builds a user keyed by an external Google subject id. No local
// password is ever stored for these accounts.
func NewGoogleUser(name, email, googleID string, role Role, tp coreport.TimeProvider) (*User, error) {
	v := validateIdentity(name, email)
	if googleID == "" {
		v.Add("googleId", "external subject id must not be empty")
	}
	if role != RoleFarmer && role != RoleCompany {
		v.Add("role", "role must be farmer or company")
	}
	if v.HasErrors() {
		return nil, v
	}

	now := tp.Now()
	return &User{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(name),
		Email:         normalizeEmail(email),
		GoogleID:      googleID,
		Role:          role,
		Status:        StatusPendingVerification,
		WalletBalance: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewAdmin builds an admin account. Admins are created by other admins (or the
// migration seed) and are verified immediately.
func NewAdmin(name, email, passwordHash string, tp coreport.TimeProvider) (*User, error) {
	v := validateIdentity(name, email)
	if passwordHash == "" {
		v.Add("password", "password hash must not be empty")
	}
	if v.HasErrors() {
		return nil, v
	}

	now := tp.Now()
	return &User{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(name),
		Email:         normalizeEmail(email),
		PasswordHash:  passwordHash,
		Role:          RoleAdmin,
		Status:        StatusVerified,
		WalletBalance: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// HasLocalPassword reports whether the account can authenticate with a
// password at all. Google-only accounts have no hash.
func (u *User) HasLocalPassword() bool {
	return u.PasswordHash != ""
}

// CanLogin reports whether the account is allowed to start a session.
func (u *User) CanLogin() error {
	if u.Blocked {
		return errs.ErrAccountBlocked
	}
	return nil
}

// CreditWallet adds a settled amount to the running wallet balance.
func (u *User) CreditWallet(amount decimal.Decimal, tp coreport.TimeProvider) {
	u.WalletBalance = u.WalletBalance.Add(amount)
	u.UpdatedAt = tp.Now()
}

// ValidateEmail reports whether the address is well-formed.
func ValidateEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

// ValidatePassword checks the plaintext password against registration rules.
func ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}

func validateIdentity(name, email string) *errs.ValidationError {
	v := errs.NewValidationError()
	if strings.TrimSpace(name) == "" {
		v.Add("name", "name must not be empty")
	}
	if !ValidateEmail(email) {
		v.Add("email", "email address is not well-formed")
	}
	return v
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
