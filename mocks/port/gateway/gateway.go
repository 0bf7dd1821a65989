// Package gateway provides testify mocks for the external gateway ports.
package gateway

import (
	"context"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPaymentGateway mocks gateway.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*gateway.Order, error) {
	args := m.Called(ctx, amount, currency, receipt)
	order, _ := args.Get(0).(*gateway.Order)
	return order, args.Error(1)
}

// MockObjectStorage mocks gateway.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, folder string, file gateway.FileUpload) (string, error) {
	args := m.Called(ctx, folder, file)
	return args.String(0), args.Error(1)
}

// MockIdentityVerifier mocks gateway.IdentityVerifier
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, rawToken string) (*gateway.ExternalIdentity, error) {
	args := m.Called(ctx, rawToken)
	identity, _ := args.Get(0).(*gateway.ExternalIdentity)
	return identity, args.Error(1)
}

// MockTokenIssuer mocks gateway.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Parse(raw string) (*gateway.Session, error) {
	args := m.Called(raw)
	session, _ := args.Get(0).(*gateway.Session)
	return session, args.Error(1)
}

// MockCredentialHasher mocks gateway.CredentialHasher
type MockCredentialHasher struct {
	mock.Mock
}

func (m *MockCredentialHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialHasher) Compare(hash, password string) bool {
	return m.Called(hash, password).Bool(0)
}
