package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stitchline/vestra/internal/auth/domain"
	"github.com/stitchline/vestra/internal/auth/repository"
	companydomain "github.com/stitchline/vestra/internal/company/domain"
	companyrepo "github.com/stitchline/vestra/internal/company/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Customer{}, &domain.Session{}, &companydomain.Company{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:          conn,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        repository.Provide(),
		SessionRepo: repository.ProvideSessions(),
		CompanyRepo: companyrepo.Provide(),
	})
	return svc, conn
}

func TestRegisterLoginAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "Alice@Example.com",
		Name:     "Alice",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", customer.Email)
	require.Equal(t, domain.RoleCustomer, customer.Role)
	require.True(t, customer.Active)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "alice@example.com", Password: "long-enough-password"})
	require.NoError(t, err)
	require.NotEmpty(t, result.RawToken)
	require.True(t, result.ExpiresAt.After(time.Now()))

	authed, err := svc.Authenticate(ctx, result.RawToken)
	require.NoError(t, err)
	require.Equal(t, customer.ID, authed.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Email: "not-an-email", Name: "Bob", Password: "long-enough-password"})
	require.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Register(ctx, domain.RegisterRequest{Email: "bob@example.com", Name: "Bob", Password: "short"})
	require.ErrorIs(t, err, domain.ErrWeakPassword)

	_, err = svc.Register(ctx, domain.RegisterRequest{Email: "bob@example.com", Name: "Bob", Password: "long-enough-password"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{Email: "BOB@example.com", Name: "Bob Again", Password: "long-enough-password"})
	require.ErrorIs(t, err, domain.ErrCustomerExists)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Email: "carol@example.com", Name: "Carol", Password: "long-enough-password"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "carol@example.com", Password: "long-enough-password"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.RawToken))

	_, err = svc.Authenticate(ctx, result.RawToken)
	require.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Email: "dave@example.com", Name: "Dave", Password: "long-enough-password"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "dave@example.com", Password: "long-enough-password"})
	require.NoError(t, err)

	id, err := snowflake.ParseString(result.Customer.ID)
	require.NoError(t, err)
	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, conn.Exec("UPDATE sessions SET expires_at = ? WHERE customer_id = ?", past, int64(id)).Error)

	_, err = svc.Authenticate(ctx, result.RawToken)
	require.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer, err := svc.Register(ctx, domain.RegisterRequest{Email: "erin@example.com", Name: "Erin", Password: "long-enough-password"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "erin@example.com", Password: "long-enough-password"})
	require.NoError(t, err)

	_, err = svc.SetActive(ctx, customer.ID, false)
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "erin@example.com", Password: "long-enough-password"})
	require.ErrorIs(t, err, domain.ErrAccountDisabled)

	// An existing session dies with the account.
	_, err = svc.Authenticate(ctx, result.RawToken)
	require.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	customer, err := svc.Register(ctx, domain.RegisterRequest{Email: "frank@example.com", Name: "Frank", Password: "first-password"})
	require.NoError(t, err)

	id, err := snowflake.ParseString(customer.ID)
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, int64(id), "wrong-password", "second-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, int64(id), "first-password", "short")
	require.ErrorIs(t, err, domain.ErrWeakPassword)

	require.NoError(t, svc.ChangePassword(ctx, int64(id), "first-password", "second-password"))

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "frank@example.com", Password: "first-password"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "frank@example.com", Password: "second-password"})
	require.NoError(t, err)
}

func TestAssignAndClearCompany(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)
	company := &companydomain.Company{ID: node.Generate(), Name: "Grove Clinic"}
	require.NoError(t, conn.Create(company).Error)

	customer, err := svc.Register(ctx, domain.RegisterRequest{Email: "gina@example.com", Name: "Gina", Password: "long-enough-password"})
	require.NoError(t, err)

	_, err = svc.AssignCompany(ctx, customer.ID, "not-a-snowflake")
	require.ErrorIs(t, err, domain.ErrInvalidCompany)

	updated, err := svc.AssignCompany(ctx, customer.ID, company.ID.String())
	require.NoError(t, err)
	require.NotNil(t, updated.CompanyID)
	require.Equal(t, company.ID.String(), *updated.CompanyID)

	cleared, err := svc.ClearCompany(ctx, customer.ID)
	require.NoError(t, err)
	require.Nil(t, cleared.CompanyID)
}
