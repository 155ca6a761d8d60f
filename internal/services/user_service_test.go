package services

import (
	"context"
	"testing"
	"time"

	"billing-backend/internal/auth"
	"billing-backend/internal/config"
	"billing-backend/internal/models"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "billing-test"

	store := newFakeUserStore()
	return NewUserService(store, auth.NewJWTManager(cfg)), store
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &models.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "employee", resp.User.Role)

	login, err := svc.Login(ctx, &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.False(t, login.Requires2FA)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &models.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &models.SignupRequest{Name: "B", Email: "a@example.com", Password: "secret456"})
	assert.ErrorContains(t, err, "already exists")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &models.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorContains(t, err, "invalid email or password")

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorContains(t, err, "invalid email or password")
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	svc, store := newUserFixture(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &models.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, store.SetActive(ctx, resp.User.ID, false))

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@example.com", Password: "secret123"})
	assert.ErrorContains(t, err, "suspended")
}

func TestLoginWith2FAThenVerify(t *testing.T) {
	svc, store := newUserFixture(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &models.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "billing-test", AccountName: "a@example.com"})
	require.NoError(t, err)
	require.NoError(t, store.SetTOTP(ctx, resp.User.ID, key.Secret(), true))

	login, err := svc.Login(ctx, &models.LoginRequest{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, login.Requires2FA)
	assert.Empty(t, login.Token)
	require.NotEmpty(t, login.PendingToken)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	verified, err := svc.Verify2FA(ctx, &models.Verify2FARequest{
		PendingToken: login.PendingToken,
		Code:         code,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, verified.Token)

	_, err = svc.Verify2FA(ctx, &models.Verify2FARequest{
		PendingToken: login.PendingToken,
		Code:         "000000",
	})
	assert.ErrorContains(t, err, "invalid verification code")
}

func TestVerify2FARejectsSessionToken(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &models.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	// A full session token must not pass for a pending 2FA token.
	_, err = svc.Verify2FA(ctx, &models.Verify2FARequest{
		PendingToken: resp.Token,
		Code:         "123456",
	})
	assert.ErrorContains(t, err, "pending token")
}

func TestEnsureAdminSeedsOnlyEmptyTable(t *testing.T) {
	svc, store := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Boss", "boss@example.com", "changeme1"))

	admin, err := store.GetByEmail(ctx, "boss@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)

	// Second run is a no-op.
	require.NoError(t, svc.EnsureAdmin(ctx, "Other", "other@example.com", "changeme2"))
	_, err = store.GetByEmail(ctx, "other@example.com")
	assert.Error(t, err)
}

func TestUpdateUserKeepsPasswordWhenBlank(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &models.SignupRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, resp.User.ID, &models.UpdateUserRequest{
		Name:  "A Renamed",
		Email: "a@example.com",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, &models.LoginRequest{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}
