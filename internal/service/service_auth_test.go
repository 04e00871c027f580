package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/mock"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "test-secret-key"

// newTestAuthService builds an authService over a mocked user repository.
func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:           testSignKey,
		TokenIssuer:            "go-attendance-test",
		TokenDuration:          time.Hour,
		BootstrapAdminPassword: "admin123",
	}

	svc := NewAuthService(mockRepo, cfg, logger.Nop()).(*authService)
	return svc, mockRepo
}

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       7,
		Username:     "alice",
		PasswordHash: mustHash(t, "correct horse"),
		Role:         models.RoleEmployee,
	}

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(stored, nil)

	user, err := svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, models.RoleEmployee, user.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:       7,
		Username:     "alice",
		PasswordHash: mustHash(t, "correct horse"),
	}

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(stored, nil)

	_, err := svc.Login(ctx, "alice", "wrong horse")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "secret")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, "alice", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, "ghost", "secret")
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestAuthService_CreateUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "bob", u.Username)
			assert.Equal(t, models.RoleEmployee, u.Role)
			// the plaintext must never reach the store
			assert.NotEqual(t, "secret", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
			u.UserID = 3
			return u, nil
		})

	created, err := svc.CreateUser(ctx, "bob", "secret", models.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.UserID)
}

func TestAuthService_CreateUser_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "bob", "secret", "superuser")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_CreateUser_EmptyData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "", "secret", models.RoleEmployee)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateUser(ctx, "bob", "", models.RoleEmployee)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_CreateUser_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.CreateUser(ctx, "bob", "secret", models.RoleEmployee)
	require.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestAuthService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		UpdatePasswordHash(ctx, "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, newHash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("fresh secret")))
			return nil
		})

	err := svc.ResetPassword(ctx, "alice", "fresh secret")
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		UpdatePasswordHash(ctx, "ghost", gomock.Any()).
		Return(store.ErrNoUserWasFound)

	err := svc.ResetPassword(ctx, "ghost", "fresh secret")
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_ResetPassword_EmptyData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	err := svc.ResetPassword(ctx, "", "secret")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.ResetPassword(ctx, "alice", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateToken_ParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 42, Username: "alice", Role: models.RoleAdmin}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	svc.tokenDuration = -time.Hour
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 1, Role: models.RoleEmployee})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 1, Role: models.RoleEmployee})
	require.NoError(t, err)

	svc.tokenSignKey = "another-key"
	_, err = svc.ParseToken(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── EnsureBootstrapAdmin ─────────────────────────────────────────────────────

func TestAuthService_EnsureBootstrapAdmin_SeedsWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().
			FindUserByUsername(ctx, "admin").
			Return(models.User{}, store.ErrNoUserWasFound),
		mockRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "admin", u.Username)
				assert.Equal(t, models.RoleAdmin, u.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")))
				return u, nil
			}),
	)

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx))
}

func TestAuthService_EnsureBootstrapAdmin_NoopWhenPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByUsername(ctx, "admin").
		Return(models.User{UserID: 1, Username: "admin", Role: models.RoleAdmin}, nil)

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx))
}

func TestAuthService_EnsureBootstrapAdmin_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	lookupErr := errors.New("db down")
	mockRepo.EXPECT().
		FindUserByUsername(ctx, "admin").
		Return(models.User{}, lookupErr)

	err := svc.EnsureBootstrapAdmin(ctx)
	require.ErrorIs(t, err, lookupErr)
}
