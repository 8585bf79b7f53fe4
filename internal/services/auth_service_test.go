package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookreview/internal/config"
	"bookreview/internal/database"
	"bookreview/internal/models"
	"bookreview/internal/repository"
)

type fixture struct {
	auth    *AuthService
	books   *BookService
	reviews *ReviewService
	tokens  *TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.New(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	tokens := NewTokenService("test-secret", time.Hour)

	return &fixture{
		auth:    NewAuthService(userRepo, tokens),
		books:   NewBookService(bookRepo, reviewRepo),
		reviews: NewReviewService(reviewRepo, bookRepo),
		tokens:  tokens,
	}
}

func (f *fixture) register(t *testing.T, email string, role models.Role) *Identity {
	t.Helper()
	user, err := f.auth.Register(context.Background(), RegisterInput{
		Email:    email,
		Username: "user" + string(role),
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return &Identity{ID: user.ID, Username: user.Username, Email: user.Email, Role: user.Role}
}

func TestAuthService_HashPassword(t *testing.T) {
	svc := &AuthService{}

	password := "testpassword123"
	hash, err := svc.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrongpassword")))

	_, err = svc.HashPassword(strings.Repeat("😀", 20))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestAuthService_PasswordOverByteLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	long := strings.Repeat("é", 40)

	_, err := f.auth.Register(ctx, RegisterInput{Email: "a@x.com", Username: "alice", Password: long})
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Equal(t, KindBadRequest, AsError(err).Kind)
	assert.Contains(t, AsError(err).Fields, "password")

	f.register(t, "b@x.com", models.RoleUser)
	err = f.auth.ResetPassword(ctx, "b@x.com", long)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Equal(t, KindBadRequest, AsError(err).Kind)

	_, err = f.auth.Login(ctx, "b@x.com", "secret123")
	assert.NoError(t, err)
}

func TestAuthService_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.auth.Register(ctx, RegisterInput{Email: "a@x.com", Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	_, err = f.auth.Register(ctx, RegisterInput{Email: "a@x.com", Username: "other", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, KindConflict, AsError(err).Kind)

	_, err = f.auth.Register(ctx, RegisterInput{Email: "b@x.com", Username: "bob", Password: "secret123", Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	admin, err := f.auth.Register(ctx, RegisterInput{Email: "c@x.com", Username: "carol", Password: "secret123", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "a@x.com", models.RoleUser)

	res, err := f.auth.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "a@x.com", res.User.Email)

	who, err := f.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, who.ID)
	assert.Equal(t, models.RoleUser, who.Role)

	_, wrongPassword := f.auth.Login(ctx, "a@x.com", "nope")
	_, unknownEmail := f.auth.Login(ctx, "ghost@x.com", "secret123")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_UpdateRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	who := f.register(t, "a@x.com", models.RoleUser)

	require.NoError(t, f.auth.UpdateRole(ctx, who.ID, models.RoleAdmin))
	user, err := f.auth.GetByID(ctx, who.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	assert.ErrorIs(t, f.auth.UpdateRole(ctx, who.ID, "superuser"), ErrInvalidRole)

	err = f.auth.UpdateRole(ctx, "00000000-0000-0000-0000-000000000000", models.RoleAdmin)
	assert.Equal(t, KindNotFound, AsError(err).Kind)
}

func TestAuthService_ResetPasswordAndHasAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	has, err := f.auth.HasAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	f.register(t, "root@x.com", models.RoleAdmin)
	has, err = f.auth.HasAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, f.auth.ResetPassword(ctx, "root@x.com", "newpass99"))
	_, err = f.auth.Login(ctx, "root@x.com", "newpass99")
	assert.NoError(t, err)

	assert.ErrorIs(t, f.auth.ResetPassword(ctx, "ghost@x.com", "whatever"), ErrUserNotFound)
}
