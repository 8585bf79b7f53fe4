package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"bookreview/internal/models"
	"bookreview/internal/repository"
)

type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id string, role models.Role) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	List(ctx context.Context) ([]*models.User, error)
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	Role     models.Role
}

type LoginResult struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// AuthService owns credentials: registration, login and role changes.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// Register creates a user. Email uniqueness is enforced by the store's
// unique index in the same statement as the insert.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return nil, AsError(err)
	}

	user := &models.User{
		Email:        strings.TrimSpace(in.Email),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, Internal(err)
	}
	return user, nil
}

// Login checks the credentials and issues an identity token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, Internal(err)
	}

	return &LoginResult{
		User:  user.Public(),
		Token: token,
	}, nil
}

func (s *AuthService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, Internal(err)
	}
	return user, nil
}

func (s *AuthService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, Internal(err)
	}
	return user, nil
}

// UpdateRole sets a user's role. Tokens already issued to that user keep
// their old role until they expire.
func (s *AuthService) UpdateRole(ctx context.Context, userID string, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	err := s.users.UpdateRole(ctx, userID, role)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("user not found")
	}
	if err != nil {
		return Internal(err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, password string) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return AsError(err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return Internal(err)
	}
	return nil
}

func (s *AuthService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return users, nil
}

// HasAdmin reports whether at least one admin account exists.
func (s *AuthService) HasAdmin(ctx context.Context) (bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.IsAdmin() {
			return true, nil
		}
	}
	return false, nil
}

// HashPassword returns ErrPasswordTooLong for input over bcrypt's 72 bytes.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
