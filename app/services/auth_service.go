package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/orm"
	"gorm.io/gorm"
)

// RegisterInput is the account-creation payload.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the credential payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService handles registration, login and user lookups.
type AuthService struct {
	db    *gorm.DB
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:    db,
		users: repositories.NewUserRepository(),
	}
}

// Register creates an account and immediately issues its token, so a fresh
// client can start calling authenticated endpoints without a second round
// trip through login.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	if _, err := s.users.FindByEmail(s.db, in.Email); err == nil {
		return nil, "", fieldError("email", "email already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: hash}
	if err := s.users.Create(s.db, &user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.IsStaff)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &user, token, nil
}

// Login checks credentials and issues a token. Wrong email and wrong
// password produce the same error.
func (s *AuthService) Login(in LoginInput) (*models.User, string, error) {
	user, err := s.users.FindByEmail(s.db, in.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fieldError("error", "invalid credentials")
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return nil, "", fieldError("error", "invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.IsStaff)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &user, token, nil
}

// GetUser returns one user. Plain users may only read themselves.
func (s *AuthService) GetUser(identity auth.Identity, userID uint) (*models.User, error) {
	if !identity.IsStaff && identity.ID != userID {
		return nil, ErrNotFound
	}
	user, err := s.users.FindByID(s.db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns a page of accounts. Staff only; rbac enforces that
// before the call lands here.
func (s *AuthService) ListUsers(page, limit int) ([]models.User, orm.Pagination, error) {
	return s.users.All(s.db, page, limit)
}
