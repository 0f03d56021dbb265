// Package user handles accounts and credential verification.
package user

import (
	"errors"
	"fmt"
	"time"

	"nutrilens-api/internal/infrastructure/config"
	"nutrilens-api/internal/pkg/common"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// Service implements registration and login.
type Service struct {
	db  *gorm.DB
	cfg *config.AuthConfig
}

// NewService builds the user service.
func NewService(db *gorm.DB, cfg *config.AuthConfig) *Service {
	return &Service{
		db:  db,
		cfg: cfg,
	}
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User        Public `json:"user"`
	AccessToken string `json:"accessToken"`
}

// Register creates an account and issues a token. Duplicate e-mails are
// rejected.
func (s *Service) Register(name, email, password string) (*AuthResult, error) {
	var existing User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.signToken(&u)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u.ToPublic(), AccessToken: token}, nil
}

// Login verifies credentials and issues a token. Unknown e-mail and wrong
// password produce the same error so callers cannot probe for accounts.
func (s *Service) Login(email, password string) (*AuthResult, error) {
	var u User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, common.ErrUnauthorized
	}

	token, err := s.signToken(&u)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u.ToPublic(), AccessToken: token}, nil
}

func (s *Service) signToken(u *User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", u.ID),
		"email": u.Email,
		"exp":   time.Now().Add(s.cfg.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
