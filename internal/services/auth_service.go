package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/repository"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAuthUnavailable    = errors.New("authentication backend unavailable")
)

// AuthService handles login and token issuance
type AuthService struct {
	db          *gorm.DB
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthService creates a new AuthService. expireHours comes straight from
// configuration; unparseable values fall back to 24h.
func NewAuthService(db *gorm.DB, jwtSecret, expireHours string) *AuthService {
	hours, err := strconv.Atoi(expireHours)
	if err != nil || hours <= 0 {
		hours = 24
	}
	return &AuthService{
		db:          db,
		jwtSecret:   jwtSecret,
		tokenExpiry: time.Duration(hours) * time.Hour,
	}
}

// LoginResult carries the issued token and the identity claims the frontend
// needs without decoding the JWT.
type LoginResult struct {
	AccessToken string
	Role        string
	EmployeeID  *string
}

// Login verifies the credentials and issues a signed bearer token.
// Database failures are reported distinctly from bad credentials so the
// client can tell an outage apart from a typo.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := repository.NewStore(s.db).Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, user.Username, user.Role, user.EmployeeID, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		Role:        user.Role,
		EmployeeID:  user.EmployeeID,
	}, nil
}

// GetUser loads the account behind a validated token's subject
func (s *AuthService) GetUser(username string) (*models.User, error) {
	user, err := repository.NewStore(s.db).Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
