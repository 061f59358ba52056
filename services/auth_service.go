package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pss-admin/dto"
	"golang.org/x/crypto/bcrypt"
)

const adminRole = "admin"

// AuthService issues and checks admin tokens for destructive routes.
// It is disabled unless both a signing secret and a bcrypt password hash are configured.
type AuthService struct {
	secret       []byte
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService creates a new auth service instance
func NewAuthService(secret, passwordHash string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		secret:       []byte(secret),
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		now:          time.Now,
	}
}

// Enabled reports whether tokens are required
func (s *AuthService) Enabled() bool {
	return len(s.secret) > 0 && len(s.passwordHash) > 0
}

// HashPassword produces the value expected in ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Login checks the admin password and returns a signed token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid password", ErrUnauthorized)
	}

	token, expiresAt, err := s.GenerateToken()
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken generates a new admin JWT
func (s *AuthService) GenerateToken() (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := dto.TokenClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminRole,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid || claims.Role != adminRole {
		return nil, fmt.Errorf("%w: invalid token claims", ErrUnauthorized)
	}

	return claims, nil
}
