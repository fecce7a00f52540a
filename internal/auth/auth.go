package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"cafeBooker/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")

// Claims is what a verified admin token carries.
type Claims struct {
	Username string
	Admin    bool
}

// Auth checks the single admin account against its bcrypt hash and issues
// HS256 tokens for it. The original system used server-side sessions; tokens
// keep the core stateless.
type Auth struct {
	secret    string
	tokenTTL  time.Duration
	adminUser string
	adminHash string
	now       func() time.Time
}

func New(cfg config.Auth) *Auth {
	return &Auth{
		secret:    cfg.Secret,
		tokenTTL:  cfg.TokenTTL,
		adminUser: cfg.AdminUser,
		adminHash: cfg.AdminPasswordHash,
		now:       time.Now,
	}
}

// Login verifies the credentials and returns a signed token with its expiry.
func (a *Auth) Login(username, password string) (string, time.Time, error) {
	if username != a.adminUser {
		return "", time.Time{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(a.adminHash), []byte(password)) != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	exp := a.now().UTC().Add(a.tokenTTL)

	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  exp.Unix(),
		"iat":  a.now().UTC().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString([]byte(a.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, exp, nil
}

// ParseToken validates a raw token string and extracts its claims.
func (a *Auth) ParseToken(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(a.secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	role, _ := mapClaims["role"].(string)

	return Claims{
		Username: sub,
		Admin:    role == "admin",
	}, nil
}
