// Package auth issues and validates the bearer tokens protecting the
// order management endpoints.
package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Principal represents the authenticated caller from JWT.
type Principal struct {
	Name string
	Role string // "admin" | "driver"
}

var (
	ErrEmptySecret  = errors.New("jwt secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// IssueToken signs an HS256 bearer token for the principal, valid for ttl.
func IssueToken(secret string, p Principal, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if p.Name == "" || p.Role == "" {
		return "", errors.New("principal name and role are required")
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": p.Name,
		"role": strings.ToLower(p.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})

	return tok.SignedString([]byte(secret))
}

// ParseToken validates a bearer token and extracts the principal.
func ParseToken(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	type claims struct {
		Name string `json:"name"`
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = ErrInvalidToken
		}
		return nil, err
	}

	c, _ := tok.Claims.(*claims)
	if c == nil || c.Name == "" || c.Role == "" {
		return nil, ErrInvalidToken
	}

	return &Principal{Name: c.Name, Role: strings.ToLower(c.Role)}, nil
}

// ParseBearer extracts the token from an Authorization header value and
// validates it.
func ParseBearer(header, secret string) (*Principal, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid authorization header")
	}

	return ParseToken(strings.TrimSpace(parts[1]), secret)
}
