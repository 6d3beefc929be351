package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken covers every validation failure: malformed input, bad
// signature, expired token, empty string. Callers map it to 401.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and validates signed bearer tokens carrying the user
// email as subject. Algorithm and lifetime come from configuration.
type TokenService struct {
	secret   []byte
	method   jwt.SigningMethod
	lifetime time.Duration
}

func NewTokenService(secret, algorithm string, lifetime time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must not be empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s (HMAC family required)", algorithm)
	}
	if lifetime <= 0 {
		lifetime = 30 * time.Minute
	}
	return &TokenService{secret: []byte(secret), method: method, lifetime: lifetime}, nil
}

// CreateAccessToken signs a token with the subject and an absolute expiry
// one configured lifetime from now.
func (s *TokenService) CreateAccessToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the subject.
// It never panics; every failure is ErrInvalidToken.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
