package security

import (
	"errors"
	"fmt"
	"time"

	"wiggy/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenExpiry is how long an issued token stays valid unless configured otherwise.
const DefaultTokenExpiry = 24 * time.Hour

var (
	ErrSecretIsRequired = errors.New("jwt secret is required")
	ErrTokenIsInvalid   = errors.New("token is invalid")
)

type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTService issues HS256 tokens carrying the user id in a "userId" claim.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService returns an error for an empty secret. A non-positive expiry falls back to
// DefaultTokenExpiry.
func NewJWTService(secret string, expiry time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &JWTService{secret: []byte(secret), expiry: expiry}, nil
}

func (s *JWTService) Issue(userID kernel.UUID, now time.Time) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	})
	return token.SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry. Every failure wraps ErrTokenIsInvalid.
func (s *JWTService) Verify(token string) (kernel.UUID, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	userID, err := kernel.UUIDFromString(c.UserID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}
	return userID, nil
}
