// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"ufobeep/config"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer    = "ufobeep"
	tokenType = "service"
)

// serviceClaims is the JWT body of an internal service token.
type serviceClaims struct {
	Type   string   `json:"type"`
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Internal == "" {
		return nil, errors.New("internal jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Internal),
		now:    time.Now,
	}, nil
}

// GenerateServiceToken signs a token for another internal service.
func (s *jwtService) GenerateServiceToken(subject string, scopes []string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}

	now := s.now()
	claims := serviceClaims{
		Type:   tokenType,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign service token")
	}

	return signed, nil
}

// ValidateServiceToken checks the signature, expiry, issuer and token type.
func (s *jwtService) ValidateServiceToken(tokenString string) (*service.ServiceClaims, error) {
	claims := &serviceClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid service token")
	}
	if !token.Valid || claims.Type != tokenType {
		return nil, errors.New("invalid service token type")
	}

	return &service.ServiceClaims{
		Subject:   claims.Subject,
		Scopes:    claims.Scopes,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
