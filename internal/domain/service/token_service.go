package service

import (
	"slices"
	"time"
)

// ServiceClaims identifies the internal caller of a protected route.
type ServiceClaims struct {
	Subject   string
	Scopes    []string
	ExpiresAt time.Time
}

// HasScope reports whether the token grants scope.
func (c *ServiceClaims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// TokenService issues and validates service-to-service tokens.
type TokenService interface {
	GenerateServiceToken(subject string, scopes []string, ttl time.Duration) (string, error)
	ValidateServiceToken(tokenString string) (*ServiceClaims, error)
}
