package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ufobeep/internal/delivery/api/response"
	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const keyServiceClaims = "serviceClaims"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Logger   *slog.Logger
}

// AuthMiddleware guards the internal routes with service tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc, logger: params.Logger}
}

// Authenticate validates the bearer service token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateServiceToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("[Auth] Rejected service token",
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyServiceClaims, claims)

		return next(c)
	}
}

// RequireScope rejects callers whose token lacks scope. It must run after Authenticate.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetServiceClaims(c)
			if !ok || !claims.HasScope(scope) {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+scope+"' scope", nil)
			}

			return next(c)
		}
	}
}

// GetServiceClaims returns the claims stored by Authenticate.
func GetServiceClaims(c echo.Context) (*service.ServiceClaims, bool) {
	claims, ok := c.Get(keyServiceClaims).(*service.ServiceClaims)

	return claims, ok
}
