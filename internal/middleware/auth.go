package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"estate-office-saas/internal/repository"
	"estate-office-saas/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// AuthMiddleware validates the bearer token issued by the external identity
// provider and resolves the admin's role from our own records. Only the
// subject claim is trusted from the token.
func AuthMiddleware(secret string, adminRepo repository.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "),
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return []byte(secret), nil
				})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}
			adminID, err := strconv.ParseInt(subject, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			admin, err := adminRepo.FindByID(c.Request().Context(), adminID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown admin")
			}

			c.Set(actorContextKey, service.Actor{
				AdminID: admin.ID,
				Role:    admin.Role,
			})
			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated actor set by AuthMiddleware.
func ActorFromContext(c echo.Context) (service.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(service.Actor)
	return actor, ok
}
