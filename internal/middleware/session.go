package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/model"
	"github.com/comite-ethique/backend/internal/repository"
	"github.com/comite-ethique/backend/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "ce_sid"

// SessionTTL is the absolute session lifetime.  Expiry is counted from
// issuance, not from the last request.
const SessionTTL = 8 * time.Hour

// adminKey is the context key under which RequireAdmin stores the identity.
const adminKey = "admin"

var errNoSession = errors.New("no valid session")

// RequireAdmin returns a middleware that rejects requests lacking a live
// admin session with 401, and otherwise stores the admin identity in the
// request context for handlers to read via CurrentAdmin.
func RequireAdmin(secret string, sessions *repository.SessionRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, err := LookupAdmin(c, secret, sessions)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Accès refusé — Authentification requise"})
			}
			c.Set(adminKey, admin)
			return next(c)
		}
	}
}

// LookupAdmin resolves the session cookie of a request into an admin
// identity.  The cookie signature is verified before the database is
// touched, so unsigned garbage never costs a query.  Introspection
// endpoints use it directly since they must not fail with 401.
func LookupAdmin(c echo.Context, secret string, sessions *repository.SessionRepo) (model.AdminIdentity, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return model.AdminIdentity{}, errNoSession
	}
	raw, ok := utils.VerifySignedToken(secret, cookie.Value)
	if !ok {
		return model.AdminIdentity{}, errNoSession
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	admin, err := sessions.GetByTokenHash(ctx, utils.HashSessionRaw(raw))
	if err != nil {
		return model.AdminIdentity{}, errNoSession
	}
	return admin, nil
}

// CurrentAdmin returns the identity stored by RequireAdmin.  The second
// return value is false when the middleware did not run.
func CurrentAdmin(c echo.Context) (model.AdminIdentity, bool) {
	admin, ok := c.Get(adminKey).(model.AdminIdentity)
	return admin, ok
}
