package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/config"
	"github.com/comite-ethique/backend/internal/middleware"
	"github.com/comite-ethique/backend/internal/model"
	"github.com/comite-ethique/backend/internal/repository"
	"github.com/comite-ethique/backend/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Admins   *repository.AdminRepo
	Sessions *repository.SessionRepo

	// dummyHash is generated at the configured bcrypt cost so the
	// unknown-username compare takes as long as a real one.
	dummyHash string
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo, s *repository.SessionRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a, Sessions: s, dummyHash: utils.NewDummyHash(cfg.BcryptCost)}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin and starts a server-side session.  Unknown
// usernames and wrong passwords answer with the same body and both go
// through a bcrypt comparison, so the two cases stay indistinguishable.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Identifiant et mot de passe requis"})
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Identifiant et mot de passe requis"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, err := h.Admins.GetByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.VerifyPassword(h.dummyHash, req.Password)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Identifiants incorrects"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	if !utils.VerifyPassword(admin.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Identifiants incorrects"})
	}

	// Regenerate: whatever session the request presented dies before a new
	// identifier is issued, so a fixated cookie never becomes an admin
	// session.  Expired rows are purged here while we hold the writer.
	if cookie, cerr := c.Cookie(middleware.SessionCookieName); cerr == nil {
		if raw, ok := utils.VerifySignedToken(h.Cfg.SessionSecret, cookie.Value); ok {
			_ = h.Sessions.DeleteByTokenHash(ctx, utils.HashSessionRaw(raw))
		}
	}
	_ = h.Sessions.DeleteExpired(ctx)

	tok, err := utils.NewSessionToken(middleware.SessionTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	identity := model.AdminIdentity{ID: admin.ID, Username: admin.Username, Name: admin.Name}
	if err := h.Sessions.Create(ctx, utils.HashSessionRaw(tok.Raw), identity, tok.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}

	signed := utils.SignToken(h.Cfg.SessionSecret, tok.Raw)
	c.SetCookie(h.sessionCookie(signed, int(middleware.SessionTTL/time.Second)))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "name": admin.Name})
}

// Logout destroys the presented session and clears the cookie.  It always
// succeeds, valid session or not.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if raw, ok := utils.VerifySignedToken(h.Cfg.SessionSecret, cookie.Value); ok {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			_ = h.Sessions.DeleteByTokenHash(ctx, utils.HashSessionRaw(raw))
		}
	}
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me reports the current login state without mutating anything; it never
// answers 401 so the frontend can poll it freely.
func (h *AuthHandler) Me(c echo.Context) error {
	admin, err := middleware.LookupAdmin(c, h.Cfg.SessionSecret, h.Sessions)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"logged": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"logged": true, "name": admin.Name})
}

// sessionCookie builds the ce_sid cookie.  Production deployments sit
// behind an HTTPS reverse proxy on a different origin than the frontend,
// hence Secure plus SameSite=None there; development stays on Strict.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	}
	if h.Cfg.IsProd() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}
	return cookie
}
