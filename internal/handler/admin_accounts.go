package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/middleware"
	"github.com/comite-ethique/backend/internal/repository"
)

// ListAccounts returns all admin accounts without their password hashes.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Admins.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, items)
}

type accountReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateAccount adds an admin account.  The password must be at least 8
// characters; the display name falls back to the username.
func (h *AdminHandler) CreateAccount(c echo.Context) error {
	var req accountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Identifiant requis, mot de passe min. 8 caractères"})
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Identifiant requis, mot de passe min. 8 caractères"})
	}
	name := req.Name
	if name == "" {
		name = username
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if _, err := h.Admins.Create(ctx, username, req.Password, name, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrUsernameTaken {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Cet identifiant existe déjà"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteAccount removes an admin account, refusing to delete the caller's
// own account or the last remaining one.
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Identifiant invalide"})
	}
	caller, ok := middleware.CurrentAdmin(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Accès refusé — Authentification requise"})
	}
	if id == caller.ID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Impossible de supprimer votre propre compte"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	n, err := h.Admins.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	if n <= 1 {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Impossible de supprimer le dernier compte"})
	}
	if err := h.Admins.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
