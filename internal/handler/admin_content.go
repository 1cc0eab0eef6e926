package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/model"
)

type protocolReq struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Version  string `json:"version"`
	Content  string `json:"content"`
}

// UpsertProtocol creates a protocol or replaces the one carrying the same
// id in full.  The date is stamped at write time; the version string
// defaults to v1.0.
func (h *AdminHandler) UpsertProtocol(c echo.Context) error {
	var req protocolReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}
	if req.ID == "" || req.Title == "" || req.Category == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}
	version := req.Version
	if version == "" {
		version = "v1.0"
	}
	protocol := &model.Protocol{
		ID:       req.ID,
		Title:    req.Title,
		Category: req.Category,
		Version:  version,
		Date:     time.Now().UTC().Format("2006-01-02"),
		Content:  req.Content,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Protocols.Upsert(ctx, protocol); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteProtocol removes a protocol; deleting an unknown id still succeeds.
func (h *AdminHandler) DeleteProtocol(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Protocols.Delete(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// UpsertContent sets one site-content key.  The value may be an empty
// string but must be present in the body.
func (h *AdminHandler) UpsertContent(c echo.Context) error {
	var req struct {
		Key   string  `json:"key"`
		Value *string `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Données invalides"})
	}
	if req.Key == "" || req.Value == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Données invalides"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Content.Upsert(ctx, req.Key, *req.Value); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
