package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/config"
	"github.com/comite-ethique/backend/internal/model"
	"github.com/comite-ethique/backend/internal/repository"
)

// AdminHandler implements the guarded triage and editing endpoints.  Every
// route it serves sits behind the RequireAdmin middleware.
type AdminHandler struct {
	Cfg         config.Config
	Admins      *repository.AdminRepo
	Complaints  *repository.ComplaintRepo
	Messages    *repository.MessageRepo
	Suggestions *repository.SuggestionRepo
	Protocols   *repository.ProtocolRepo
	Content     *repository.ContentRepo
}

func NewAdminHandler(cfg config.Config, a *repository.AdminRepo, c *repository.ComplaintRepo,
	m *repository.MessageRepo, s *repository.SuggestionRepo, p *repository.ProtocolRepo,
	ct *repository.ContentRepo) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Admins: a, Complaints: c, Messages: m,
		Suggestions: s, Protocols: p, Content: ct}
}

// ListComplaints returns every complaint, newest first.
func (h *AdminHandler) ListComplaints(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Complaints.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateComplaintStatus answers PATCH /api/admin/plaintes/:id.  Only the
// four recognized statuses pass; there is no transition graph.
func (h *AdminHandler) UpdateComplaintStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Statut invalide"})
	}
	if !model.ValidComplaintStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Statut invalide"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Complaints.UpdateStatus(ctx, c.Param("id"), body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ListMessages returns every message, newest first.
func (h *AdminHandler) ListMessages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Messages.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, items)
}

// MarkMessageRead answers PATCH /api/admin/messages/:id.
func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Messages.MarkRead(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ListSuggestions returns every suggestion, newest first.
func (h *AdminHandler) ListSuggestions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Suggestions.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, items)
}

// MarkSuggestionRead answers PATCH /api/admin/suggestions/:id.
func (h *AdminHandler) MarkSuggestionRead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Suggestions.MarkRead(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
