package handler // handler implements the HTTP endpoints of the committee backend

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/repository"
)

// PublicHandler serves the unauthenticated read endpoints and the three
// submission endpoints.
type PublicHandler struct {
	Complaints  *repository.ComplaintRepo
	Messages    *repository.MessageRepo
	Suggestions *repository.SuggestionRepo
	Protocols   *repository.ProtocolRepo
	Content     *repository.ContentRepo
}

func NewPublicHandler(c *repository.ComplaintRepo, m *repository.MessageRepo,
	s *repository.SuggestionRepo, p *repository.ProtocolRepo, ct *repository.ContentRepo) *PublicHandler {
	return &PublicHandler{Complaints: c, Messages: m, Suggestions: s, Protocols: p, Content: ct}
}

// Stats returns the current row counts of the four public collections.
func (h *PublicHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	plaintes, err := h.Complaints.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	messages, err := h.Messages.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	suggestions, err := h.Suggestions.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	protocols, err := h.Protocols.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"plaintes":    plaintes,
		"messages":    messages,
		"suggestions": suggestions,
		"protocols":   protocols,
	})
}

// ListProtocols answers GET /api/protocols?q=&cat= with the filtered,
// date-descending protocol listing.
func (h *PublicHandler) ListProtocols(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Protocols.Search(ctx, c.QueryParam("q"), c.QueryParam("cat"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, items)
}

// SiteContent returns the whole key/value mapping as one flat object.
func (h *PublicHandler) SiteContent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	content, err := h.Content.All(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, content)
}
