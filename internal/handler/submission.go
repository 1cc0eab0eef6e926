package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comite-ethique/backend/internal/model"
	"github.com/comite-ethique/backend/internal/utils"
)

const minDescriptionLen = 20

type complaintReq struct {
	Anonymous   bool   `json:"anonymous"`
	Plaignant   string `json:"plaignant"`
	Grade       string `json:"grade"`
	Personne    string `json:"personne"`
	Categorie   string `json:"categorie"`
	Gravite     string `json:"gravite"`
	DateFaits   string `json:"date_faits"`
	Description string `json:"description"`
	Demandes    string `json:"demandes"`
}

type messageReq struct {
	Expediteur   string `json:"expediteur"`
	Destinataire string `json:"destinataire"`
	Nature       string `json:"nature"`
	Sujet        string `json:"sujet"`
	Message      string `json:"message"`
	Urgent       bool   `json:"urgent"`
}

type suggestionReq struct {
	Anonymous   bool   `json:"anonymous"`
	Auteur      string `json:"auteur"`
	Domaine     string `json:"domaine"`
	Titre       string `json:"titre"`
	Description string `json:"description"`
	Priorite    string `json:"priorite"`
}

// CreateComplaint validates and stores a public complaint, returning the
// generated id.  Nothing is written when validation fails.
func (h *PublicHandler) CreateComplaint(c echo.Context) error {
	var req complaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}
	if req.Personne == "" || req.Categorie == "" || req.Gravite == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}
	if len([]rune(req.Description)) < minDescriptionLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Description trop courte (minimum 20 caractères)"})
	}

	plaignant := req.Plaignant
	if req.Anonymous || plaignant == "" {
		plaignant = "ANONYME"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	complaint := &model.Complaint{
		ID:          utils.NewSubmissionID("CE"),
		Date:        now,
		Anonymous:   req.Anonymous,
		Plaignant:   plaignant,
		Grade:       req.Grade,
		Personne:    req.Personne,
		Categorie:   req.Categorie,
		Gravite:     req.Gravite,
		DateFaits:   req.DateFaits,
		Description: req.Description,
		Demandes:    req.Demandes,
		Status:      model.StatusEnAttente,
		CreatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Complaints.Insert(ctx, complaint); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": complaint.ID})
}

// CreateMessage stores a public message to the committee.
func (h *PublicHandler) CreateMessage(c echo.Context) error {
	var req messageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}
	if req.Destinataire == "" || req.Nature == "" || req.Sujet == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}

	expediteur := req.Expediteur
	if expediteur == "" {
		expediteur = "Anonyme"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	message := &model.Message{
		ID:           utils.NewSubmissionID("MSG"),
		Date:         now,
		Expediteur:   expediteur,
		Destinataire: req.Destinataire,
		Nature:       req.Nature,
		Sujet:        req.Sujet,
		Message:      req.Message,
		Urgent:       req.Urgent,
		Status:       model.StatusNonLu,
		CreatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Messages.Insert(ctx, message); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": message.ID})
}

// CreateSuggestion stores a public improvement suggestion.
func (h *PublicHandler) CreateSuggestion(c echo.Context) error {
	var req suggestionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}
	if req.Domaine == "" || req.Titre == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Champs obligatoires manquants"})
	}

	auteur := req.Auteur
	if auteur == "" {
		auteur = "Anonyme"
	}
	priorite := req.Priorite
	if priorite == "" {
		priorite = "NORMALE"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	suggestion := &model.Suggestion{
		ID:          utils.NewSubmissionID("SUG"),
		Date:        now,
		Anonymous:   req.Anonymous,
		Auteur:      auteur,
		Domaine:     req.Domaine,
		Titre:       req.Titre,
		Description: req.Description,
		Priorite:    priorite,
		Status:      model.StatusNonLu,
		CreatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Suggestions.Insert(ctx, suggestion); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erreur serveur"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": suggestion.ID})
}
