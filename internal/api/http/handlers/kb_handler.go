package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/smart-helpdesk/helpdesk/internal/api/dto"
	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/service"
	apperrors "github.com/smart-helpdesk/helpdesk/pkg/util"
)

// KBHandler serves knowledge base article management.
type KBHandler struct {
	kb *service.KBService
}

// NewKBHandler constructs the handler.
func NewKBHandler(kb *service.KBService) *KBHandler {
	return &KBHandler{kb: kb}
}

// Create adds an article. Admin only.
func (h *KBHandler) Create(c *fiber.Ctx) error {
	input, err := parseArticleRequest(c)
	if err != nil {
		return err
	}

	article, err := h.kb.CreateArticle(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.ToArticleResponse(article))
}

// Update replaces an article's contents. Admin only.
func (h *KBHandler) Update(c *fiber.Ctx) error {
	input, err := parseArticleRequest(c)
	if err != nil {
		return err
	}

	article, err := h.kb.UpdateArticle(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(dto.ToArticleResponse(article))
}

// Delete removes an article. Admin only.
func (h *KBHandler) Delete(c *fiber.Ctx) error {
	if err := h.kb.DeleteArticle(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get returns a single article.
func (h *KBHandler) Get(c *fiber.Ctx) error {
	article, err := h.kb.GetArticle(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToArticleResponse(article))
}

// List returns articles, optionally filtered by status.
func (h *KBHandler) List(c *fiber.Ctx) error {
	var status *domain.ArticleStatus
	if raw := c.Query("status"); raw != "" {
		parsed := domain.ArticleStatus(raw)
		if parsed != domain.ArticleStatusDraft && parsed != domain.ArticleStatusPublished {
			return apperrors.NewValidationError("invalid article status", map[string]any{"status": raw})
		}
		status = &parsed
	}

	articles, err := h.kb.ListArticles(c.Context(), status)
	if err != nil {
		return err
	}

	return c.JSON(dto.ToArticleListResponse(articles))
}

func parseArticleRequest(c *fiber.Ctx) (service.ArticleInput, error) {
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ArticleInput{}, apperrors.NewValidationError("invalid request body", nil)
	}
	return service.ArticleInput{
		Title:  strings.TrimSpace(req.Title),
		Body:   req.Body,
		Tags:   req.Tags,
		Status: domain.ArticleStatus(req.Status),
	}, nil
}
