package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/book-registry/internal/api/dto"
	"github.com/spec-kit/book-registry/internal/repository"
	"github.com/spec-kit/book-registry/internal/service"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

// AuthorsHandler exposes author catalog endpoints.
type AuthorsHandler struct {
	authors *service.AuthorService
}

// NewAuthorsHandler constructs handler.
func NewAuthorsHandler(authors *service.AuthorService) *AuthorsHandler {
	return &AuthorsHandler{authors: authors}
}

// Create handles POST /authors.
func (h *AuthorsHandler) Create(c *fiber.Ctx) error {
	var req dto.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	author, err := h.authors.Create(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAuthorResponse(author)})
}

// List handles GET /authors.
func (h *AuthorsHandler) List(c *fiber.Ctx) error {
	filter := repository.AuthorFilter{
		Name:   c.Query("name"),
		Offset: queryInt(c, "offset", 0),
		Limit:  queryInt(c, "limit", 20),
	}
	authors, err := h.authors.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.AuthorResponse, 0, len(authors))
	for i := range authors {
		items = append(items, dto.NewAuthorResponse(&authors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /authors/:id.
func (h *AuthorsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	author, err := h.authors.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAuthorResponse(author)})
}

// Update handles PATCH /authors/:id.
func (h *AuthorsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	author, err := h.authors.Update(c.Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAuthorResponse(author)})
}

// Delete handles DELETE /authors/:id.
func (h *AuthorsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.authors.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "author deleted"})
}
