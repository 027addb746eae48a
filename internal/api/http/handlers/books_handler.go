package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/book-registry/internal/api/dto"
	"github.com/spec-kit/book-registry/internal/repository"
	"github.com/spec-kit/book-registry/internal/service"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

// BooksHandler exposes book catalog endpoints.
type BooksHandler struct {
	books *service.BookService
}

// NewBooksHandler constructs handler.
func NewBooksHandler(books *service.BookService) *BooksHandler {
	return &BooksHandler{books: books}
}

// Create handles POST /books.
func (h *BooksHandler) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.AuthorID <= 0 {
		return apperrors.NewValidationError("author_id required", nil)
	}

	book, err := h.books.Create(c.Context(), req.Title, req.Year, req.AuthorID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBookResponse(book)})
}

// List handles GET /books.
func (h *BooksHandler) List(c *fiber.Ctx) error {
	filter := repository.BookFilter{
		Title:  c.Query("title"),
		Offset: queryInt(c, "offset", 0),
		Limit:  queryInt(c, "limit", 20),
	}
	if c.Query("year") != "" {
		year := queryInt(c, "year", 0)
		filter.Year = &year
	}

	books, err := h.books.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		items = append(items, dto.NewBookResponse(&books[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /books/:id.
func (h *BooksHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	book, err := h.books.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookResponse(book)})
}

// Update handles PATCH /books/:id.
func (h *BooksHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	book, err := h.books.Update(c.Context(), id, service.BookUpdateInput{
		Title:    req.Title,
		Year:     req.Year,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookResponse(book)})
}

// Delete handles DELETE /books/:id.
func (h *BooksHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.books.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "book deleted"})
}
