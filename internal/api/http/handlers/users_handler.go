package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/book-registry/internal/api/dto"
	"github.com/spec-kit/book-registry/internal/auth"
	"github.com/spec-kit/book-registry/internal/service"
	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.accounts.Register(c.Context(), service.AccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.accounts.List(c.Context(), queryInt(c, "offset", 0), queryInt(c, "limit", 20))
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.accounts.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Update handles PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.accounts.Update(c.Context(), principal, id, service.AccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated()
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.accounts.Delete(c.Context(), principal, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "account deleted"})
}
