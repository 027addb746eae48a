package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/book-registry/pkg/util"
)

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	val := c.Query(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
