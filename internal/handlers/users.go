package handlers

import (
	"errors"
	"net/http"

	"photoshare-backend/internal/logger"
	"photoshare-backend/internal/models"
	"photoshare-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ListUsersHandler returns all registered users
func ListUsersHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userService.List(c.Context())
		if err != nil {
			logger.Log.Errorw("list users failed", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch users"})
		}
		return c.JSON(users)
	}
}

// CreateUserHandler registers a new user from a JSON body {name, nickname}
func CreateUserHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
		}

		user, err := userService.Create(c.Context(), req.Name, req.Nickname)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name and nickname required"})
			}
			logger.Log.Errorw("create user failed", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(user)
	}
}
