package middleware

import (
	"errors"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/internal/api/presenters"
	"github.com/NotFish232/Conrad-2023/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
	})
}

// AuthMiddleware is the credential gate: every request carries username
// and password query parameters which must exactly match a stored user.
// The gate decides once per request; handlers read the caller from locals.
func (m *middleware) AuthMiddleware(userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Query("username")
		password := c.Query("password")

		if err := userService.Authorize(c.Context(), username, password); err != nil {
			message := domain.MessageUnauthorizedInvalid
			if errors.Is(err, domain.ErrMissingCredentials) {
				message = domain.MessageUnauthorizedMissing
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, message, err)
		}

		c.Locals("username", username)
		return c.Next()
	}
}
