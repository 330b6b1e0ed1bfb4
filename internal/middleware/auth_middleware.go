package middleware

import (
	"strings"

	"github.com/brandlab/positioning-api/internal/config"
	"github.com/brandlab/positioning-api/internal/model"
	"github.com/brandlab/positioning-api/internal/repository"
	"github.com/brandlab/positioning-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Auth verifies the Supabase-issued bearer token and loads the caller's
// profile, creating it on first sight. On success the caller is exposed
// through locals userID, email and isAdmin.
func Auth(profiles *repository.ProfileRepository) fiber.Handler {
	secret := []byte(config.LoadAuthConfig().JWTSecret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid token",
			}, err)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid token",
			})
		}
		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid token subject",
			}, err)
		}
		email, _ := claims["email"].(string)

		profile, err := profiles.Ensure(c.Context(), &model.Profile{ID: userID, Email: email})
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusInternalServerError,
				Message: "Failed to load profile",
			}, err)
		}

		c.Locals("userID", profile.ID)
		c.Locals("email", profile.Email)
		c.Locals("isAdmin", profile.IsAdmin)
		return c.Next()
	}
}

// RequireAdmin gates the admin surface. It must run after Auth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, _ := c.Locals("isAdmin").(bool)
		if !isAdmin {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
