package middleware

import (
	config "github.com/anjiri1684/college_erp/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// Protected validates bearer tokens minted by the identity service. This API
// never issues tokens itself; it only shares JWT_SECRET with the issuer.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// roleClaim reads the role claim, returning "" when it is absent or not a
// string, so a validly signed token without a role fails the guard instead
// of panicking.
func roleClaim(claims jwt.MapClaims) string {
	role, _ := claims["role"].(string)
	return role
}

func tokenRole(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	return roleClaim(claims)
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenRole(c) != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}

func StaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := tokenRole(c)
		if role != "staff" && role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Staff access required",
			})
		}
		return c.Next()
	}
}
