package middleware

import "github.com/gofiber/fiber/v2"

// Role exige que la identidad tenga uno de los roles indicados. Va después de Auth.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return unauthorized(c, "Token no proporcionado.")
		}

		for _, role := range allowedRoles {
			if role == identity.Rol {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"ok": false, "message": "Acceso denegado para tu rol."})
	}
}
