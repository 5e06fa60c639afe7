package middleware

import (
	"strings"

	"asistencia-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// Identity es el usuario autenticado de la request.
type Identity struct {
	UsuarioID uint
	Email     string
	Rol       string
	EmpresaID *uint
}

// TokenParser verifica un token de sesión.
type TokenParser interface {
	ParseToken(token string) (*usecase.Claims, error)
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false, "message": message})
}

func Auth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Leer el token del header Authorization: "Bearer <token>"
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Token no proporcionado.")
		}
		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			return unauthorized(c, "Formato de token inválido.")
		}

		// 2. Verificar firma, algoritmo y expiración
		claims, err := parser.ParseToken(tokenString)
		if err != nil {
			return unauthorized(c, "Token inválido o expirado.")
		}
		usuarioID, err := claims.UsuarioID()
		if err != nil {
			return unauthorized(c, "Token inválido o expirado.")
		}

		// 3. Guardar la identidad tipada para los handlers
		c.Locals(identityKey, Identity{
			UsuarioID: usuarioID,
			Email:     claims.Email,
			Rol:       claims.Rol,
			EmpresaID: claims.EmpresaID,
		})

		return c.Next()
	}
}

// IdentityFrom devuelve la identidad que dejó Auth.
func IdentityFrom(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	return id, ok
}
