package handler

import (
	"errors"

	"asistencia-backend/internal/middleware"
	"asistencia-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const msgCredencialesInvalidas = "Credenciales inválidas."

type AuthHandler struct {
	usecase *usecase.AuthUsecase
}

func NewAuthHandler(u *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgCuerpoInvalido)
	}

	sesion, err := h.usecase.Login(c.UserContext(), req.Email, req.Password)
	switch {
	case errors.Is(err, usecase.ErrCredencialesFaltantes):
		return badRequest(c, "Email y contraseña son obligatorios.")
	case errors.Is(err, usecase.ErrCredencialesInvalidas):
		return fail(c, fiber.StatusUnauthorized, msgCredencialesInvalidas)
	case err != nil:
		return storageError(c, err, errorMessages{NotFound: msgCredencialesInvalidas})
	}

	// user y token también en la raíz: el frontend los lee desde ahí
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Inicio de sesión exitoso.",
		"data":    sesion,
		"user":    sesion.Usuario,
		"token":   sesion.Token,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Token no proporcionado.")
	}

	perfil, err := h.usecase.Me(c.UserContext(), identity.UsuarioID)
	if err != nil {
		return storageError(c, err, errorMessages{NotFound: "Usuario no encontrado."})
	}
	return success(c, fiber.StatusOK, "", perfil)
}
