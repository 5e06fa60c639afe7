package handler

import (
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type CatalogoHandler struct {
	repo repository.CatalogoRepository
}

func NewCatalogoHandler(repo repository.CatalogoRepository) *CatalogoHandler {
	return &CatalogoHandler{repo: repo}
}

func (h *CatalogoHandler) GetEmpresas(c *fiber.Ctx) error {
	items, err := h.repo.GetEmpresas(c.UserContext())
	if err != nil {
		return storageError(c, err, errorMessages{})
	}
	return success(c, fiber.StatusOK, "", items)
}

func (h *CatalogoHandler) GetEstadosCiviles(c *fiber.Ctx) error {
	items, err := h.repo.GetEstadosCiviles(c.UserContext())
	if err != nil {
		return storageError(c, err, errorMessages{})
	}
	return success(c, fiber.StatusOK, "", items)
}

func (h *CatalogoHandler) GetComunas(c *fiber.Ctx) error {
	items, err := h.repo.GetComunas(c.UserContext())
	if err != nil {
		return storageError(c, err, errorMessages{})
	}
	return success(c, fiber.StatusOK, "", items)
}

func (h *CatalogoHandler) GetTiposAsistencia(c *fiber.Ctx) error {
	items, err := h.repo.GetTiposAsistencia(c.UserContext())
	if err != nil {
		return storageError(c, err, errorMessages{})
	}
	return success(c, fiber.StatusOK, "", items)
}
