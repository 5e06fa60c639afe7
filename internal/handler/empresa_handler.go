package handler

import (
	"strings"

	"asistencia-backend/internal/model"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

var empresaMessages = errorMessages{
	NotFound:   "Empresa no encontrada.",
	Duplicate:  "Ya existe una empresa con ese nombre o RUT.",
	ForeignKey: "La comuna indicada no existe.",
}

type EmpresaHandler struct {
	repo repository.EmpresaRepository
}

func NewEmpresaHandler(repo repository.EmpresaRepository) *EmpresaHandler {
	return &EmpresaHandler{repo: repo}
}

func (h *EmpresaHandler) GetAll(c *fiber.Ctx) error {
	filtro := repository.EmpresaFiltro{
		IncluirInactivas: queryBool(c, "incluirInactivas", "incluir_inactivas"),
		Busqueda:         strings.TrimSpace(c.Query("busqueda")),
	}

	empresas, err := h.repo.GetAll(c.UserContext(), filtro)
	if err != nil {
		return storageError(c, err, empresaMessages)
	}
	return success(c, fiber.StatusOK, "", empresas)
}

func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	empresa, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, empresaMessages)
	}
	return success(c, fiber.StatusOK, "", empresa)
}

type CreateEmpresaRequest struct {
	Nombre         string  `json:"nombre"`
	Rut            string  `json:"rut"`
	Giro           *string `json:"giro"`
	Direccion      *string `json:"direccion"`
	ComunaID       *uint   `json:"comuna_id"`
	Telefono       *string `json:"telefono"`
	CorreoContacto *string `json:"correo_contacto"`
	Activo         *bool   `json:"activo"`
}

func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var req CreateEmpresaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgCuerpoInvalido)
	}

	// 1. Validar obligatorios
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Rut = strings.TrimSpace(req.Rut)
	var faltantes []string
	if req.Nombre == "" {
		faltantes = append(faltantes, "nombre es obligatorio")
	}
	if req.Rut == "" {
		faltantes = append(faltantes, "rut es obligatorio")
	}
	if len(faltantes) > 0 {
		return badRequest(c, "Nombre y RUT son obligatorios.", faltantes...)
	}

	// 2. Guardar
	empresa := model.Empresa{
		Nombre:         req.Nombre,
		Rut:            req.Rut,
		Giro:           req.Giro,
		Direccion:      req.Direccion,
		ComunaID:       req.ComunaID,
		Telefono:       req.Telefono,
		CorreoContacto: req.CorreoContacto,
		Activo:         req.Activo == nil || *req.Activo,
	}
	if err := h.repo.Create(c.UserContext(), &empresa); err != nil {
		return storageError(c, err, empresaMessages)
	}

	// 3. Responder con la vista enriquecida
	detalle, err := h.repo.GetByID(c.UserContext(), empresa.ID)
	if err != nil {
		return storageError(c, err, empresaMessages)
	}
	return success(c, fiber.StatusCreated, "Empresa creada correctamente.", detalle)
}

func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	var patch model.EmpresaPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, msgCuerpoInvalido)
	}
	if err := patch.Validate(); err != nil {
		return badRequest(c, "Nombre y RUT no pueden quedar vacíos.")
	}

	msgs := empresaMessages
	msgs.NotFound = "Empresa no encontrada o sin cambios."
	if err := h.repo.Update(c.UserContext(), id, patch); err != nil {
		return storageError(c, err, msgs)
	}

	detalle, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, msgs)
	}
	return success(c, fiber.StatusOK, "Empresa actualizada correctamente.", detalle)
}

func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	if err := h.repo.SoftDelete(c.UserContext(), id); err != nil {
		return storageError(c, err, empresaMessages)
	}
	return success(c, fiber.StatusOK, "Empresa desactivada correctamente.", nil)
}
