package handler

import (
	"strings"

	"asistencia-backend/internal/model"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

var empleadoMessages = errorMessages{
	NotFound:   "Empleado no encontrado.",
	Duplicate:  "Ya existe un empleado con ese RUT.",
	ForeignKey: "La empresa, comuna o estado civil indicado no existe.",
}

type EmpleadoHandler struct {
	repo repository.EmpleadoRepository
}

func NewEmpleadoHandler(repo repository.EmpleadoRepository) *EmpleadoHandler {
	return &EmpleadoHandler{repo: repo}
}

func (h *EmpleadoHandler) GetAll(c *fiber.Ctx) error {
	var (
		filtro repository.EmpleadoFiltro
		err    error
	)
	if filtro.EmpresaID, err = queryID(c, "empresaId", "empresa_id"); err != nil {
		return badRequest(c, "Filtro de empresa inválido.")
	}
	if filtro.ComunaID, err = queryID(c, "comunaId", "comuna_id"); err != nil {
		return badRequest(c, "Filtro de comuna inválido.")
	}
	if filtro.EstadoCivilID, err = queryID(c, "estadoCivilId", "estado_civil_id"); err != nil {
		return badRequest(c, "Filtro de estado civil inválido.")
	}
	filtro.IncluirInactivos = queryBool(c, "incluirInactivos", "incluir_inactivos")

	empleados, err := h.repo.GetAll(c.UserContext(), filtro)
	if err != nil {
		return storageError(c, err, empleadoMessages)
	}
	return success(c, fiber.StatusOK, "", empleados)
}

func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	empleado, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, empleadoMessages)
	}
	return success(c, fiber.StatusOK, "", empleado)
}

type CreateEmpleadoRequest struct {
	EmpresaID       uint    `json:"empresa_id"`
	NombreCompleto  string  `json:"nombre_completo"`
	Rut             string  `json:"rut"`
	EstadoCivilID   *uint   `json:"estado_civil_id"`
	ComunaID        *uint   `json:"comuna_id"`
	Direccion       *string `json:"direccion"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
	Cargo           *string `json:"cargo"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	FechaIngreso    *string `json:"fecha_ingreso"`
	FechaEgreso     *string `json:"fecha_egreso"`
	Activo          *bool   `json:"activo"`
}

func (r CreateEmpleadoRequest) toModel() (model.Empleado, []string) {
	var errs []string
	nombre := strings.TrimSpace(r.NombreCompleto)
	rut := strings.TrimSpace(r.Rut)
	if r.EmpresaID == 0 {
		errs = append(errs, "empresa_id es obligatorio")
	}
	if nombre == "" {
		errs = append(errs, "nombre_completo es obligatorio")
	}
	if rut == "" {
		errs = append(errs, "rut es obligatorio")
	}

	fecha := func(campo string, v *string) *string {
		f, err := model.ParseFechaOpcional(v)
		if err != nil {
			errs = append(errs, campo+": "+err.Error())
		}
		return f
	}

	e := model.Empleado{
		EmpresaID:       r.EmpresaID,
		NombreCompleto:  nombre,
		Rut:             rut,
		EstadoCivilID:   r.EstadoCivilID,
		ComunaID:        r.ComunaID,
		Direccion:       r.Direccion,
		Telefono:        r.Telefono,
		Email:           r.Email,
		Cargo:           r.Cargo,
		FechaNacimiento: fecha("fecha_nacimiento", r.FechaNacimiento),
		FechaIngreso:    fecha("fecha_ingreso", r.FechaIngreso),
		FechaEgreso:     fecha("fecha_egreso", r.FechaEgreso),
		Activo:          r.Activo == nil || *r.Activo,
	}
	return e, errs
}

func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var req CreateEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgCuerpoInvalido)
	}

	empleado, errs := req.toModel()
	if len(errs) > 0 {
		return badRequest(c, "Datos del empleado inválidos.", errs...)
	}

	if err := h.repo.Create(c.UserContext(), &empleado); err != nil {
		return storageError(c, err, empleadoMessages)
	}

	detalle, err := h.repo.GetByID(c.UserContext(), empleado.ID)
	if err != nil {
		return storageError(c, err, empleadoMessages)
	}
	return success(c, fiber.StatusCreated, "Empleado creado correctamente.", detalle)
}

func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	var patch model.EmpleadoPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, msgCuerpoInvalido)
	}
	if err := patch.Validate(); err != nil {
		return badRequest(c, "Datos del empleado inválidos.", err.Error())
	}

	msgs := empleadoMessages
	msgs.NotFound = "Empleado no encontrado o sin cambios."
	if err := h.repo.Update(c.UserContext(), id, patch); err != nil {
		return storageError(c, err, msgs)
	}

	detalle, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, msgs)
	}
	return success(c, fiber.StatusOK, "Empleado actualizado correctamente.", detalle)
}

func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	if err := h.repo.SoftDelete(c.UserContext(), id); err != nil {
		return storageError(c, err, empleadoMessages)
	}
	return success(c, fiber.StatusOK, "Empleado desactivado correctamente.", nil)
}
