package handler

import (
	"errors"
	"strings"

	"asistencia-backend/internal/metrics"
	"asistencia-backend/internal/model"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

var asistenciaMessages = errorMessages{
	NotFound:   "Registro de asistencia no encontrado.",
	Duplicate:  "Ya existe un registro de asistencia para ese empleado, fecha y tipo.",
	ForeignKey: "El empleado o tipo de asistencia indicado no existe.",
}

type AsistenciaHandler struct {
	repo     repository.AsistenciaRepository
	catalogo repository.CatalogoRepository
}

func NewAsistenciaHandler(repo repository.AsistenciaRepository, catalogo repository.CatalogoRepository) *AsistenciaHandler {
	return &AsistenciaHandler{repo: repo, catalogo: catalogo}
}

// AsistenciaRequest sirve para crear y para reemplazar. El tipo puede venir
// por id o por código.
type AsistenciaRequest struct {
	EmpleadoID    uint    `json:"empleado_id"`
	Fecha         string  `json:"fecha"`
	TipoID        uint    `json:"tipo_id"`
	TipoCodigo    string  `json:"tipo_codigo"`
	Hora          *string `json:"hora"`
	HoraSalida    *string `json:"hora_salida"`
	Observaciones *string `json:"observaciones"`
}

var errTipoDesconocido = errors.New("tipo de asistencia desconocido")

// toModel valida y normaliza; devuelve la lista de errores de validación.
func (h *AsistenciaHandler) toModel(c *fiber.Ctx, req AsistenciaRequest) (*model.Asistencia, []string, error) {
	var errs []string
	if req.EmpleadoID == 0 {
		errs = append(errs, "empleado_id es obligatorio")
	}

	fecha := ""
	if strings.TrimSpace(req.Fecha) == "" {
		errs = append(errs, "fecha es obligatoria")
	} else if f, err := model.ParseFecha(req.Fecha); err != nil {
		errs = append(errs, "fecha: "+err.Error())
	} else {
		fecha = f
	}

	hora, err := model.ParseHoraOpcional(req.Hora)
	if err != nil {
		errs = append(errs, "hora: "+err.Error())
	}
	horaSalida, err := model.ParseHoraOpcional(req.HoraSalida)
	if err != nil {
		errs = append(errs, "hora_salida: "+err.Error())
	}

	tipoID := req.TipoID
	codigo := strings.ToUpper(strings.TrimSpace(req.TipoCodigo))
	switch {
	case tipoID != 0:
	case codigo != "":
		tipo, err := h.catalogo.GetTipoByCodigo(c.UserContext(), codigo)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, errTipoDesconocido
		}
		if err != nil {
			return nil, nil, err
		}
		tipoID = tipo.ID
	default:
		errs = append(errs, "tipo_id o tipo_codigo es obligatorio")
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	return &model.Asistencia{
		EmpleadoID:    req.EmpleadoID,
		Fecha:         fecha,
		Hora:          hora,
		HoraSalida:    horaSalida,
		TipoID:        tipoID,
		Observaciones: req.Observaciones,
	}, nil, nil
}

func (h *AsistenciaHandler) Create(c *fiber.Ctx) error {
	var req AsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		metrics.ObserveRegistro(metrics.ResultadoInvalido)
		return badRequest(c, msgCuerpoInvalido)
	}

	asistencia, errs, err := h.toModel(c, req)
	if errors.Is(err, errTipoDesconocido) {
		metrics.ObserveRegistro(metrics.ResultadoInvalido)
		return badRequest(c, "Tipo de asistencia no válido.")
	}
	if err != nil {
		metrics.ObserveRegistro(metrics.ResultadoError)
		return storageError(c, err, asistenciaMessages)
	}
	if len(errs) > 0 {
		metrics.ObserveRegistro(metrics.ResultadoInvalido)
		return badRequest(c, "Datos de asistencia inválidos.", errs...)
	}

	if err := h.repo.Create(c.UserContext(), asistencia); err != nil {
		if repository.IsDuplicate(err) {
			metrics.ObserveRegistro(metrics.ResultadoDuplicado)
		} else {
			metrics.ObserveRegistro(metrics.ResultadoError)
		}
		return storageError(c, err, asistenciaMessages)
	}
	metrics.ObserveRegistro(metrics.ResultadoOK)

	detalle, err := h.repo.GetByID(c.UserContext(), asistencia.ID)
	if err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	return success(c, fiber.StatusCreated, "Asistencia registrada correctamente.", detalle)
}

func (h *AsistenciaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	asistencia, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	return success(c, fiber.StatusOK, "", asistencia)
}

// rango lee desde/hasta opcionales; cada uno debe ser una fecha válida si viene.
func rango(c *fiber.Ctx) (desde, hasta string, err error) {
	if v := strings.TrimSpace(c.Query("desde")); v != "" {
		if desde, err = model.ParseFecha(v); err != nil {
			return "", "", err
		}
	}
	if v := strings.TrimSpace(c.Query("hasta")); v != "" {
		if hasta, err = model.ParseFecha(v); err != nil {
			return "", "", err
		}
	}
	return desde, hasta, nil
}

func (h *AsistenciaHandler) GetAll(c *fiber.Ctx) error {
	var (
		filtro repository.AsistenciaFiltro
		err    error
	)
	if filtro.EmpleadoID, err = queryID(c, "empleado_id", "empleadoId"); err != nil {
		return badRequest(c, "Filtro de empleado inválido.")
	}
	if filtro.EmpresaID, err = queryID(c, "empresa_id", "empresaId"); err != nil {
		return badRequest(c, "Filtro de empresa inválido.")
	}
	if filtro.TipoID, err = queryID(c, "tipo_id", "tipoId"); err != nil {
		return badRequest(c, "Filtro de tipo inválido.")
	}
	if filtro.Desde, filtro.Hasta, err = rango(c); err != nil {
		return badRequest(c, err.Error())
	}

	list, err := h.repo.GetAll(c.UserContext(), filtro)
	if err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	return success(c, fiber.StatusOK, "", list)
}

func (h *AsistenciaHandler) GetHistory(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}
	desde, hasta, err := rango(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	list, err := h.repo.GetHistory(c.UserContext(), id, desde, hasta)
	if err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	return success(c, fiber.StatusOK, "", list)
}

func (h *AsistenciaHandler) GetByEmpresa(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}
	desde, hasta, err := rango(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	list, err := h.repo.GetByEmpresa(c.UserContext(), id, desde, hasta)
	if err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	return success(c, fiber.StatusOK, "", list)
}

func (h *AsistenciaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	var req AsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgCuerpoInvalido)
	}
	asistencia, errs, err := h.toModel(c, req)
	if errors.Is(err, errTipoDesconocido) {
		return badRequest(c, "Tipo de asistencia no válido.")
	}
	if err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	if len(errs) > 0 {
		return badRequest(c, "Datos de asistencia inválidos.", errs...)
	}

	if err := h.repo.Replace(c.UserContext(), id, asistencia); err != nil {
		return storageError(c, err, asistenciaMessages)
	}

	detalle, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	return success(c, fiber.StatusOK, "Asistencia actualizada correctamente.", detalle)
}

func (h *AsistenciaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, msgIDInvalido)
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return storageError(c, err, asistenciaMessages)
	}
	return success(c, fiber.StatusOK, "Asistencia eliminada correctamente.", nil)
}
