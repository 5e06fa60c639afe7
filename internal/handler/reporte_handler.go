package handler

import (
	"strings"
	"time"

	"asistencia-backend/internal/metrics"
	"asistencia-backend/internal/model"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReporteHandler struct {
	repo repository.ReporteRepository
}

func NewReporteHandler(repo repository.ReporteRepository) *ReporteHandler {
	return &ReporteHandler{repo: repo}
}

// ReporteRequest: empresaId y empleadoId aceptan número, string numérico, "todas" o null.
type ReporteRequest struct {
	EmpresaID   optionalID `json:"empresaId"`
	EmpleadoID  optionalID `json:"empleadoId"`
	FechaInicio string     `json:"fechaInicio"`
	FechaFin    string     `json:"fechaFin"`
}

func (h *ReporteHandler) Generate(c *fiber.Ctx) error {
	var req ReporteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgCuerpoInvalido)
	}

	// 1. Validar período
	if strings.TrimSpace(req.FechaInicio) == "" || strings.TrimSpace(req.FechaFin) == "" {
		return badRequest(c, "Las fechas inicio y fin son obligatorias.")
	}
	desde, err := model.ParseFecha(req.FechaInicio)
	if err != nil {
		return badRequest(c, "fechaInicio: "+err.Error())
	}
	hasta, err := model.ParseFecha(req.FechaFin)
	if err != nil {
		return badRequest(c, "fechaFin: "+err.Error())
	}
	if desde > hasta {
		return badRequest(c, "La fecha de inicio no puede ser posterior a la fecha de fin.")
	}

	// 2. Generar
	start := time.Now()
	res, err := h.repo.Generate(c.UserContext(), model.ReporteFiltro{
		EmpresaID:  req.EmpresaID.Value,
		EmpleadoID: req.EmpleadoID.Value,
		Desde:      desde,
		Hasta:      hasta,
	})
	if err != nil {
		metrics.ObserveReporte(metrics.ResultadoError, time.Since(start))
		return storageError(c, err, errorMessages{})
	}
	metrics.ObserveReporte(metrics.ResultadoOK, time.Since(start))

	return success(c, fiber.StatusOK, "", res)
}

func (h *ReporteHandler) EmpleadosPorEstadoCivil(c *fiber.Ctx) error {
	empresaID, err := queryID(c, "empresaId", "empresa_id")
	if err != nil {
		return badRequest(c, "Filtro de empresa inválido.")
	}

	rows, err := h.repo.EmpleadosPorEstadoCivil(c.UserContext(), empresaID)
	if err != nil {
		return storageError(c, err, errorMessages{})
	}
	return success(c, fiber.StatusOK, "", rows)
}

func (h *ReporteHandler) EmpleadosPorComuna(c *fiber.Ctx) error {
	empresaID, err := queryID(c, "empresaId", "empresa_id")
	if err != nil {
		return badRequest(c, "Filtro de empresa inválido.")
	}

	rows, err := h.repo.EmpleadosPorComuna(c.UserContext(), empresaID)
	if err != nil {
		return storageError(c, err, errorMessages{})
	}
	return success(c, fiber.StatusOK, "", rows)
}
