package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const (
	msgErrorInterno       = "Error interno del servidor."
	msgNoDisponible       = "Servicio no disponible, intenta nuevamente."
	msgCuerpoInvalido     = "Cuerpo de la solicitud inválido."
	msgIDInvalido         = "El id debe ser un número entero positivo."
	msgReferenciaInvalida = "Alguna de las referencias indicadas no existe."
)

// errorMessages son los textos por entidad para los errores de almacenamiento.
type errorMessages struct {
	NotFound   string
	Duplicate  string
	ForeignKey string
}

func success(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{"ok": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func fail(c *fiber.Ctx, status int, message string, errs ...string) error {
	body := fiber.Map{"ok": false, "message": message}
	if len(errs) > 0 {
		body["errors"] = errs
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, message string, errs ...string) error {
	return fail(c, fiber.StatusBadRequest, message, errs...)
}

// storageError traduce el resultado tipado del repositorio a una respuesta HTTP.
func storageError(c *fiber.Ctx, err error, msgs errorMessages) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, fiber.StatusNotFound, msgs.NotFound)
	case repository.IsDuplicate(err):
		return badRequest(c, msgs.Duplicate)
	case repository.IsForeignKey(err):
		message := msgs.ForeignKey
		if message == "" {
			message = msgReferenciaInvalida
		}
		return badRequest(c, message)
	case errors.Is(err, repository.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		log.Warnw("storage unavailable", "request_id", requestID(c), "path", c.Path(), "error", err)
		return fail(c, fiber.StatusServiceUnavailable, msgNoDisponible)
	}

	log.Errorw("unexpected error", "request_id", requestID(c), "path", c.Path(), "error", err)
	return fail(c, fiber.StatusInternalServerError, msgErrorInterno)
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// ErrorHandler renderiza errores del framework (404 de ruta, panics recuperados)
// con el mismo sobre que el resto de la API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return fail(c, code, "Ruta no encontrada.")
	case fiber.StatusRequestTimeout:
		return fail(c, fiber.StatusServiceUnavailable, msgNoDisponible)
	case fiber.StatusInternalServerError:
		log.Errorw("unhandled error", "request_id", requestID(c), "path", c.Path(), "error", err)
		return fail(c, code, msgErrorInterno)
	}
	return fail(c, code, fe.Message)
}

// NotFound es el último handler de la aplicación.
func NotFound(c *fiber.Ctx) error {
	return fail(c, fiber.StatusNotFound, "Ruta no encontrada.")
}

// parseID lee un parámetro de ruta numérico y positivo.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// isSinFiltro reconoce los valores que el frontend usa para "sin restricción".
func isSinFiltro(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "todas", "todos", "null", "undefined":
		return true
	}
	return false
}

// parseFiltroID convierte un filtro de query/body en id opcional.
func parseFiltroID(v string) (*uint, error) {
	if isSinFiltro(v) {
		return nil, nil
	}
	id, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil || id == 0 {
		return nil, errFiltroInvalido
	}
	u := uint(id)
	return &u, nil
}

var errFiltroInvalido = errors.New("filtro de id inválido")

// queryID busca el filtro bajo cualquiera de sus nombres (camelCase o snake_case).
func queryID(c *fiber.Ctx, names ...string) (*uint, error) {
	for _, name := range names {
		if v := c.Query(name); v != "" {
			return parseFiltroID(v)
		}
	}
	return nil, nil
}

// queryBool acepta "true"/"1" bajo cualquiera de los nombres.
func queryBool(c *fiber.Ctx, names ...string) bool {
	for _, name := range names {
		switch strings.ToLower(c.Query(name)) {
		case "true", "1", "si", "sí":
			return true
		}
	}
	return false
}

// optionalID acepta un número, un string numérico, "todas", "" o null.
type optionalID struct {
	Value *uint
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	id, err := parseFiltroID(raw)
	if err != nil {
		return err
	}
	o.Value = id
	return nil
}
