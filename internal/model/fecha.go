package model

import (
	"errors"
	"strings"
	"time"
)

const (
	LayoutFecha = "2006-01-02"
	LayoutHora  = "15:04:05"
)

var (
	ErrFechaInvalida = errors.New("fecha inválida, use el formato YYYY-MM-DD")
	ErrHoraInvalida  = errors.New("hora inválida, use el formato HH:MM o HH:MM:SS")
)

// ParseFecha valida una fecha YYYY-MM-DD y la devuelve normalizada.
func ParseFecha(s string) (string, error) {
	t, err := time.Parse(LayoutFecha, strings.TrimSpace(s))
	if err != nil {
		return "", ErrFechaInvalida
	}
	return t.Format(LayoutFecha), nil
}

// ParseHora acepta HH:MM o HH:MM:SS y devuelve siempre HH:MM:SS.
func ParseHora(s string) (string, error) {
	s = strings.TrimSpace(s)
	layout := LayoutHora
	if len(s) == len("15:04") {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", ErrHoraInvalida
	}
	return t.Format(LayoutHora), nil
}

// ParseHoraOpcional trata nil y "" como ausencia de hora.
func ParseHoraOpcional(s *string) (*string, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	h, err := ParseHora(*s)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ParseFechaOpcional igual que ParseHoraOpcional, para columnas DATE que admiten NULL.
func ParseFechaOpcional(s *string) (*string, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	f, err := ParseFecha(*s)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
