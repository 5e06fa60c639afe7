package model

import "encoding/json"

// Field es un valor opcional dentro de un PATCH JSON.
// Set indica que la clave vino en el cuerpo; Value nil con Set=true es un null explícito.
type Field[T any] struct {
	Set   bool
	Value *T
}

// Some construye un Field presente con valor.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null construye un Field presente con null explícito.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// IsNull indica que el campo vino presente pero sin valor.
func (f Field[T]) IsNull() bool {
	return f.Set && f.Value == nil
}

// apply copia el valor a un campo NOT NULL; un null explícito se ignora.
func (f Field[T]) apply(dst *T) bool {
	if !f.Set || f.Value == nil {
		return false
	}
	*dst = *f.Value
	return true
}

// applyNullable copia el valor (o null) a un campo que admite NULL.
func (f Field[T]) applyNullable(dst **T) bool {
	if !f.Set {
		return false
	}
	if f.Value == nil {
		*dst = nil
		return true
	}
	v := *f.Value
	*dst = &v
	return true
}
