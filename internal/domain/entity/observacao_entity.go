package entity

import "time"

// Observacao is a free-text note owned by exactly one Usuario.
type Observacao struct {
	ID          string
	Texto       string
	Data        time.Time
	Complemento *string
	UsuarioID   string
	CriadoPor   *string
}
