package entity

import (
	"time"
)

// Usuario is the aggregate root, identified externally by its CPF.
//
// Observacoes holds the ids of owned notes in creation order.
type Usuario struct {
	ID          string
	Nome        string
	CPF         string
	Observacoes []string
	Relatorio   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UsuarioPatch lists the fields changed by a general update; nil means keep.
type UsuarioPatch struct {
	Nome *string
	CPF  *string
}

func (p UsuarioPatch) Empty() bool {
	return p.Nome == nil && p.CPF == nil
}
