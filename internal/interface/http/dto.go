package handlers

import (
	"time"

	"github.com/oksasatya/usuarios-api/internal/domain/entity"
)

type usuarioResponse struct {
	ID          string    `json:"_id"`
	Nome        string    `json:"nome"`
	CPF         string    `json:"cpf"`
	Observacoes []string  `json:"observacoes"`
	Relatorio   string    `json:"relatorio"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type observacaoResponse struct {
	ID          string    `json:"_id"`
	Texto       string    `json:"texto"`
	Data        time.Time `json:"data"`
	Complemento *string   `json:"complemento,omitempty"`
	UsuarioID   string    `json:"usuarioId"`
	CriadoPor   *string   `json:"criadoPor,omitempty"`
}

func toUsuarioResponse(u *entity.Usuario) usuarioResponse {
	obs := u.Observacoes
	if obs == nil {
		obs = []string{}
	}
	return usuarioResponse{
		ID:          u.ID,
		Nome:        u.Nome,
		CPF:         u.CPF,
		Observacoes: obs,
		Relatorio:   u.Relatorio,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUsuarioList(list []entity.Usuario) []usuarioResponse {
	out := make([]usuarioResponse, 0, len(list))
	for i := range list {
		out = append(out, toUsuarioResponse(&list[i]))
	}
	return out
}

func toObservacaoResponse(o *entity.Observacao) observacaoResponse {
	return observacaoResponse{
		ID:          o.ID,
		Texto:       o.Texto,
		Data:        o.Data,
		Complemento: o.Complemento,
		UsuarioID:   o.UsuarioID,
		CriadoPor:   o.CriadoPor,
	}
}

func toObservacaoList(list []entity.Observacao) []observacaoResponse {
	out := make([]observacaoResponse, 0, len(list))
	for i := range list {
		out = append(out, toObservacaoResponse(&list[i]))
	}
	return out
}
