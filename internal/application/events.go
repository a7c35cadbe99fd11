package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/usuarios-api/pkg/helpers"
	"github.com/oksasatya/usuarios-api/pkg/metrics"
)

// Lifecycle event types published after successful writes.
const (
	EventUsuarioCriado      = "usuario.criado"
	EventUsuarioAtualizado  = "usuario.atualizado"
	EventUsuarioRemovido    = "usuario.removido"
	EventObservacaoCriada   = "observacao.criada"
	EventObservacaoRemovida = "observacao.removida"
)

// EventPublisher is implemented by helpers.EventPublisher (RabbitMQ).
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

type UsuarioEvent struct {
	ID   string `json:"id"`
	CPF  string `json:"cpf"`
	Nome string `json:"nome"`
}

type ObservacaoEvent struct {
	ID        string `json:"id"`
	UsuarioID string `json:"usuarioId"`
	CriadoPor string `json:"criadoPor,omitempty"`
}

// publish never fails the caller: the write already happened.
func publish(ctx context.Context, pub EventPublisher, logger *logrus.Logger, eventType string, payload any) {
	if pub == nil {
		return
	}
	err := pub.Publish(ctx, eventType, payload)
	metrics.ObserveEvent(eventType, err)
	if err != nil {
		helpers.LogWarn(logger, "event publish failed", err, logrus.Fields{"event": eventType})
	}
}
