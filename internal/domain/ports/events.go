package ports

import (
	"context"
	"time"
)

// PessoaEventType identifica o tipo de alteração ocorrida
type PessoaEventType string

const (
	PessoaCriada     PessoaEventType = "pessoa.criada"
	PessoaAtualizada PessoaEventType = "pessoa.atualizada"
	PessoaRemovida   PessoaEventType = "pessoa.removida"
)

// PessoaEvent é emitido após cada escrita bem-sucedida
type PessoaEvent struct {
	Type     PessoaEventType `json:"type"`
	PessoaID string          `json:"pessoaId"`
	Nome     string          `json:"nome,omitempty"`
	At       time.Time       `json:"at"`
}

// EventPublisher publica eventos de pessoa para os interessados
type EventPublisher interface {
	Publish(ctx context.Context, event PessoaEvent) error
}
