package messaging

import (
	"context"
	"errors"

	"github.com/rafabene/pessoas-backend/internal/domain/ports"
)

// Fanout entrega cada evento a todos os publicadores, mesmo se algum falhar
type Fanout []ports.EventPublisher

// Publish junta os erros de todos os publicadores
func (f Fanout) Publish(ctx context.Context, event ports.PessoaEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
