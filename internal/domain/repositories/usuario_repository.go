package repositories

import (
	"context"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários e seus vínculos de permissão
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entities.Usuario) error
	FindByID(ctx context.Context, id string) (*entities.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	Delete(ctx context.Context, id string) (bool, error)
}
