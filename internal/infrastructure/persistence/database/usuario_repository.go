package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	"github.com/rafabene/pessoas-backend/internal/domain/repositories"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := toUsuarioModel(usuario)
	return conn(ctx, r.db).Create(model).Error
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (*entities.Usuario, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	return r.findOne(ctx, "email = ?", email)
}

// Delete remove o usuário e todos os seus vínculos de permissão
func (r *UsuarioRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", id).Delete(&UsuarioPermissaoModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&UsuarioModel{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})

	return deleted, err
}

func (r *UsuarioRepository) findOne(ctx context.Context, query string, arg any) (*entities.Usuario, error) {
	var model UsuarioModel

	err := conn(ctx, r.db).Preload("Vinculos").Where(query, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toUsuarioEntity(&model), nil
}

func toUsuarioModel(u *entities.Usuario) *UsuarioModel {
	model := &UsuarioModel{
		ID:        u.ID,
		Email:     nullableString(u.Email),
		SenhaHash: u.SenhaHash,
		CreatedAt: u.CreatedAt,
	}
	for _, v := range u.Vinculos {
		model.Vinculos = append(model.Vinculos, UsuarioPermissaoModel{
			UsuarioID: u.ID,
			Permissao: int(v.Permissao),
		})
	}
	return model
}

func toUsuarioEntity(model *UsuarioModel) *entities.Usuario {
	u := &entities.Usuario{
		ID:        model.ID,
		SenhaHash: model.SenhaHash,
		CreatedAt: model.CreatedAt.UTC(),
	}
	if model.Email != nil {
		u.Email = *model.Email
	}
	for _, v := range model.Vinculos {
		u.Vinculos = append(u.Vinculos, entities.UsuarioPermissao{
			UsuarioID: v.UsuarioID,
			Permissao: entities.Permissao(v.Permissao),
		})
	}
	return u
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
