package services

import (
	"context"
	"strings"

	"github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/domain/ports"
	"github.com/rafabene/pessoas-backend/internal/domain/repositories"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/security"
)

// AuthService autentica usuários e emite tokens de acesso
type AuthService struct {
	usuarios repositories.UsuarioRepository
	tokens   *security.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	usuarios repositories.UsuarioRepository,
	tokens *security.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		usuarios: usuarios,
		tokens:   tokens,
		logger:   logger,
	}
}

// Authenticate confere email e senha. Qualquer divergência retorna ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, senha string) (security.Token, error) {
	email = strings.TrimSpace(email)
	if email == "" || senha == "" {
		return security.Token{}, errors.ErrInvalidCredentials
	}

	usuario, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil {
		return security.Token{}, err
	}
	if usuario == nil || !security.CheckPassword(usuario.SenhaHash, senha) {
		s.logger.Warn("login failed", "email", email)
		return security.Token{}, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(usuario)
	if err != nil {
		return security.Token{}, err
	}

	s.logger.Info("login succeeded", "usuario_id", usuario.ID)
	return token, nil
}

// ParseToken valida o token recebido no cookie ou no header Authorization
func (s *AuthService) ParseToken(value string) (*security.Claims, error) {
	if value == "" {
		return nil, errors.ErrUnauthorized
	}

	claims, err := s.tokens.Parse(value)
	if err != nil {
		s.logger.Debug("invalid token", "error", err)
		return nil, errors.ErrUnauthorized
	}

	return claims, nil
}
