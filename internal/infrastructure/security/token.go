package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims são as informações carregadas no token de acesso
type Claims struct {
	Email      string   `json:"email,omitempty"`
	Permissoes []string `json:"permissoes"`
	jwt.RegisteredClaims
}

// HasPermission verifica se o token concede a permissão
func (c *Claims) HasPermission(p entities.Permissao) bool {
	name := p.String()
	for _, perm := range c.Permissoes {
		if perm == name {
			return true
		}
	}
	return false
}

// Token é o resultado de uma emissão
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenManager emite e valida tokens HS256
type TokenManager struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenManager cria um TokenManager com o segredo e a validade informados
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
		issuer: "pessoas-backend",
		now:    time.Now,
	}
}

// Issue emite um token para o usuário com as suas permissões
func (m *TokenManager) Issue(usuario *entities.Usuario) (Token, error) {
	issuedAt := m.now().UTC()
	expiresAt := issuedAt.Add(m.expiry)

	perms := usuario.Permissoes()
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = p.String()
	}

	claims := Claims{
		Email:      usuario.Email,
		Permissoes: names,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}

	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Parse valida assinatura, emissor e expiração do token
func (m *TokenManager) Parse(value string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
