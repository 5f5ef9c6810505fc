package dto

// LoginRequest são as credenciais do login
type LoginRequest struct {
	Email string `json:"email" binding:"required" example:"admin@pessoas.com"`
	Senha string `json:"senha" binding:"required" example:"admin123"`
}
