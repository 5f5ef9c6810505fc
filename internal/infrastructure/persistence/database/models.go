package database

import "time"

// PessoaModel é o model GORM para pessoas
type PessoaModel struct {
	ID              string    `gorm:"type:varchar(36);primaryKey"`
	Nome            string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255)"`
	DataNascimento  time.Time `gorm:"not null"`
	Cpf             string    `gorm:"type:varchar(11);uniqueIndex;not null"`
	Endereco        string    `gorm:"type:varchar(255)"`
	Sexo            *int
	Nacionalidade   *int
	Naturalidade    string    `gorm:"type:varchar(255)"`
	DataCadastro    time.Time `gorm:"not null;index"`
	DataAtualizacao *time.Time
}

func (PessoaModel) TableName() string {
	return "pessoas"
}

// UsuarioModel é o model GORM para usuários
type UsuarioModel struct {
	ID        string                  `gorm:"type:varchar(36);primaryKey"`
	Email     *string                 `gorm:"type:varchar(255);uniqueIndex"` // NULL quando vazio, o índice único ignora NULLs
	SenhaHash string                  `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time               `gorm:"autoCreateTime"`
	Vinculos  []UsuarioPermissaoModel `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

// UsuarioPermissaoModel vincula um usuário a uma permissão (chave composta)
type UsuarioPermissaoModel struct {
	UsuarioID string `gorm:"type:varchar(36);primaryKey"`
	Permissao int    `gorm:"primaryKey;autoIncrement:false"`
}

func (UsuarioPermissaoModel) TableName() string {
	return "usuarios_permissoes"
}
