package entities

import "strconv"

// Permissao representa uma permissão específica concedida a um usuário
type Permissao int

const (
	PermissaoVisualizarPessoa Permissao = 1
	PermissaoAdicionarPessoa  Permissao = 2
	PermissaoEditarPessoa     Permissao = 3
	PermissaoRemoverPessoa    Permissao = 4
)

var permissaoNames = map[Permissao]string{
	PermissaoVisualizarPessoa: "Visualizar_Pessoa",
	PermissaoAdicionarPessoa:  "Adicionar_Pessoa",
	PermissaoEditarPessoa:     "Editar_Pessoa",
	PermissaoRemoverPessoa:    "Remover_Pessoa",
}

// AllPermissoes lista todas as permissões conhecidas
func AllPermissoes() []Permissao {
	return []Permissao{
		PermissaoVisualizarPessoa,
		PermissaoAdicionarPessoa,
		PermissaoEditarPessoa,
		PermissaoRemoverPessoa,
	}
}

func (p Permissao) String() string {
	if name, ok := permissaoNames[p]; ok {
		return name
	}
	return strconv.Itoa(int(p))
}

// ParsePermissao converte o nome de uma permissão (como gravado no token)
func ParsePermissao(name string) (Permissao, bool) {
	for p, n := range permissaoNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// UsuarioPermissao vincula um usuário a uma permissão.
// A chave é composta (UsuarioID, Permissao) e o vínculo pertence ao Usuario.
type UsuarioPermissao struct {
	UsuarioID string
	Permissao Permissao
}
