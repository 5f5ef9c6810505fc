package entities

import "strconv"

// Sexo é uma categoria opcional de Pessoa
type Sexo int

const (
	SexoMasculino Sexo = 1
	SexoFeminino  Sexo = 2
)

var sexoNames = map[Sexo]string{
	SexoMasculino: "Masculino",
	SexoFeminino:  "Feminino",
}

// String retorna o nome da categoria; valores desconhecidos viram o próprio número
func (s Sexo) String() string {
	if name, ok := sexoNames[s]; ok {
		return name
	}
	return strconv.Itoa(int(s))
}

// Nacionalidade é uma categoria opcional de Pessoa
type Nacionalidade int

const (
	NacionalidadeBrasileira  Nacionalidade = 1
	NacionalidadeEstrangeira Nacionalidade = 2
)

var nacionalidadeNames = map[Nacionalidade]string{
	NacionalidadeBrasileira:  "Brasileira",
	NacionalidadeEstrangeira: "Estrangeira",
}

func (n Nacionalidade) String() string {
	if name, ok := nacionalidadeNames[n]; ok {
		return name
	}
	return strconv.Itoa(int(n))
}

// SexoLabel formata um Sexo opcional; nulo e zero viram string vazia
func SexoLabel(s *Sexo) string {
	if s == nil || *s == 0 {
		return ""
	}
	return s.String()
}

// NacionalidadeLabel formata uma Nacionalidade opcional; nulo e zero viram string vazia
func NacionalidadeLabel(n *Nacionalidade) string {
	if n == nil || *n == 0 {
		return ""
	}
	return n.String()
}
