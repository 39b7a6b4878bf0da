package domain

// TipoProduto é a categoria do produto.
type TipoProduto string

const (
	TipoColchao   TipoProduto = "Colchão"
	TipoCabeceira TipoProduto = "Cabeceira"
	TipoBox       TipoProduto = "Box"
	TipoAvulso    TipoProduto = "Avulso"
)

// Revestimento é o material que reveste o produto. "Nulo" significa nenhum.
type Revestimento string

const (
	RevestimentoNulo   Revestimento = "Nulo"
	RevestimentoSuede  Revestimento = "Suede"
	RevestimentoCorino Revestimento = "Corino"
	RevestimentoLinhao Revestimento = "Linhão"
)

// CorRevestimento é a cor do revestimento. "Nulo" significa nenhuma.
type CorRevestimento string

const (
	CorNulo   CorRevestimento = "Nulo"
	CorBranco CorRevestimento = "Branco"
	CorBege   CorRevestimento = "Bege"
	CorMarrom CorRevestimento = "Marrom"
	CorPreto  CorRevestimento = "Preto"
	CorPalha  CorRevestimento = "Palha"
	CorOcre   CorRevestimento = "Ocre"
	CorCinza  CorRevestimento = "Cinza"
	CorCosmo  CorRevestimento = "Cosmo"
	CorRose   CorRevestimento = "Rosé"
)

// Estado é a condição física do produto.
type Estado string

const (
	EstadoNovo       Estado = "Novo"
	EstadoDefeito    Estado = "Defeito"
	EstadoMostruario Estado = "Mostruário"
)

// Listas de opções, na ordem exibida nos selects do formulário.
var (
	TiposProduto = []TipoProduto{TipoColchao, TipoCabeceira, TipoBox, TipoAvulso}

	Revestimentos = []Revestimento{RevestimentoNulo, RevestimentoSuede, RevestimentoCorino, RevestimentoLinhao}

	CoresRevestimento = []CorRevestimento{
		CorNulo, CorBranco, CorBege, CorMarrom, CorPreto,
		CorPalha, CorOcre, CorCinza, CorCosmo, CorRose,
	}

	Estados = []Estado{EstadoNovo, EstadoDefeito, EstadoMostruario}
)
