package view

import (
	"strconv"

	"luanova/internal/domain"
)

// EstoqueData alimenta a página de estoque (formulário e lista).
type EstoqueData struct {
	Form   map[string]string // Valor exibido em cada input, pelo nome do campo
	Errors map[string]string

	Loading  bool
	Erro     string
	Produtos []domain.Product

	Tipos         []string
	Revestimentos []string
	Cores         []string
	Estados       []string
}

// NewEstoqueData prepara os dados da página a partir do estado do formulário
// e do estado da lista.
func NewEstoqueData(form domain.ProductForm, errs map[string]string, loading bool, erro string, produtos []domain.Product) EstoqueData {
	if errs == nil {
		errs = map[string]string{}
	}
	return EstoqueData{
		Form:          FormValues(form),
		Errors:        errs,
		Loading:       loading,
		Erro:          erro,
		Produtos:      produtos,
		Tipos:         toStrings(domain.TiposProduto),
		Revestimentos: toStrings(domain.Revestimentos),
		Cores:         toStrings(domain.CoresRevestimento),
		Estados:       toStrings(domain.Estados),
	}
}

// FormValues converte o estado do formulário no texto de cada input.
func FormValues(f domain.ProductForm) map[string]string {
	return map[string]string{
		domain.CampoTipoProduto:     string(f.TipoProduto),
		domain.CampoNomeProduto:     f.NomeProduto,
		domain.CampoMedida:          f.Medida,
		domain.CampoRevestimento:    string(f.Revestimento),
		domain.CampoCorRevestimento: string(f.CorRevestimento),
		domain.CampoEstado:          string(f.Estado),
		domain.CampoQuantidade:      strconv.Itoa(f.Quantidade),
		domain.CampoPreco:           f.Preco.String(),
		domain.CampoObservacao:      f.Observacao,
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
