package productservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luanova/internal/domain"
	"luanova/internal/service/productservice"
)

func formValues(overrides map[string]string) func(string) string {
	values := map[string]string{
		domain.CampoTipoProduto:     string(domain.TipoColchao),
		domain.CampoNomeProduto:     "Colchão Solteiro",
		domain.CampoMedida:          "0,88 x 1,88",
		domain.CampoRevestimento:    string(domain.RevestimentoSuede),
		domain.CampoCorRevestimento: string(domain.CorBege),
		domain.CampoEstado:          string(domain.EstadoNovo),
		domain.CampoQuantidade:      "4",
		domain.CampoPreco:           "1234.50",
		domain.CampoObservacao:      "",
	}
	for k, v := range overrides {
		values[k] = v
	}
	return func(name string) string { return values[name] }
}

func TestValidate_EmptyFormRequiresSelectsAndName(t *testing.T) {
	page := productservice.NewPage(new(MockProductRepository), newTestLogger())

	errs := page.Form.Validate()

	assert.Equal(t, "Preencha este campo.", errs[domain.CampoTipoProduto])
	assert.Equal(t, "Preencha este campo.", errs[domain.CampoNomeProduto])
	assert.Equal(t, "Preencha este campo.", errs[domain.CampoEstado])
	assert.NotContains(t, errs, domain.CampoMedida)
	assert.NotContains(t, errs, domain.CampoObservacao)
	assert.Error(t, errs.Err())
}

func TestBind_ValidForm(t *testing.T) {
	page := productservice.NewPage(new(MockProductRepository), newTestLogger())

	errs := page.Form.Bind(formValues(nil))

	assert.Empty(t, errs)
	assert.NoError(t, errs.Err())
	assert.Equal(t, "Colchão Solteiro", page.Form.State().NomeProduto)
	assert.Equal(t, 4, page.Form.State().Quantidade)
	assert.Equal(t, "1234.5", page.Form.State().Preco.String())
}

func TestBind_Rules(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		field     string
		msg       string
	}{
		{"nome vazio", map[string]string{domain.CampoNomeProduto: ""}, domain.CampoNomeProduto, "Preencha este campo."},
		{"estado não selecionado", map[string]string{domain.CampoEstado: ""}, domain.CampoEstado, "Preencha este campo."},
		{"quantidade negativa", map[string]string{domain.CampoQuantidade: "-1"}, domain.CampoQuantidade, "O valor deve ser maior ou igual a 0."},
		{"quantidade fracionada", map[string]string{domain.CampoQuantidade: "1.5"}, domain.CampoQuantidade, "Insira um número inteiro."},
		{"quantidade vazia", map[string]string{domain.CampoQuantidade: ""}, domain.CampoQuantidade, "Preencha este campo."},
		{"preço com três casas", map[string]string{domain.CampoPreco: "10.505"}, domain.CampoPreco, "Insira um valor com no máximo duas casas decimais."},
		{"preço não numérico", map[string]string{domain.CampoPreco: "dez"}, domain.CampoPreco, "Insira um número."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := productservice.NewPage(new(MockProductRepository), newTestLogger())

			errs := page.Form.Bind(formValues(tt.overrides))

			require.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestBind_NegativePriceAccepted(t *testing.T) {
	page := productservice.NewPage(new(MockProductRepository), newTestLogger())

	errs := page.Form.Bind(formValues(map[string]string{domain.CampoPreco: "-5.00"}))

	assert.Empty(t, errs)
	assert.Equal(t, "-5", page.Form.State().Preco.String())
}

func TestBind_ValueOutsideOptionsAccepted(t *testing.T) {
	page := productservice.NewPage(new(MockProductRepository), newTestLogger())

	errs := page.Form.Bind(formValues(map[string]string{domain.CampoTipoProduto: "Travesseiro"}))

	assert.Empty(t, errs)
	assert.Equal(t, domain.TipoProduto("Travesseiro"), page.Form.State().TipoProduto)
}
