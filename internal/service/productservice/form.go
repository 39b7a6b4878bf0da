package productservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"luanova/internal/domain"
	apperror "luanova/internal/errors"
	"luanova/internal/pkg/logger"
)

// FormController é dono do estado do formulário (FormState) e do envio.
type FormController struct {
	repo  ProductRepository
	list  *ListView
	log   logger.Logger
	state domain.ProductForm
}

// NewFormController cria o controlador com o formulário vazio.
// list recebe os erros de envio e é recarregada após um envio bem-sucedido.
func NewFormController(repo ProductRepository, list *ListView, log logger.Logger) *FormController {
	return &FormController{repo: repo, list: list, log: log}
}

// State devolve o estado atual do formulário.
func (f *FormController) State() domain.ProductForm {
	return f.state
}

// Reset volta o formulário ao valor inicial vazio.
func (f *FormController) Reset() {
	f.state = domain.ProductForm{}
}

// UpdateField grava um único campo no estado do formulário.
// Campos numéricos recusam texto que um input type=number também recusaria;
// nesse caso o estado não muda.
func (f *FormController) UpdateField(name, value string) error {
	switch name {
	case domain.CampoTipoProduto:
		f.state.TipoProduto = domain.TipoProduto(value)
	case domain.CampoNomeProduto:
		f.state.NomeProduto = value
	case domain.CampoMedida:
		f.state.Medida = value
	case domain.CampoRevestimento:
		f.state.Revestimento = domain.Revestimento(value)
	case domain.CampoCorRevestimento:
		f.state.CorRevestimento = domain.CorRevestimento(value)
	case domain.CampoEstado:
		f.state.Estado = domain.Estado(value)
	case domain.CampoObservacao:
		f.state.Observacao = value
	case domain.CampoQuantidade:
		q, err := parseQuantidade(value)
		if err != nil {
			return err
		}
		f.state.Quantidade = q
	case domain.CampoPreco:
		p, err := parsePreco(value)
		if err != nil {
			return err
		}
		f.state.Preco = p
	default:
		return apperror.NewFieldError(name, fmt.Sprintf("campo desconhecido: %s", name))
	}
	return nil
}

// Submit envia o formulário ao backend (uma única requisição de criação).
// Falha: a mensagem vai para a área de erro da lista e o formulário fica intacto.
// Sucesso: a lista é recarregada e só então o formulário é limpo.
func (f *FormController) Submit(ctx context.Context) error {
	if err := f.repo.Save(ctx, f.state); err != nil {
		f.log.Error("Falha ao registrar produto", err)
		displayErr := asDisplayError(err, apperror.MsgErroRegistrarProduto)
		f.list.fail(displayErr)
		return displayErr
	}

	f.log.Info("Produto registrado", map[string]interface{}{
		"tipo_produto": string(f.state.TipoProduto),
		"nome_produto": f.state.NomeProduto,
	})

	f.list.Load(ctx)
	f.Reset()
	return nil
}

// Bind aplica os valores enviados pelo navegador campo a campo e confere as
// restrições do formulário. get devolve "" para campos ausentes.
func (f *FormController) Bind(get func(name string) string) FieldErrors {
	errs := FieldErrors{}
	for _, name := range domain.CamposFormulario {
		if err := f.UpdateField(name, get(name)); err != nil {
			errs.add(name, err)
		}
	}
	for name, msg := range f.Validate() {
		if _, exists := errs[name]; !exists {
			errs[name] = msg
		}
	}
	return errs
}

func parseQuantidade(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, apperror.NewFieldError(domain.CampoQuantidade, msgObrigatorio)
	}
	// Mesma leitura de um input type="number": "1e2" e "100.0" valem 100.
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, apperror.NewFieldError(domain.CampoQuantidade, msgNumero)
	}
	if !d.IsInteger() {
		return 0, apperror.NewFieldError(domain.CampoQuantidade, msgInteiro)
	}
	if !d.BigInt().IsInt64() {
		return 0, apperror.NewFieldError(domain.CampoQuantidade, msgNumero)
	}
	return int(d.IntPart()), nil
}

func parsePreco(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, apperror.NewFieldError(domain.CampoPreco, msgObrigatorio)
	}
	p, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, apperror.NewFieldError(domain.CampoPreco, msgNumero)
	}
	return p, nil
}
