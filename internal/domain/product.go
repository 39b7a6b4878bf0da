package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa um produto registrado no backend de estoque.
// É somente leitura para este cliente, exceto pela criação (via ProductForm).
type Product struct {
	ID              ProductID       `json:"id"`
	TipoProduto     TipoProduto     `json:"tipo_produto"`
	NomeProduto     string          `json:"nome_produto"`
	Medida          string          `json:"medida"`
	Revestimento    Revestimento    `json:"revestimento"`
	CorRevestimento CorRevestimento `json:"cor_revestimento"`
	Quantidade      int             `json:"quantidade"`
	Preco           decimal.Decimal `json:"preco"`
	Estado          Estado          `json:"estado"`
	Observacao      string          `json:"observacao"`
	ProdEntrada     Timestamp       `json:"prod_entrada"` // Definido pelo backend na criação
}

// ProductID é o identificador atribuído pelo backend.
// O backend pode enviá-lo como número ou como string; guardamos sempre o texto.
type ProductID string

// UnmarshalJSON aceita tanto `42` quanto `"42"`.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id de produto inválido: %s", data)
	}
	*id = ProductID(n.String())
	return nil
}

// ProductForm é o estado transitório do formulário (FormState):
// um Product sem ID e sem ProdEntrada.
type ProductForm struct {
	TipoProduto     TipoProduto     `json:"tipo_produto" validate:"required"`
	NomeProduto     string          `json:"nome_produto" validate:"required"`
	Medida          string          `json:"medida"`
	Revestimento    Revestimento    `json:"revestimento"`
	CorRevestimento CorRevestimento `json:"cor_revestimento"`
	Quantidade      int             `json:"quantidade" validate:"min=0"`
	Preco           decimal.Decimal `json:"preco" validate:"centavos"`
	Estado          Estado          `json:"estado" validate:"required"`
	Observacao      string          `json:"observacao"`
}

// MarshalJSON serializa o formulário com quantidade e preço como números JSON.
// decimal.Decimal, por padrão, seria serializado como string.
func (f ProductForm) MarshalJSON() ([]byte, error) {
	type alias ProductForm
	return json.Marshal(struct {
		alias
		Preco json.Number `json:"preco"`
	}{
		alias: alias(f),
		Preco: json.Number(f.Preco.String()),
	})
}

// Nomes dos campos do formulário, idênticos às chaves JSON do produto.
const (
	CampoTipoProduto     = "tipo_produto"
	CampoNomeProduto     = "nome_produto"
	CampoMedida          = "medida"
	CampoRevestimento    = "revestimento"
	CampoCorRevestimento = "cor_revestimento"
	CampoQuantidade      = "quantidade"
	CampoPreco           = "preco"
	CampoEstado          = "estado"
	CampoObservacao      = "observacao"
)

// CamposFormulario lista os campos do formulário na ordem em que aparecem na tela.
var CamposFormulario = []string{
	CampoTipoProduto,
	CampoNomeProduto,
	CampoMedida,
	CampoRevestimento,
	CampoCorRevestimento,
	CampoEstado,
	CampoQuantidade,
	CampoPreco,
	CampoObservacao,
}
