package productservice

import (
	"context"

	"luanova/internal/domain"
	"luanova/internal/pkg/logger"
)

// ProductRepository define o contrato (interface) que este Serviço espera
// da camada de acesso ao backend.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, form domain.ProductForm) error
}

// Page é a unidade de montagem da tela: um formulário e uma lista, ligados entre si.
// Cada requisição HTTP cria a sua própria Page; nada é compartilhado entre elas.
type Page struct {
	Form *FormController
	List *ListView
}

// NewPage cria uma Page com formulário vazio e lista em estado de carregamento.
func NewPage(repo ProductRepository, log logger.Logger) *Page {
	list := NewListView(repo, log)
	return &Page{
		Form: NewFormController(repo, list, log),
		List: list,
	}
}

// Mount executa o carregamento inicial da lista.
func (p *Page) Mount(ctx context.Context) {
	p.List.Load(ctx)
}
