package productservice

import (
	"context"
	"errors"

	"luanova/internal/domain"
	apperror "luanova/internal/errors"
	"luanova/internal/pkg/logger"
)

// ListStatus é o estado observável da lista de produtos.
type ListStatus int

const (
	StatusLoading ListStatus = iota // Estado inicial, até a primeira resposta
	StatusLoaded
	StatusError
)

func (s ListStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ListState é uma cópia imutável do estado da lista, usada na renderização.
type ListState struct {
	Status   ListStatus
	Products []domain.Product
	Err      error
}

// Loading indica se a lista ainda não recebeu resposta.
func (s ListState) Loading() bool { return s.Status == StatusLoading }

// Message é o texto da área de erro, exibido exatamente como está.
func (s ListState) Message() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// ListView carrega e guarda a coleção de produtos.
// Transições: loading -> loaded | loading -> error; volta a loading só em novo Load.
type ListView struct {
	repo ProductRepository
	log  logger.Logger

	status   ListStatus
	products []domain.Product
	err      error
}

// NewListView cria a lista no estado inicial (loading).
func NewListView(repo ProductRepository, log logger.Logger) *ListView {
	return &ListView{repo: repo, log: log, status: StatusLoading}
}

// Load busca a coleção completa no backend.
// Sucesso substitui a lista e limpa erro anterior; falha guarda o erro.
func (l *ListView) Load(ctx context.Context) {
	l.status = StatusLoading

	products, err := l.repo.FindAll(ctx)
	if err != nil {
		l.log.Error("Falha ao carregar produtos", err)
		l.fail(asDisplayError(err, apperror.MsgErroCarregarProdutos))
		return
	}

	l.status = StatusLoaded
	l.products = products
	l.err = nil
}

// fail coloca o erro na área de erro da lista (compartilhada com o formulário).
func (l *ListView) fail(err error) {
	l.status = StatusError
	l.err = err
}

// State devolve uma cópia do estado atual.
func (l *ListView) State() ListState {
	products := make([]domain.Product, len(l.products))
	copy(products, l.products)
	return ListState{Status: l.status, Products: products, Err: l.err}
}

// asDisplayError garante que a área de erro só mostre uma das duas mensagens
// de backend. Qualquer outro erro é encapsulado com a mensagem padrão.
func asDisplayError(err error, fallback string) error {
	var backendErr *apperror.BackendError
	if errors.As(err, &backendErr) {
		return backendErr
	}
	return apperror.NewBackendError(fallback, 0, err)
}
