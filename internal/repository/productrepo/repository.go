package productrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"luanova/internal/domain"
	"luanova/internal/errors"
	"luanova/internal/observability"
	"luanova/internal/pkg/logger"
)

// produtosPath é o recurso de produtos na API externa (listagem e criação).
const produtosPath = "/api/produtos"

// ProductRepository acessa os produtos através da API REST do backend.
// Não há cache nem persistência local: toda leitura vai ao backend.
type ProductRepository struct {
	client  *resty.Client
	metrics *observability.Metrics
	log     logger.Logger
}

// NewProductRepository cria o repositório apontando para baseURL.
// timeout zero significa sem limite (o contexto da requisição ainda cancela a chamada).
func NewProductRepository(baseURL string, timeout time.Duration, metrics *observability.Metrics, log logger.Logger) *ProductRepository {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &ProductRepository{
		client:  client,
		metrics: metrics,
		log:     log,
	}
}

// FindAll busca a coleção completa de produtos (GET /api/produtos).
// Qualquer falha vira um BackendError com a mensagem "Erro ao carregar produtos".
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	start := time.Now()

	resp, err := r.client.R().
		SetContext(ctx).
		Get(produtosPath)

	// 1. Falha de transporte (conexão recusada, timeout, cancelamento)
	if err != nil {
		r.metrics.ObserveBackend("list", observability.OutcomeTransport, time.Since(start))
		return nil, errors.NewBackendError(errors.MsgErroCarregarProdutos, 0, err)
	}

	// 2. Status fora da faixa 2xx
	if !resp.IsSuccess() {
		r.metrics.ObserveBackend("list", observability.OutcomeHTTPError, time.Since(start))
		return nil, errors.NewBackendError(errors.MsgErroCarregarProdutos, resp.StatusCode(),
			fmt.Errorf("GET %s respondeu %d", produtosPath, resp.StatusCode()))
	}

	// 3. Corpo JSON
	var produtos []domain.Product
	if err := json.Unmarshal(resp.Body(), &produtos); err != nil {
		r.metrics.ObserveBackend("list", observability.OutcomeDecode, time.Since(start))
		return nil, errors.NewBackendError(errors.MsgErroCarregarProdutos, resp.StatusCode(), err)
	}
	if produtos == nil {
		produtos = []domain.Product{}
	}

	r.metrics.ObserveBackend("list", observability.OutcomeSuccess, time.Since(start))
	r.log.Debug("Produtos carregados do backend", map[string]interface{}{"total": len(produtos)})

	return produtos, nil
}

// Save envia o formulário como JSON (POST /api/produtos).
// O corpo da resposta de sucesso é ignorado: a lista é recarregada em seguida.
func (r *ProductRepository) Save(ctx context.Context, form domain.ProductForm) error {
	start := time.Now()

	body, err := json.Marshal(form)
	if err != nil {
		return errors.NewInternalError("falha ao serializar formulário", err)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(produtosPath)

	if err != nil {
		r.metrics.ObserveBackend("create", observability.OutcomeTransport, time.Since(start))
		return errors.NewBackendError(errors.MsgErroRegistrarProduto, 0, err)
	}

	if !resp.IsSuccess() {
		r.metrics.ObserveBackend("create", observability.OutcomeHTTPError, time.Since(start))
		return errors.NewBackendError(errors.MsgErroRegistrarProduto, resp.StatusCode(),
			fmt.Errorf("POST %s respondeu %d: %s", produtosPath, resp.StatusCode(), truncate(resp.String(), 200)))
	}

	r.metrics.ObserveBackend("create", observability.OutcomeSuccess, time.Since(start))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
