package product

import (
	"fmt"
	"net/http"
	"time"

	apperror "luanova/internal/errors"
	"luanova/internal/pkg/logger"
	"luanova/internal/pkg/middleware"
	"luanova/internal/service/productservice"
	"luanova/internal/view"
)

const (
	pageTemplate = "pages/estoque.html"
	pageTitle    = "Lua Nova Estoque"
)

// Handler agrupa os handlers da página de estoque.
// Cada requisição cria a sua própria Page; nada é compartilhado entre requisições.
type Handler struct {
	Repo      productservice.ProductRepository
	Templates *view.Engine
	Tokens    middleware.TokenService
	Logger    logger.Logger

	SecureCookie bool          // Cookie CSRF só via HTTPS (produção)
	CSRFTTL      time.Duration // Validade do cookie CSRF
}

// NewHandler cria uma nova instância do Handler, injetando as dependências.
func NewHandler(repo productservice.ProductRepository, tpl *view.Engine, tokens middleware.TokenService, log logger.Logger, secureCookie bool, csrfTTL time.Duration) *Handler {
	return &Handler{
		Repo:         repo,
		Templates:    tpl,
		Tokens:       tokens,
		Logger:       log,
		SecureCookie: secureCookie,
		CSRFTTL:      csrfTTL,
	}
}

// --- Handlers ---

// PageHandler lida com GET / e GET /produtos: monta a página e carrega a lista.
func (h *Handler) PageHandler(w http.ResponseWriter, r *http.Request) {
	page := productservice.NewPage(h.Repo, h.Logger)
	page.Mount(r.Context())

	h.render(w, r, page.List.State().Err, page, nil, nil)
}

// CreateProductHandler lida com POST /produtos.
// Os campos são aplicados um a um, as restrições do formulário são conferidas
// e só então o produto é enviado ao backend.
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.Logger.Warn("Formulário ilegível", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
		http.Error(w, "Formulário inválido", http.StatusBadRequest)
		return
	}

	page := productservice.NewPage(h.Repo, h.Logger)

	fieldErrs := page.Form.Bind(r.PostForm.Get)
	if len(fieldErrs) > 0 {
		// Nenhuma requisição de criação: o navegador também não enviaria.
		page.List.Load(ctx)

		// Campos recusados voltam para a tela como foram digitados.
		raw := make(map[string]string, len(fieldErrs))
		for name := range fieldErrs {
			raw[name] = r.PostForm.Get(name)
		}
		h.render(w, r, fieldErrs.Err(), page, fieldErrs, raw)
		return
	}

	err := page.Form.Submit(ctx)
	if err == nil {
		err = page.List.State().Err
	}
	h.render(w, r, err, page, nil, nil)
}

// --- Funções Auxiliares ---

// render escolhe o status a partir do erro (nil = 200), emite o token CSRF e
// renderiza a página inteira.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, err error, page *productservice.Page, fieldErrs productservice.FieldErrors, raw map[string]string) {
	status, category, _ := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else if status >= 400 {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	csrfToken, tokenErr := middleware.IssueCSRFToken(w, r, h.Tokens, h.SecureCookie, h.CSRFTTL)
	if tokenErr != nil {
		h.Logger.Error("Falha ao emitir token CSRF", apperror.NewInternalError("csrf", tokenErr))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	list := page.List.State()
	data := view.NewEstoqueData(page.Form.State(), fieldErrs, list.Loading(), list.Message(), list.Products)
	for name, value := range raw {
		data.Form[name] = value
	}

	tplErr := h.Templates.Render(w, status, pageTemplate, view.TemplateData{
		Title:       pageTitle,
		CSRFToken:   csrfToken,
		CurrentPath: r.URL.Path,
		Data:        data,
	})
	if tplErr != nil {
		h.Logger.Error("Falha ao renderizar página", apperror.NewInternalError("template", tplErr))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
