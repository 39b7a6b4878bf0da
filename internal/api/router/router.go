package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/secure"

	"luanova/internal/api/product"
	"luanova/internal/observability"
	"luanova/internal/pkg/cache"
	"luanova/internal/pkg/logger"
	"luanova/internal/pkg/middleware"
	"luanova/web"
)

// Params agrupa as dependências necessárias para montar o roteador.
type Params struct {
	Logger         logger.Logger
	ProductHandler *product.Handler
	Tokens         middleware.TokenService
	Metrics        *observability.Metrics

	// Cache alimenta o rate limiter de POST /produtos; nil desliga o limite.
	Cache           cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration

	Production bool
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(params Params) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(secureHeaders(params.Production, params.Logger))
	if params.Metrics != nil {
		r.Use(params.Metrics.Middleware)
	}

	// --- 2. Health check ---
	r.Get("/ping", PingHandler)

	// --- 3. Página de estoque ---
	r.Get("/", params.ProductHandler.PageHandler)
	r.Get("/produtos", params.ProductHandler.PageHandler)

	r.Group(func(r chi.Router) {
		if params.Cache != nil {
			r.Use(middleware.RateLimiter(params.Cache, params.RateLimitMax, params.RateLimitPeriod, params.Logger))
		}
		r.Use(middleware.NewCSRFMiddleware(params.Tokens, params.Logger))
		r.Post("/produtos", params.ProductHandler.CreateProductHandler)
	})

	// --- 4. Métricas e arquivos estáticos ---
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("Falha ao preparar arquivos estáticos", err)
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// secureHeaders aplica os cabeçalhos de segurança padrão. Em produção também
// redireciona para HTTPS.
func secureHeaders(production bool, log logger.Logger) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		SSLRedirect:           production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         !production,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sec.Process(w, r); err != nil {
				log.Warn("Requisição bloqueada pelos cabeçalhos de segurança", map[string]interface{}{"error": err.Error()})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// staticCacheHandler adiciona Cache-Control aos arquivos estáticos (1 hora).
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
