package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // Fusos embutidos para imagens sem /usr/share/zoneinfo

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"luanova/config"
	"luanova/internal/observability"
	"luanova/internal/pkg/cache"
	"luanova/internal/pkg/logger"
	"luanova/internal/pkg/token"
	"luanova/internal/view"

	// Camadas do Produto para Injeção de Dependências
	"luanova/internal/api/product"            // Handlers
	"luanova/internal/api/router"             // Roteador central
	"luanova/internal/repository/productrepo" // Cliente da API de produtos
)

func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	appLog.Info("Configurações carregadas.", map[string]interface{}{
		"env":         cfg.Environment,
		"backend_url": cfg.BackendURL,
	})

	loc, err := cfg.Location()
	if err != nil {
		appLog.Fatal("Fuso horário inválido.", err)
	}

	// 2. Infraestrutura

	// A. Cache (Redis) para o rate limiting do formulário
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		defer redisClient.Close()
		if err := redisClient.Ping(context.Background()); err != nil {
			// O limiter deixa passar enquanto o Redis estiver fora.
			appLog.Warn("Redis indisponível; rate limiting inativo até a conexão voltar.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			appLog.Info("Conexão Redis estabelecida.", nil)
		}
		cacheClient = redisClient
	}

	// B. Métricas
	metrics := observability.NewMetrics()

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Handler (a Page é criada por requisição)

	productRepo := productrepo.NewProductRepository(cfg.BackendURL, cfg.BackendTimeout, metrics, appLog)
	appLog.Debug("Cliente da API de produtos inicializado.", nil)

	tokenSvc := token.NewService(cfg.CSRFSecretKey, cfg.CSRFTokenExpiry)
	appLog.Debug("Serviço de tokens CSRF inicializado.", nil)

	templates, err := view.NewEngine(loc)
	if err != nil {
		appLog.Fatal("Falha ao carregar templates.", err)
	}

	productHandler := product.NewHandler(productRepo, templates, tokenSvc, appLog, cfg.IsProduction(), cfg.CSRFTokenExpiry)
	appLog.Debug("Handler de Produto inicializado.", nil)

	// 4. Roteador e Servidor
	r := router.NewRouter(router.Params{
		Logger:          appLog,
		ProductHandler:  productHandler,
		Tokens:          tokenSvc,
		Metrics:         metrics,
		Cache:           cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		Production:      cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor Lua Nova Estoque ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
