package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"luanova/internal/pkg/cache"
	"luanova/internal/pkg/logger"
)

// RateLimiter limita o número de requisições por IP dentro de uma janela fixa,
// usando um contador no cache que expira ao fim da janela. Se o cache estiver
// indisponível a requisição segue normalmente e a falha é registrada no log.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)

			count, err := client.IncrWindow(r.Context(), key, window)
			if err != nil {
				log.Warn("Rate limiter sem cache, requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				log.Info("Limite de requisições excedido", map[string]interface{}{"key": key, "path": r.URL.Path})
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				http.Error(w, "Muitas requisições. Tente novamente em instantes.", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extrai o IP de r.RemoteAddr, que pode ou não trazer a porta
// (o middleware RealIP grava apenas o IP).
func clientIP(r *http.Request) string {
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
