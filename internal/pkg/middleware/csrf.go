package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"luanova/internal/pkg/logger"
	"luanova/internal/pkg/token"
)

const (
	// CSRFCookieName guarda o nonce do navegador (double-submit cookie).
	CSRFCookieName = "luanova_csrf"
	// CSRFFormField é o campo oculto do formulário que carrega o token assinado.
	CSRFFormField = "csrf_token"
	// CSRFHeader é a alternativa ao campo de formulário para clientes não-HTML.
	CSRFHeader = "X-CSRF-Token"
)

// TokenService define o contrato de emissão e validação necessário para o middleware.
type TokenService interface {
	GenerateToken(nonce string) (string, error)
	ValidateToken(tokenString string) (*token.CSRFClaims, error)
}

// ContextKey identifica valores anexados ao contexto por este pacote.
type ContextKey int

const (
	csrfTokenKey ContextKey = iota
)

// IssueCSRFToken garante o cookie com o nonce e devolve um token assinado para
// ser embutido no formulário renderizado.
func IssueCSRFToken(w http.ResponseWriter, r *http.Request, tokenSvc TokenService, secure bool, ttl time.Duration) (string, error) {
	nonce := ""
	if c, err := r.Cookie(CSRFCookieName); err == nil && c.Value != "" {
		nonce = c.Value
	} else {
		nonce = token.NewNonce()
	}

	// O cookie é reenviado a cada renderização para renovar a validade.
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    nonce,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	return tokenSvc.GenerateToken(nonce)
}

// NewCSRFMiddleware cria um middleware que valida o token CSRF em métodos que
// alteram estado. GET, HEAD e OPTIONS passam direto.
func NewCSRFMiddleware(tokenSvc TokenService, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// 1. Nonce do cookie
			cookie, err := r.Cookie(CSRFCookieName)
			if err != nil || cookie.Value == "" {
				log.Warn("CSRF: cookie ausente", map[string]interface{}{"path": r.URL.Path})
				http.Error(w, "Sessão do formulário expirada. Recarregue a página.", http.StatusForbidden)
				return
			}

			// 2. Token do formulário (ou header)
			tokenString := r.PostFormValue(CSRFFormField)
			if tokenString == "" {
				tokenString = r.Header.Get(CSRFHeader)
			}
			if tokenString == "" {
				log.Warn("CSRF: token ausente", map[string]interface{}{"path": r.URL.Path})
				http.Error(w, "Sessão do formulário expirada. Recarregue a página.", http.StatusForbidden)
				return
			}

			// 3. Validar assinatura e comparar o nonce
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil || subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(cookie.Value)) != 1 {
				log.Warn("CSRF: token inválido", map[string]interface{}{"path": r.URL.Path})
				http.Error(w, "Sessão do formulário expirada. Recarregue a página.", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), csrfTokenKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CSRFClaimsFromContext devolve as claims validadas pelo middleware, se houver.
func CSRFClaimsFromContext(ctx context.Context) (*token.CSRFClaims, bool) {
	claims, ok := ctx.Value(csrfTokenKey).(*token.CSRFClaims)
	return claims, ok
}
