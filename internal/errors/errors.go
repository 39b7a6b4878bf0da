package errors

import (
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do Lua Nova Estoque.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION", "BACKEND", "INTERNAL")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// Mensagens exibidas na área de erro da lista de produtos.
const (
	MsgErroCarregarProdutos = "Erro ao carregar produtos"
	MsgErroRegistrarProduto = "Erro ao registrar produto"
)

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
// Field é opcional e identifica o campo do formulário que falhou.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusUnprocessableEntity } // 422
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldError cria um erro de validação associado a um campo do formulário.
func NewFieldError(field, msg string) AppError {
	return &ValidationError{Field: field, Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// BackendError representa uma falha na comunicação com a API de produtos:
// status HTTP fora da faixa 2xx, falha de transporte ou resposta ilegível.
// A mensagem é exibida ao usuário exatamente como está; a causa só vai para o log.
type BackendError struct {
	Msg        string
	StatusCode int   // Status devolvido pelo backend (0 quando não houve resposta)
	Err        error // Causa original
}

func (e *BackendError) Error() string    { return e.Msg }
func (e *BackendError) Category() string { return "BACKEND_ERROR" }
func (e *BackendError) HTTPStatus() int  { return http.StatusBadGateway } // 502
func (e *BackendError) Unwrap() error    { return e.Err }

// NewBackendError cria um erro de backend com a mensagem a ser exibida.
func NewBackendError(msg string, statusCode int, err error) AppError {
	return &BackendError{Msg: msg, StatusCode: statusCode, Err: err}
}

// InternalError representa falhas inesperadas no servidor (e.g., renderização de template).
type InternalError struct {
	Msg string
	Err error // Erro original subjacente
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, categoria e mensagem.
// Um erro nil resulta em 200.
func MapToHTTPStatus(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "", ""
	}
	if appErr, ok := err.(AppError); ok {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
