package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// SlogLogger é a implementação concreta da interface Logger sobre log/slog.
type SlogLogger struct {
	log  *slog.Logger
	exit func(int)
}

// NewLogger cria e retorna uma nova instância do Logger escrevendo em stdout.
// format aceita "json" (padrão) ou "text".
func NewLogger(level, format string) Logger {
	return New(os.Stdout, level, format)
}

// New cria um Logger escrevendo no io.Writer informado.
func New(w io.Writer, level, format string) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &SlogLogger{log: slog.New(handler), exit: os.Exit}
}

// parseLevel traduz o nível textual da configuração. Desconhecido vira info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func toAttrs(fields map[string]interface{}) []any {
	attrs := make([]any, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

// Implementações da Interface Logger

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, toAttrs(fields)...)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, toAttrs(fields)...)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, toAttrs(fields)...)
}

func (l *SlogLogger) Error(msg string, err error) {
	if err != nil {
		l.log.Error(msg, slog.Any("error", err))
		return
	}
	l.log.Error(msg)
}

// Fatal registra o erro e encerra o processo.
func (l *SlogLogger) Fatal(msg string, err error) {
	l.log.Log(context.Background(), slog.LevelError+4, msg, slog.Any("error", err))
	l.exit(1)
}
