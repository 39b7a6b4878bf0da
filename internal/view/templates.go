package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"luanova/internal/domain"
	"luanova/web"
)

// Engine renderiza os templates HTML embutidos.
type Engine struct {
	templates *template.Template
}

// TemplateData contém os valores comuns a todas as páginas.
type TemplateData struct {
	Title       string
	CSRFToken   string
	CurrentPath string
	Data        any
}

// NewEngine faz o parse dos templates uma única vez, na inicialização.
// loc é o fuso usado para exibir datas.
func NewEngine(loc *time.Location) (*Engine, error) {
	if loc == nil {
		loc = time.UTC
	}
	funcMap := template.FuncMap{
		"formatPreco":  FormatPreco,
		"estadoClasse": EstadoClasse,
		"formatData": func(ts domain.Timestamp) string {
			return FormatData(ts, loc)
		},
		"dict": dict,
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates,
		"templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executa o template nomeado em um buffer e só então escreve a resposta,
// para que uma falha de template não deixe uma página pela metade.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("engine de templates não inicializada")
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// dict monta um mapa a partir de pares chave/valor, para passar vários
// argumentos a um template parcial.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: número ímpar de argumentos")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: chave %v não é string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
