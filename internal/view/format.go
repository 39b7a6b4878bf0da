package view

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"luanova/internal/domain"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatPreco formata um valor como moeda brasileira: "R$ 1.234,50".
// O separador após o símbolo é um espaço não separável.
func FormatPreco(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	// Só a parte inteira passa pelo agrupamento de milhar; os centavos vêm
	// do texto arredondado, sem conversão para float64.
	fixed := v.StringFixed(2)
	inteiro := v.Round(2).Truncate(0).IntPart()
	return sign + "R$\u00a0" + ptBR.Sprintf("%v", number.Decimal(inteiro)) + "," + fixed[len(fixed)-2:]
}

// FormatData devolve a data curta (dd/mm/aaaa) no fuso informado.
// Datas sem fuso são exibidas como vieram do backend.
func FormatData(ts domain.Timestamp, loc *time.Location) string {
	if ts.IsZero() {
		return ""
	}
	t := ts.Time
	if loc != nil && !ts.Floating {
		t = t.In(loc)
	}
	return t.Format("02/01/2006")
}

// EstadoClasse devolve a classe da etiqueta de estado.
func EstadoClasse(e domain.Estado) string {
	switch e {
	case domain.EstadoNovo:
		return "tag tag-green"
	case domain.EstadoDefeito:
		return "tag tag-red"
	default:
		return "tag tag-yellow"
	}
}
