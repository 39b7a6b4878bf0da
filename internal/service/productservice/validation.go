package productservice

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperror "luanova/internal/errors"
)

// Mensagens no estilo das dicas nativas do navegador.
const (
	msgObrigatorio = "Preencha este campo."
	msgNumero      = "Insira um número."
	msgInteiro     = "Insira um número inteiro."
	msgMinimo      = "O valor deve ser maior ou igual a 0."
	msgCentavos    = "Insira um valor com no máximo duas casas decimais."
)

// FieldErrors associa o nome do campo (chave JSON) à mensagem exibida ao lado dele.
type FieldErrors map[string]string

func (e FieldErrors) add(field string, err error) {
	var vErr *apperror.ValidationError
	if errors.As(err, &vErr) {
		e[field] = vErr.Msg
		return
	}
	e[field] = err.Error()
}

// Err devolve um ValidationError quando há erros, para o mapeamento de status HTTP.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return apperror.NewValidationError("formulário com campos inválidos")
}

var validate = newValidator()

// newValidator reproduz no servidor apenas as restrições HTML5 do formulário:
// required, min e step. Pertencer à lista de opções não é verificado.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Os erros usam o nome JSON do campo, o mesmo do atributo name do input.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal é validado pela sua representação textual.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	// step="0.01"
	_ = v.RegisterValidation("centavos", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return d.Equal(d.Round(2))
	})

	return v
}

// Validate confere as restrições do formulário sobre o estado atual.
// Não é chamado por Submit: quem valida é a camada que faz o papel do navegador.
func (f *FormController) Validate() FieldErrors {
	errs := FieldErrors{}

	err := validate.Struct(f.state)
	if err == nil {
		return errs
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		errs["_form"] = err.Error()
		return errs
	}

	for _, fe := range vErrs {
		errs[fe.Field()] = messageFor(fe.Tag())
	}
	return errs
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return msgObrigatorio
	case "min":
		return msgMinimo
	case "centavos":
		return msgCentavos
	default:
		return msgNumero
	}
}
