package formulario

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/NovaTerraImoveis/api-cadastro/internal/utils"
)

// Regra valida o valor textual de um campo preenchido.
// Retorna a mensagem de erro, ou "" quando o valor é válido.
type Regra func(valor string) string

// Campo declara a regra de validação de um único campo.
type Campo struct {
	Nome        string
	Obrigatorio bool
	Regra       Regra
	Aceite      bool // booleano que precisa ser true (aceite de termos)
}

// Schema declara o conjunto de campos de uma variante de formulário.
// Schemas são predicados puros: payload candidato entra, payload
// normalizado ou lista de erros por campo sai.
type Schema struct {
	Tipo   string
	Campos []Campo
}

// Validar aplica as regras do schema e devolve o payload normalizado
// (strings com espaços aparados) ou as violações por campo.
func (s *Schema) Validar(dados map[string]any) (map[string]any, *ErroValidacao) {
	erros := map[string]string{}

	for _, c := range s.Campos {
		v, existe := dados[c.Nome]

		if c.Aceite {
			if !valorAceito(v) {
				erros[c.Nome] = "é necessário aceitar os termos"
			}
			continue
		}

		texto := valorTexto(v)
		if texto == "" {
			if c.Obrigatorio {
				if !existe {
					erros[c.Nome] = "campo obrigatório"
				} else {
					erros[c.Nome] = "campo obrigatório não pode ser vazio"
				}
			}
			continue
		}
		if c.Regra != nil {
			if msg := c.Regra(texto); msg != "" {
				erros[c.Nome] = msg
			}
		}
	}

	if len(erros) > 0 {
		return nil, &ErroValidacao{Campos: erros}
	}

	norm := make(map[string]any, len(dados))
	for k, v := range dados {
		if s, ok := v.(string); ok {
			norm[k] = strings.TrimSpace(s)
			continue
		}
		norm[k] = v
	}
	return norm, nil
}

func valorAceito(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	default:
		return false
	}
}

func valorTexto(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// ----- regras reutilizadas entre schemas -----

var regexEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func regraEmail(v string) string {
	if !regexEmail.MatchString(v) {
		return "e-mail inválido"
	}
	return ""
}

func regraCPF(v string) string {
	if !utils.ValidarCPF(v) {
		return "CPF inválido"
	}
	return ""
}

func regraCNPJ(v string) string {
	if !utils.ValidarCNPJ(v) {
		return "CNPJ inválido"
	}
	return ""
}

func regraCPFouCNPJ(v string) string {
	if !utils.ValidarCPFouCNPJ(v) {
		return "CPF/CNPJ inválido"
	}
	return ""
}

func regraCEP(v string) string {
	if len(utils.SanitizeDigitos(v)) != 8 {
		return "CEP inválido"
	}
	return ""
}

func regraCelular(v string) string {
	d := len(utils.SanitizeDigitos(v))
	if d < 10 || d > 11 {
		return "celular inválido"
	}
	return ""
}

func regraUF(v string) string {
	if len(v) != 2 {
		return "UF inválida"
	}
	return ""
}

func regraValorPositivo(v string) string {
	n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil || n <= 0 {
		return "valor inválido"
	}
	return ""
}

// ----- sub-shapes compartilhados -----

// Endereço e contato se repetem em quase todos os formulários; a
// composição explícita preserva a atribuição de erro por campo.
func camposEndereco() []Campo {
	return []Campo{
		{Nome: "cep", Obrigatorio: true, Regra: regraCEP},
		{Nome: "endereco", Obrigatorio: true},
		{Nome: "numero", Obrigatorio: true},
		{Nome: "complemento"},
		{Nome: "bairro", Obrigatorio: true},
		{Nome: "cidade", Obrigatorio: true},
		{Nome: "estado", Obrigatorio: true, Regra: regraUF},
	}
}

func camposContato() []Campo {
	return []Campo{
		{Nome: "email", Obrigatorio: true, Regra: regraEmail},
		{Nome: "celular", Obrigatorio: true, Regra: regraCelular},
		{Nome: "telefone"},
	}
}

func camposComuns() []Campo {
	return []Campo{
		{Nome: "terms", Obrigatorio: true, Aceite: true},
		{Nome: "assinatura"},
	}
}

func compor(proprios []Campo, grupos ...[]Campo) []Campo {
	out := append([]Campo{}, proprios...)
	for _, g := range grupos {
		out = append(out, g...)
	}
	return out
}
