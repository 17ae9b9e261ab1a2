package formulario

import "strings"

// Resumo reúne os campos denormalizados extraídos do payload
// validado, usados em busca e ordenação na listagem.
type Resumo struct {
	Nome         string
	CPF          string
	Email        string
	Celular      string
	CodigoImovel string
	Assinatura   string
}

// ExtrairResumo aplica as cadeias de fallback sobre o payload já
// validado: nome→razaoSocial→nomeProprietario e
// cpf→cnpj→cpfCnpjProprietario. Como cada schema exige ao menos uma
// origem de cada cadeia, os campos do resumo nunca saem vazios.
func ExtrairResumo(dados map[string]any) Resumo {
	return Resumo{
		Nome:         primeiroNaoVazio(dados, "nome", "razaoSocial", "nomeProprietario"),
		CPF:          primeiroNaoVazio(dados, "cpf", "cnpj", "cpfCnpjProprietario"),
		Email:        primeiroNaoVazio(dados, "email"),
		Celular:      primeiroNaoVazio(dados, "celular"),
		CodigoImovel: primeiroNaoVazio(dados, "codigoImovel"),
		Assinatura:   primeiroNaoVazio(dados, "assinatura"),
	}
}

func primeiroNaoVazio(dados map[string]any, chaves ...string) string {
	for _, c := range chaves {
		if v, ok := dados[c].(string); ok {
			if t := strings.TrimSpace(v); t != "" {
				return t
			}
		}
	}
	return ""
}
