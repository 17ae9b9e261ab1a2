package utils

import "unicode"

// SanitizeDigitos remove qualquer coisa que não seja dígito.
func SanitizeDigitos(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func todosIguais(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidarCPF confere tamanho e dígitos verificadores (módulo 11).
func ValidarCPF(cpf string) bool {
	cpf = SanitizeDigitos(cpf)
	if len(cpf) != 11 || todosIguais(cpf) {
		return false
	}
	for _, pos := range []int{9, 10} {
		soma := 0
		for i := 0; i < pos; i++ {
			soma += int(cpf[i]-'0') * (pos + 1 - i)
		}
		resto := (soma * 10) % 11
		if resto == 10 {
			resto = 0
		}
		if resto != int(cpf[pos]-'0') {
			return false
		}
	}
	return true
}

// ValidarCNPJ confere tamanho e dígitos verificadores.
func ValidarCNPJ(cnpj string) bool {
	cnpj = SanitizeDigitos(cnpj)
	if len(cnpj) != 14 || todosIguais(cnpj) {
		return false
	}
	pesos1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	pesos2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, pesos := range [][]int{pesos1, pesos2} {
		soma := 0
		for i, p := range pesos {
			soma += int(cnpj[i]-'0') * p
		}
		resto := soma % 11
		digito := 0
		if resto >= 2 {
			digito = 11 - resto
		}
		if digito != int(cnpj[len(pesos)]-'0') {
			return false
		}
	}
	return true
}

// ValidarCPFouCNPJ aceita qualquer um dos dois documentos.
func ValidarCPFouCNPJ(doc string) bool {
	return ValidarCPF(doc) || ValidarCNPJ(doc)
}
