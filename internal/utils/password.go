package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckSenha compara hash bcrypt com a senha em texto puro.
func CheckSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

// SenhaJaHasheada detecta valores que já são hashes bcrypt pelo
// prefixo de versão, para evitar re-hashear no update.
func SenhaJaHasheada(valor string) bool {
	return strings.HasPrefix(valor, "$2a$") ||
		strings.HasPrefix(valor, "$2b$") ||
		strings.HasPrefix(valor, "$2y$")
}
