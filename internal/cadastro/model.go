package cadastro

import "time"

// Status do ciclo de vida de um cadastro. Os contadores de
// pendências das estatísticas são derivados desta coluna.
const (
	StatusRecebido            = "recebido"
	StatusContratoPendente    = "contrato-pendente"
	StatusDocumentosPendentes = "documentos-pendentes"
	StatusFinalizado          = "finalizado"
)

// StatusValido confere se o valor pertence ao enum de ciclo de vida.
func StatusValido(s string) bool {
	switch s {
	case StatusRecebido, StatusContratoPendente, StatusDocumentosPendentes, StatusFinalizado:
		return true
	}
	return false
}

// Cadastro é uma linha por formulário preenchido por um usuário
// final. Nome/CPF/Email/Celular/CodigoImovel são denormalizados do
// payload pelas cadeias de fallback e nunca ficam vazios.
type Cadastro struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Nome           string    `gorm:"size:255;not null" json:"nome"`
	CPF            string    `gorm:"size:20;not null" json:"cpf"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	Celular        string    `gorm:"size:30;not null" json:"celular"`
	CodigoImovel   string    `gorm:"size:50;not null;index" json:"codigoImovel"`
	TipoFormulario string    `gorm:"size:50;not null;index" json:"tipoFormulario"`
	FormData       string    `gorm:"type:text;not null" json:"formData"`
	Assinatura     string    `gorm:"type:text" json:"assinatura,omitempty"`
	ArquivoPdf     string    `gorm:"size:100" json:"arquivoPdf,omitempty"`
	Status         string    `gorm:"size:30;not null;default:recebido" json:"status"`
	DataCadastro   time.Time `gorm:"autoCreateTime" json:"dataCadastro"`
}
