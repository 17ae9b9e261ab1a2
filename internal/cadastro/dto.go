package cadastro

// Estatisticas agrega os contadores do dashboard. Pendências vêm da
// coluna de status, não de percentuais sintéticos do total.
type Estatisticas struct {
	TotalCadastros      int64 `json:"totalCadastros"`
	ImoveisDisponiveis  int64 `json:"imoveisDisponiveis"`
	ContratosPendentes  int64 `json:"contratosPendentes"`
	DocumentosPendentes int64 `json:"documentosPendentes"`
}

// Atualizacao é o patch parcial aceito no update: campos ausentes
// mantêm o valor anterior da linha.
type Atualizacao struct {
	Nome         *string `json:"nome"`
	CPF          *string `json:"cpf"`
	Email        *string `json:"email"`
	Celular      *string `json:"celular"`
	CodigoImovel *string `json:"codigoImovel"`
	FormData     *string `json:"formData"`
	Assinatura   *string `json:"assinatura"`
	ArquivoPdf   *string `json:"arquivoPdf"`
	Status       *string `json:"status"`
}
