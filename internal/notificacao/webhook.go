package notificacao

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Notificador dispara alertas operacionais via webhook. Com URL
// vazia os alertas são apenas registrados em log.
type Notificador struct {
	URL string
}

func New(url string) *Notificador {
	return &Notificador{URL: url}
}

// AlertaArquivoOrfao avisa que um PDF foi gravado mas o cadastro
// correspondente não foi persistido. Não-fatal: melhor esforço,
// nenhum erro é propagado ao fluxo da requisição.
func (n *Notificador) AlertaArquivoOrfao(nomeArquivo, tipoFormulario string) {
	if n == nil || n.URL == "" {
		return
	}
	payload := map[string]string{
		"mensagem":       "Alerta: arquivo órfão após falha de persistência",
		"arquivo":        nomeArquivo,
		"tipoFormulario": tipoFormulario,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		slog.Error("erro ao enviar webhook de arquivo órfão", "err", err)
		return
	}
	defer resp.Body.Close()
}
