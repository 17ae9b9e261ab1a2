package cadastro

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/NovaTerraImoveis/api-cadastro/internal/arquivo"
	"github.com/NovaTerraImoveis/api-cadastro/internal/formulario"
	"github.com/NovaTerraImoveis/api-cadastro/internal/notificacao"
	"github.com/NovaTerraImoveis/api-cadastro/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository, store de arquivos e notificador.
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Arquivos    arquivo.Store
	Notificador *notificacao.Notificador
}

func NewHandler(db *gorm.DB, arquivos arquivo.Store, notif *notificacao.Notificador) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Arquivos:    arquivos,
		Notificador: notif,
	}
}

// Criar recebe a submissão multipart pública: tipoFormulario,
// formData (JSON) e arquivo PDF opcional. Tudo antes da persistência
// é validação pura; nada é gravado em caso de erro de validação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(arquivo.TamanhoMaximo + 2<<20); err != nil {
		utils.Erro(w, http.StatusBadRequest, "requisição multipart inválida")
		return
	}

	tipo := r.FormValue("tipoFormulario")
	raw := r.FormValue("formData")

	var dados map[string]any
	if err := utils.DecodeStrict(strings.NewReader(raw), &dados); err != nil {
		utils.Erro(w, http.StatusBadRequest, "formData não é um JSON válido")
		return
	}

	validados, err := formulario.Validar(tipo, dados)
	if err != nil {
		var ve *formulario.ErroValidacao
		if errors.As(err, &ve) {
			utils.WriteJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "dados inválidos",
				"campos": ve.Campos,
			})
			return
		}
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	resumo := formulario.ExtrairResumo(validados)

	formData, err := json.Marshal(validados)
	if err != nil {
		utils.Erro(w, http.StatusInternalServerError, "erro ao serializar formulário")
		return
	}

	// O PDF é gravado antes do insert; se a persistência falhar
	// depois disso o arquivo fica órfão (alertado, não revertido).
	var nomeArquivo string
	if _, fh, err := r.FormFile("arquivo"); err == nil {
		nomeArquivo, err = h.Arquivos.SalvarPDF(fh)
		if err != nil {
			if errors.Is(err, arquivo.ErrArquivoGrande) || errors.Is(err, arquivo.ErrNaoEhPDF) {
				utils.Erro(w, http.StatusBadRequest, err.Error())
				return
			}
			slog.Error("erro ao gravar PDF do cadastro", "err", err)
			utils.Erro(w, http.StatusInternalServerError, "erro ao gravar arquivo")
			return
		}
	}

	c := &Cadastro{
		Nome:           resumo.Nome,
		CPF:            resumo.CPF,
		Email:          resumo.Email,
		Celular:        resumo.Celular,
		CodigoImovel:   resumo.CodigoImovel,
		TipoFormulario: tipo,
		FormData:       string(formData),
		Assinatura:     resumo.Assinatura,
		ArquivoPdf:     nomeArquivo,
		Status:         StatusRecebido,
	}

	if err := h.Repository.Criar(h.DB, c); err != nil {
		if nomeArquivo != "" {
			slog.Warn("arquivo órfão após falha de persistência",
				"arquivo", nomeArquivo, "tipoFormulario", tipo, "err", err)
			h.Notificador.AlertaArquivoOrfao(nomeArquivo, tipo)
		} else {
			slog.Error("erro ao salvar cadastro", "tipoFormulario", tipo, "err", err)
		}
		utils.Erro(w, http.StatusInternalServerError, "erro ao salvar cadastro")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, c)
}

// Listar retorna todos os cadastros (mais recentes primeiro) ou
// apenas os de um tipo, via query ?tipo=.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		cadastros []Cadastro
		err       error
	)
	if tipo := r.URL.Query().Get("tipo"); tipo != "" {
		cadastros, err = h.Repository.ListarPorTipo(h.DB, tipo)
	} else {
		cadastros, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		slog.Error("erro ao listar cadastros", "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao listar cadastros")
		return
	}
	utils.WriteJSON(w, http.StatusOK, cadastros)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.Erro(w, http.StatusNotFound, "cadastro não encontrado")
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

// Atualizar aplica um patch parcial; campos ausentes mantêm o valor
// anterior da linha.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}

	var patch Atualizacao
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Erro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if patch.Status != nil && !StatusValido(*patch.Status) {
		utils.Erro(w, http.StatusBadRequest, "status inválido")
		return
	}

	c, err := h.Repository.Atualizar(h.DB, id, &patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Erro(w, http.StatusNotFound, "cadastro não encontrado")
			return
		}
		slog.Error("erro ao atualizar cadastro", "id", id, "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao atualizar cadastro")
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

// Deletar remove a linha e, havendo PDF associado, o arquivo.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.Erro(w, http.StatusNotFound, "cadastro não encontrado")
		return
	}

	if err := h.Repository.Deletar(h.DB, id); err != nil {
		slog.Error("erro ao excluir cadastro", "id", id, "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao excluir cadastro")
		return
	}

	if c.ArquivoPdf != "" {
		if err := h.Arquivos.Remover(c.ArquivoPdf); err != nil && !errors.Is(err, arquivo.ErrNaoEncontrado) {
			slog.Warn("erro ao remover PDF do cadastro excluído",
				"id", id, "arquivo", c.ArquivoPdf, "err", err)
		}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"mensagem": "cadastro excluído com sucesso"})
}

// BaixarPdf transmite o PDF armazenado; 404 quando nunca houve anexo.
func (h *Handler) BaixarPdf(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		utils.Erro(w, http.StatusNotFound, "cadastro não encontrado")
		return
	}
	if c.ArquivoPdf == "" {
		utils.Erro(w, http.StatusNotFound, "cadastro não possui PDF")
		return
	}

	f, err := h.Arquivos.Abrir(c.ArquivoPdf)
	if err != nil {
		utils.Erro(w, http.StatusNotFound, "arquivo não encontrado")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+c.ArquivoPdf+`"`)
	if _, err := io.Copy(w, f); err != nil {
		slog.Error("erro ao transmitir PDF", "id", id, "err", err)
	}
}

func (h *Handler) Estatisticas(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Repository.Estatisticas(h.DB)
	if err != nil {
		slog.Error("erro ao calcular estatísticas", "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao calcular estatísticas")
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

func idDaRota(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		utils.Erro(w, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return uint(id), true
}
