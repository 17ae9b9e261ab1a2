package usuario

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/NovaTerraImoveis/api-cadastro/internal/auth"
	"github.com/NovaTerraImoveis/api-cadastro/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type criarUsuarioRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Handler encapsula DB e repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login valida as credenciais e emite um JWT com validade de 24h.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	u, err := h.Repository.ValidarCredenciais(h.DB, req.Username, req.Password)
	if err != nil {
		utils.Erro(w, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	token, err := auth.GerarToken(u.ID, u.IsAdmin)
	if err != nil {
		slog.Error("erro ao gerar token", "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao gerar token")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  u,
	})
}

// Status ecoa a identidade autenticada, ou indica anonimato. A rota
// é pública: o token, quando presente, é validado aqui mesmo.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	claims, err := auth.ValidarToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, claims.UserID)
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          u,
	})
}

// Listar retorna todos os usuários; a senha fica de fora da
// serialização pelo próprio modelo.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		slog.Error("erro ao listar usuários", "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao listar usuários")
		return
	}
	utils.WriteJSON(w, http.StatusOK, usuarios)
}

func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Username == "" || req.Senha == "" {
		utils.Erro(w, http.StatusBadRequest, "username e senha são obrigatórios")
		return
	}

	u := &Usuario{
		Username: req.Username,
		Senha:    req.Senha,
		Nome:     req.Nome,
		Email:    req.Email,
		IsAdmin:  req.IsAdmin,
	}
	if err := h.Repository.Criar(h.DB, u); err != nil {
		slog.Error("erro ao criar usuário", "username", req.Username, "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao criar usuário")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, u)
}

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

	u, err := h.Repository.Atualizar(h.DB, id, &patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Erro(w, http.StatusNotFound, "usuário não encontrado")
			return
		}
		slog.Error("erro ao atualizar usuário", "id", id, "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao atualizar usuário")
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	if err := h.Repository.Deletar(h.DB, id); err != nil {
		slog.Error("erro ao excluir usuário", "id", id, "err", err)
		utils.Erro(w, http.StatusInternalServerError, "erro ao excluir usuário")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"mensagem": "usuário excluído com sucesso"})
}

func idDaRota(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		utils.Erro(w, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return uint(id), true
}
