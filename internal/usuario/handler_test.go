package usuario

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NovaTerraImoveis/api-cadastro/internal/auth"
)

func init() {
	auth.Init("segredo-de-teste")
}

func TestLogin_OK(t *testing.T) {
	rm := &repoMock{
		ValidarCredenciaisFn: func(username, senha string) (*Usuario, error) {
			if username != "admin" || senha != "admin123" {
				return nil, ErrCredenciaisInvalidas
			}
			return &Usuario{ID: 1, Username: "admin", Senha: "$2a$10$hash", IsAdmin: true}, nil
		},
	}
	h := &Handler{Repository: rm}

	body := bytes.NewBufferString(`{"username":"admin","password":"admin123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("resposta sem token")
	}
	claims, err := auth.ValidarToken(token)
	if err != nil {
		t.Fatalf("token emitido não valida: %v", err)
	}
	if claims.UserID != 1 || !claims.IsAdmin {
		t.Fatalf("claims = %+v", claims)
	}

	user, _ := resp["user"].(map[string]any)
	for chave := range user {
		if chave == "senha" || chave == "password" {
			t.Fatalf("resposta de login expõe a senha: %v", user)
		}
	}
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	rm := &repoMock{
		ValidarCredenciaisFn: func(username, senha string) (*Usuario, error) {
			return nil, ErrCredenciaisInvalidas
		},
	}
	h := &Handler{Repository: rm}

	body := bytes.NewBufferString(`{"username":"admin","password":"errada"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestLogin_PayloadInvalido(t *testing.T) {
	h := &Handler{Repository: &repoMock{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestStatus_Anonimo(t *testing.T) {
	h := &Handler{Repository: &repoMock{}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if autenticado, _ := resp["authenticated"].(bool); autenticado {
		t.Fatal("requisição anônima marcada como autenticada")
	}
}

func TestStatus_Autenticado(t *testing.T) {
	rm := &repoMock{
		BuscarPorIDFn: func(id uint) (*Usuario, error) {
			return &Usuario{ID: id, Username: "admin", IsAdmin: true}, nil
		},
	}
	h := &Handler{Repository: rm}

	token, err := auth.GerarToken(1, true)
	if err != nil {
		t.Fatalf("GerarToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if autenticado, _ := resp["authenticated"].(bool); !autenticado {
		t.Fatalf("identidade não ecoada: %s", rr.Body.String())
	}
}

func TestStatus_TokenInvalido(t *testing.T) {
	h := &Handler{Repository: &repoMock{}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.Header.Set("Authorization", "Bearer lixo")
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if autenticado, _ := resp["authenticated"].(bool); autenticado {
		t.Fatal("token inválido marcado como autenticado")
	}
}

// A listagem nunca pode serializar o hash de senha de nenhum usuário.
func TestListar_SemSenha(t *testing.T) {
	rm := &repoMock{
		ListarTodosFn: func() ([]Usuario, error) {
			return []Usuario{
				{ID: 1, Username: "admin", Senha: "$2a$10$hash-super-secreto", IsAdmin: true},
				{ID: 2, Username: "corretor", Senha: "$2a$10$outro-hash"},
			}, nil
		},
	}
	h := &Handler{Repository: rm}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	h.Listar(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "hash") || strings.Contains(rr.Body.String(), "senha") {
		t.Fatalf("listagem expõe senha: %s", rr.Body.String())
	}

	var got []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d; want 2", len(got))
	}
}

func TestCriar_SemUsername(t *testing.T) {
	h := &Handler{Repository: &repoMock{}}

	body := bytes.NewBufferString(`{"senha":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	rr := httptest.NewRecorder()
	h.Criar(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCriar_OK(t *testing.T) {
	rm := &repoMock{
		CriarFn: func(u *Usuario) error {
			u.ID = 3
			return nil
		},
	}
	h := &Handler{Repository: rm}

	body := bytes.NewBufferString(`{"username":"corretor","senha":"s3nh4","nome":"Corretor"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	rr := httptest.NewRecorder()
	h.Criar(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "s3nh4") {
		t.Fatalf("resposta expõe a senha: %s", rr.Body.String())
	}
}
