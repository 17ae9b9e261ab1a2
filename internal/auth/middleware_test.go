package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func handlerOK(t *testing.T, chamado *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*chamado = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareAutenticacao_SemToken(t *testing.T) {
	Init("segredo-de-teste")
	chamado := false

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	rr := httptest.NewRecorder()
	MiddlewareAutenticacao(handlerOK(t, &chamado)).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want %d", rr.Code, http.StatusUnauthorized)
	}
	if chamado {
		t.Fatal("handler executado sem token")
	}
}

func TestMiddlewareAutenticacao_TokenInvalido(t *testing.T) {
	Init("segredo-de-teste")
	chamado := false

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
	rr := httptest.NewRecorder()
	MiddlewareAutenticacao(handlerOK(t, &chamado)).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestMiddlewareAutenticacao_AnexaIdentidade(t *testing.T) {
	Init("segredo-de-teste")
	token, err := GerarToken(7, true)
	if err != nil {
		t.Fatalf("GerarToken: %v", err)
	}

	var id uint
	var admin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ = UsuarioID(r.Context())
		admin = EhAdmin(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	MiddlewareAutenticacao(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}
	if id != 7 || !admin {
		t.Fatalf("identidade no contexto: id=%d admin=%v", id, admin)
	}
}

func TestRequireAdmin(t *testing.T) {
	Init("segredo-de-teste")

	casos := []struct {
		nome    string
		isAdmin bool
		want    int
	}{
		{"admin passa", true, http.StatusOK},
		{"nao-admin barrado", false, http.StatusForbidden},
	}
	for _, c := range casos {
		token, err := GerarToken(1, c.isAdmin)
		if err != nil {
			t.Fatalf("GerarToken: %v", err)
		}
		chamado := false
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		MiddlewareAutenticacao(RequireAdmin(handlerOK(t, &chamado))).ServeHTTP(rr, req)

		if rr.Code != c.want {
			t.Errorf("%s: status = %d; want %d", c.nome, rr.Code, c.want)
		}
	}
}

func TestRequireAdmin_SemAutenticacao(t *testing.T) {
	chamado := false
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	RequireAdmin(handlerOK(t, &chamado)).ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d; want %d", rr.Code, http.StatusForbidden)
	}
}
