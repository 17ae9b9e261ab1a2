package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/NovaTerraImoveis/api-cadastro/internal/arquivo"
	"github.com/NovaTerraImoveis/api-cadastro/internal/auth"
	"github.com/NovaTerraImoveis/api-cadastro/internal/cadastro"
	"github.com/NovaTerraImoveis/api-cadastro/internal/config"
	"github.com/NovaTerraImoveis/api-cadastro/internal/notificacao"
	"github.com/NovaTerraImoveis/api-cadastro/internal/usuario"
	"github.com/NovaTerraImoveis/api-cadastro/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	_ = config.InitLogger(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET não definida")
	}
	auth.Init(cfg.JWTSecret)

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := conn.AutoMigrate(
		&cadastro.Cadastro{},
		&usuario.Usuario{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Bootstrap idempotente da conta admin
	if err := usuario.NewRepository().SeedAdmin(conn, cfg.AdminPassword); err != nil {
		log.Fatal("Erro no seed do admin:", err)
	}

	arquivos, err := arquivo.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Erro ao preparar diretório de upload:", err)
	}

	notificador := notificacao.New(cfg.WebhookURL)

	// Handlers
	cadastroHandler := cadastro.NewHandler(conn, arquivos, notificador)
	usuarioHandler := usuario.NewHandler(conn)

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Rotas públicas: intake de formulários e autenticação
	api.HandleFunc("/submissions", cadastroHandler.Criar).Methods("POST")
	api.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")
	api.HandleFunc("/auth/status", usuarioHandler.Status).Methods("GET")

	// Rotas autenticadas: leitura de cadastros
	priv := api.NewRoute().Subrouter()
	priv.Use(auth.MiddlewareAutenticacao)
	priv.HandleFunc("/submissions", cadastroHandler.Listar).Methods("GET")
	priv.HandleFunc("/submissions/{id}", cadastroHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/submissions/{id}/pdf", cadastroHandler.BaixarPdf).Methods("GET")

	// Rotas administrativas: mutações, estatísticas e usuários
	adm := api.NewRoute().Subrouter()
	adm.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)
	adm.HandleFunc("/submissions/{id}", cadastroHandler.Atualizar).Methods("PUT")
	adm.HandleFunc("/submissions/{id}", cadastroHandler.Deletar).Methods("DELETE")
	adm.HandleFunc("/stats", cadastroHandler.Estatisticas).Methods("GET")
	adm.HandleFunc("/users", usuarioHandler.Listar).Methods("GET")
	adm.HandleFunc("/users", usuarioHandler.Criar).Methods("POST")
	adm.HandleFunc("/users/{id}", usuarioHandler.Atualizar).Methods("PUT")
	adm.HandleFunc("/users/{id}", usuarioHandler.Deletar).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	go func() {
		slog.Info("servidor iniciado", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("erro no servidor: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("erro no shutdown gracioso", "err", err)
	}
}
