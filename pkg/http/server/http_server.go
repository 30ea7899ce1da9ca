package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpLogger "github.com/go-http-utils/logger"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/unrolled/secure"
	"projetos/pkg/config"
	"projetos/pkg/http/server/controllers"
	"projetos/pkg/http/server/middlewares"
	"projetos/pkg/secrets"
	"projetos/pkg/service"
	"projetos/pkg/utils"
)

const shutdownTimeout = 10 * time.Second

// NewRouter mounts every route under the configured prefix
func NewRouter(logger hclog.Logger, configs *config.ProjetosConfigurations, serv *service.Service) http.Handler {
	// HTTP router setup
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.SendError(w, utils.NotFoundError())
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.SendError(w, utils.HTTPGenericError(http.StatusMethodNotAllowed, fmt.Sprintf("Method \"%s\" not allowed.", r.Method)))
	})

	// Security middleware
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
	})

	// Initialize controllers
	projetoController := controllers.NewProjetoController(logger, serv.ProjetoService)
	usuarioController := controllers.NewUsuarioController(logger, serv.IdentityProvider)
	healthCheckController := controllers.NewHealthCheckController(logger, serv.DataStore)

	// Mount middleware
	middleware := middlewares.NewMiddlewareHandler(logger)

	router.Use(chiMiddleware.Recoverer)
	router.Use(secureMiddleware.Handler)
	router.Use(middleware.ContextMiddleware)
	router.Use(middleware.TimeoutMiddleware(configs.RequestTimeout()))

	optionalAuth := middleware.OptionalAuth(serv.IdentityProvider)
	requireAuth := middleware.RequireAuth(serv.IdentityProvider)
	prefix := configs.APIPrefix

	// Projeto Endpoints
	router.HandleFunc(fmt.Sprintf("%s/projeto/", prefix), projetoController.ListProjetos).Methods(http.MethodGet)
	router.Handle(fmt.Sprintf("%s/projeto/", prefix), optionalAuth(http.HandlerFunc(projetoController.CreateOneProjeto))).Methods(http.MethodPost)
	router.HandleFunc(fmt.Sprintf("%s/projeto/{id:[0-9]+}/", prefix), projetoController.GetOneProjeto).Methods(http.MethodGet)
	router.HandleFunc(fmt.Sprintf("%s/projeto/{id:[0-9]+}/tarefas/", prefix), projetoController.GetProjetoTarefas).Methods(http.MethodGet)
	router.Handle(fmt.Sprintf("%s/projeto/{id:[0-9]+}/criar-tarefa/", prefix), requireAuth(http.HandlerFunc(projetoController.CreateOneTarefa))).Methods(http.MethodPost)

	// Usuario Endpoints
	router.HandleFunc(fmt.Sprintf("%s/usuario/cadastro/", prefix), usuarioController.Cadastro).Methods(http.MethodPost)
	router.HandleFunc(fmt.Sprintf("%s/usuario/login/", prefix), usuarioController.Login).Methods(http.MethodPost)
	router.HandleFunc(fmt.Sprintf("%s/usuario/login/refresh/", prefix), usuarioController.Refresh).Methods(http.MethodPost)

	// Healthcheck Endpoint
	router.HandleFunc(fmt.Sprintf("%s/healthcheck/", prefix), healthCheckController.HealthCheck).Methods(http.MethodGet)

	return httpLogger.Handler(router, os.Stderr, httpLogger.CombineLoggerType)
}

// Start this will start the http server and block until ctx is cancelled
func Start(ctx context.Context) error {
	configs := config.NewProjetosConfig().GetConfigurations()
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "projetos",
		Level: hclog.LevelFromString(configs.LogLevel),
	})

	projetosSecrets := secrets.NewProjetosSecrets(afero.NewOsFs(), ".")
	serv, err := service.NewService(ctx, logger, configs, projetosSecrets)
	if err != nil {
		return err
	}
	defer serv.DataStore.Close()

	httpServer := &http.Server{
		Addr:    configs.ListenAddress(),
		Handler: NewRouter(logger, configs, serv),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server is running", "address", httpServer.Addr, "prefix", configs.APIPrefix)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start http-server: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
