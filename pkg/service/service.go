package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"projetos/pkg/config"
	"projetos/pkg/db"
	projetoRepo "projetos/pkg/repository/projeto"
	tarefaRepo "projetos/pkg/repository/tarefa"
	usuarioRepo "projetos/pkg/repository/usuario"
	"projetos/pkg/secrets"
	"projetos/pkg/service/identity"
	"projetos/pkg/service/projeto"
)

type Service struct {
	DataStore        db.DataStore
	ProjetoService   projeto.ProjetoService
	IdentityProvider identity.Provider
}

// NewService opens and migrates the database and wires the repositories into
// the services the http layer depends on.
func NewService(ctx context.Context, logger hclog.Logger, configs *config.ProjetosConfigurations, projetosSecrets secrets.ProjetosSecrets) (*Service, error) {
	logger.Info("Setting Up Services")

	credentials, err := projetosSecrets.GetSecrets()
	if err != nil {
		return nil, err
	}

	dataStore := db.NewSqliteDbConnection(logger, configs.DatabasePath)
	if err := dataStore.RunMigration(ctx); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	//repository
	projetoRepository := projetoRepo.NewProjetoRepo(logger, dataStore)
	tarefaRepository := tarefaRepo.NewTarefaRepo(logger, dataStore)
	usuarioRepository := usuarioRepo.NewUsuarioRepo(logger, dataStore)

	//services
	projetoService := projeto.NewProjetoService(logger, projetoRepository, tarefaRepository)
	identityProvider := identity.NewIdentityProvider(
		logger,
		usuarioRepository,
		[]byte(credentials.SecretKey),
		identity.TokenLifetimes{
			Access:  configs.AccessTokenTTL(),
			Refresh: configs.RefreshTokenTTL(),
		},
	)

	return &Service{
		DataStore:        dataStore,
		ProjetoService:   projetoService,
		IdentityProvider: identityProvider,
	}, nil
}
