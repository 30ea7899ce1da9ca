package projeto

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"projetos/pkg/models"
	projetoRepo "projetos/pkg/repository/projeto"
	tarefaRepo "projetos/pkg/repository/tarefa"
	"projetos/pkg/utils"
)

// ProjetoService is the layer on top of the projeto and tarefa repos
type ProjetoService interface {
	CreateOne(ctx context.Context, input models.ProjetoInput) (*models.Projeto, *utils.GenericError)
	GetOneByID(ctx context.Context, projeto *models.Projeto) *utils.GenericError
	GetDetail(ctx context.Context, id int64) (*models.ProjetoDetail, *utils.GenericError)
	List(ctx context.Context) ([]models.Projeto, *utils.GenericError)
	DeleteOneByID(ctx context.Context, id int64) *utils.GenericError
	CreateTarefa(ctx context.Context, projetoID int64, input models.TarefaInput) (*models.Tarefa, *utils.GenericError)
}

type projetoService struct {
	projetoRepo projetoRepo.ProjetoRepo
	tarefaRepo  tarefaRepo.TarefaRepo
	logger      hclog.Logger
}

func NewProjetoService(logger hclog.Logger, projetoRepo projetoRepo.ProjetoRepo, tarefaRepo tarefaRepo.TarefaRepo) ProjetoService {
	return &projetoService{
		projetoRepo: projetoRepo,
		tarefaRepo:  tarefaRepo,
		logger:      logger.Named("projeto-service"),
	}
}

// CreateOne creates a new projeto
func (service *projetoService) CreateOne(ctx context.Context, input models.ProjetoInput) (*models.Projeto, *utils.GenericError) {
	projeto := models.Projeto{
		Nome:      input.Nome,
		Descricao: input.Descricao,
	}
	if _, err := service.projetoRepo.CreateOne(ctx, &projeto); err != nil {
		service.logger.Error("failed to create projeto", "error", err.Error())
		return nil, err
	}
	return &projeto, nil
}

func (service *projetoService) GetOneByID(ctx context.Context, projeto *models.Projeto) *utils.GenericError {
	return service.projetoRepo.GetOneByID(ctx, projeto)
}

// GetDetail returns the projeto with its tarefas in insertion order
func (service *projetoService) GetDetail(ctx context.Context, id int64) (*models.ProjetoDetail, *utils.GenericError) {
	projeto := models.Projeto{ID: id}
	if err := service.projetoRepo.GetOneByID(ctx, &projeto); err != nil {
		return nil, err
	}

	tarefas, err := service.tarefaRepo.ListByProjetoID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := projeto.Detail(tarefas)
	return &detail, nil
}

func (service *projetoService) List(ctx context.Context) ([]models.Projeto, *utils.GenericError) {
	return service.projetoRepo.List(ctx)
}

// DeleteOneByID deletes a projeto and every tarefa it owns
func (service *projetoService) DeleteOneByID(ctx context.Context, id int64) *utils.GenericError {
	_, err := service.projetoRepo.DeleteOneByID(ctx, id)
	if err != nil {
		return err
	}
	service.logger.Info("deleted projeto", "id", id)
	return nil
}

// CreateTarefa adds a tarefa to the projeto. The owner is forced to projetoID whatever the input says.
func (service *projetoService) CreateTarefa(ctx context.Context, projetoID int64, input models.TarefaInput) (*models.Tarefa, *utils.GenericError) {
	input.Normalize()
	tarefa := models.Tarefa{
		Titulo:    input.Titulo,
		Descricao: input.Descricao,
		Projeto:   projetoID,
	}
	if input.Prioridade != nil {
		tarefa.Prioridade = *input.Prioridade
	}
	if input.Concluida != nil {
		tarefa.Concluida = *input.Concluida
	}

	if _, err := service.tarefaRepo.CreateOne(ctx, &tarefa); err != nil {
		return nil, err
	}
	return &tarefa, nil
}
