package tarefa

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"projetos/pkg/constants"
	"projetos/pkg/db"
	"projetos/pkg/models"
	projetoRepo "projetos/pkg/repository/projeto"
	"projetos/pkg/utils"
)

type TarefaRepo interface {
	CreateOne(ctx context.Context, tarefa *models.Tarefa) (int64, *utils.GenericError)
	ListByProjetoID(ctx context.Context, projetoID int64) ([]models.Tarefa, *utils.GenericError)
}

type tarefaRepo struct {
	dataStore db.DataStore
	logger    hclog.Logger
}

func NewTarefaRepo(logger hclog.Logger, dataStore db.DataStore) TarefaRepo {
	return &tarefaRepo{
		dataStore: dataStore,
		logger:    logger.Named("tarefa-repo"),
	}
}

// CreateOne checks the owning projeto and inserts the tarefa in one transaction
func (repo *tarefaRepo) CreateOne(ctx context.Context, tarefa *models.Tarefa) (int64, *utils.GenericError) {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer func() {
		_ = tx.Rollback()
	}()

	projeto := models.Projeto{ID: tarefa.Projeto}
	if getErr := projetoRepo.GetOneByIDTx(ctx, tx, &projeto); getErr != nil {
		return -1, getErr
	}

	tarefa.DtaInicio = time.Now().UTC()
	var dtaConclusao interface{}
	if tarefa.DtaConclusao != nil {
		dtaConclusao = utils.FormatTime(*tarefa.DtaConclusao)
	}

	res, err := sq.Insert(constants.TarefasTableName).
		Columns(
			constants.TarefasTituloColumn,
			constants.TarefasDescricaoColumn,
			constants.TarefasProjetoIdColumn,
			constants.TarefasConcluidaColumn,
			constants.TarefasDtaInicioColumn,
			constants.TarefasDtaConclusaoColumn,
			constants.TarefasPrioridadeColumn,
		).
		Values(
			tarefa.Titulo,
			tarefa.Descricao,
			tarefa.Projeto,
			tarefa.Concluida,
			utils.FormatTime(tarefa.DtaInicio),
			dtaConclusao,
			tarefa.Prioridade,
		).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	if err := tx.Commit(); err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	tarefa.ID = insertedID

	repo.logger.Debug("created tarefa", "id", insertedID, "projeto", tarefa.Projeto)
	return insertedID, nil
}

// ListByProjetoID returns the tarefas owned by a projeto ordered by id
func (repo *tarefaRepo) ListByProjetoID(ctx context.Context, projetoID int64) ([]models.Tarefa, *utils.GenericError) {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	rows, err := sq.Select(
		constants.TarefasIdColumn,
		constants.TarefasTituloColumn,
		constants.TarefasDescricaoColumn,
		constants.TarefasProjetoIdColumn,
		constants.TarefasConcluidaColumn,
		fmt.Sprintf("cast(\"%s\" as text)", constants.TarefasDtaInicioColumn),
		fmt.Sprintf("cast(\"%s\" as text)", constants.TarefasDtaConclusaoColumn),
		constants.TarefasPrioridadeColumn,
	).
		From(constants.TarefasTableName).
		Where(fmt.Sprintf("%s = ?", constants.TarefasProjetoIdColumn), projetoID).
		OrderBy(fmt.Sprintf("%s ASC", constants.TarefasIdColumn)).
		RunWith(conn).
		QueryContext(ctx)
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	tarefas := []models.Tarefa{}
	for rows.Next() {
		tarefa := models.Tarefa{}
		var dtaInicio string
		var dtaConclusao sql.NullString
		err = rows.Scan(
			&tarefa.ID,
			&tarefa.Titulo,
			&tarefa.Descricao,
			&tarefa.Projeto,
			&tarefa.Concluida,
			&dtaInicio,
			&dtaConclusao,
			&tarefa.Prioridade,
		)
		if err != nil {
			return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
		}

		t, errParse := dateparse.ParseIn(dtaInicio, time.UTC)
		if errParse != nil {
			return nil, utils.HTTPGenericError(http.StatusInternalServerError, fmt.Sprintf("%s dataString: %s", errParse.Error(), dtaInicio))
		}
		tarefa.DtaInicio = t

		if dtaConclusao.Valid {
			t, errParse := dateparse.ParseIn(dtaConclusao.String, time.UTC)
			if errParse != nil {
				return nil, utils.HTTPGenericError(http.StatusInternalServerError, fmt.Sprintf("%s dataString: %s", errParse.Error(), dtaConclusao.String))
			}
			tarefa.DtaConclusao = &t
		}

		tarefas = append(tarefas, tarefa)
	}
	if rows.Err() != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	return tarefas, nil
}
