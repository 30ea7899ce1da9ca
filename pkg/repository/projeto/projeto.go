package projeto

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
	"projetos/pkg/utils"
)

type ProjetoRepo interface {
	CreateOne(ctx context.Context, projeto *models.Projeto) (int64, *utils.GenericError)
	GetOneByID(ctx context.Context, projeto *models.Projeto) *utils.GenericError
	List(ctx context.Context) ([]models.Projeto, *utils.GenericError)
	DeleteOneByID(ctx context.Context, id int64) (int64, *utils.GenericError)
}

type projetoRepo struct {
	dataStore db.DataStore
	logger    hclog.Logger
}

func NewProjetoRepo(logger hclog.Logger, dataStore db.DataStore) ProjetoRepo {
	return &projetoRepo{
		dataStore: dataStore,
		logger:    logger.Named("projeto-repo"),
	}
}

// CreateOne inserts the projeto and fills in its id and start date
func (repo *projetoRepo) CreateOne(ctx context.Context, projeto *models.Projeto) (int64, *utils.GenericError) {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	projeto.DtaInicio = time.Now().UTC()
	var dtaConclusao interface{}
	if projeto.DtaConclusao != nil {
		dtaConclusao = utils.FormatTime(*projeto.DtaConclusao)
	}

	insertBuilder := sq.Insert(constants.ProjetosTableName).
		Columns(
			constants.ProjetosNomeColumn,
			constants.ProjetosDescricaoColumn,
			constants.ProjetosDtaInicioColumn,
			constants.ProjetosDtaConclusaoColumn,
		).
		Values(
			projeto.Nome,
			projeto.Descricao,
			utils.FormatTime(projeto.DtaInicio),
			dtaConclusao,
		).
		RunWith(conn)

	res, err := insertBuilder.ExecContext(ctx)
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	projeto.ID = insertedID

	repo.logger.Debug("created projeto", "id", insertedID)
	return insertedID, nil
}

// GetOneByID fills projeto from the row matching projeto.ID
func (repo *projetoRepo) GetOneByID(ctx context.Context, projeto *models.Projeto) *utils.GenericError {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	return GetOneByIDTx(ctx, conn, projeto)
}

// GetOneByIDTx is GetOneByID against an open transaction or connection
func GetOneByIDTx(ctx context.Context, runner sq.BaseRunner, projeto *models.Projeto) *utils.GenericError {
	row := selectProjetos().
		Where(fmt.Sprintf("%s = ?", constants.ProjetosIdColumn), projeto.ID).
		RunWith(runner).
		QueryRowContext(ctx)

	if err := scanProjeto(row, projeto); err != nil {
		if err == sql.ErrNoRows {
			return utils.NotFoundError()
		}
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	return nil
}

// List returns every projeto ordered by id
func (repo *projetoRepo) List(ctx context.Context) ([]models.Projeto, *utils.GenericError) {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	rows, err := selectProjetos().
		OrderBy(fmt.Sprintf("%s ASC", constants.ProjetosIdColumn)).
		RunWith(conn).
		QueryContext(ctx)
	if err != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	defer rows.Close()

	projetos := []models.Projeto{}
	for rows.Next() {
		projeto := models.Projeto{}
		if err := scanProjeto(rows, &projeto); err != nil {
			return nil, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
		}
		projetos = append(projetos, projeto)
	}
	if rows.Err() != nil {
		return nil, utils.HTTPGenericError(http.StatusInternalServerError, rows.Err().Error())
	}

	return projetos, nil
}

// DeleteOneByID removes the projeto. Its tarefas go with it through the foreign key cascade.
func (repo *projetoRepo) DeleteOneByID(ctx context.Context, id int64) (int64, *utils.GenericError) {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	res, err := sq.Delete(constants.ProjetosTableName).
		Where(fmt.Sprintf("%s = ?", constants.ProjetosIdColumn), id).
		RunWith(conn).
		ExecContext(ctx)
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	count, err := res.RowsAffected()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	if count < 1 {
		return -1, utils.NotFoundError()
	}

	repo.logger.Debug("deleted projeto", "id", id)
	return count, nil
}

func selectProjetos() sq.SelectBuilder {
	return sq.Select(
		constants.ProjetosIdColumn,
		constants.ProjetosNomeColumn,
		constants.ProjetosDescricaoColumn,
		fmt.Sprintf("cast(\"%s\" as text)", constants.ProjetosDtaInicioColumn),
		fmt.Sprintf("cast(\"%s\" as text)", constants.ProjetosDtaConclusaoColumn),
	).From(constants.ProjetosTableName)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProjeto(row scanner, projeto *models.Projeto) error {
	var dtaInicio string
	var dtaConclusao sql.NullString
	if err := row.Scan(
		&projeto.ID,
		&projeto.Nome,
		&projeto.Descricao,
		&dtaInicio,
		&dtaConclusao,
	); err != nil {
		return err
	}

	t, err := dateparse.ParseIn(dtaInicio, time.UTC)
	if err != nil {
		return fmt.Errorf("%s dataString: %s", err.Error(), dtaInicio)
	}
	projeto.DtaInicio = t

	projeto.DtaConclusao = nil
	if dtaConclusao.Valid {
		t, err := dateparse.ParseIn(dtaConclusao.String, time.UTC)
		if err != nil {
			return fmt.Errorf("%s dataString: %s", err.Error(), dtaConclusao.String)
		}
		projeto.DtaConclusao = &t
	}
	return nil
}
