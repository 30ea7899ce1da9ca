package usuario

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-sqlite3"
	"projetos/pkg/constants"
	"projetos/pkg/db"
	"projetos/pkg/models"
	"projetos/pkg/utils"
)

const DuplicateUsernameMessage = "A user with that username already exists."

type UsuarioRepo interface {
	CreateOne(ctx context.Context, usuario *models.Usuario) (int64, *utils.GenericError)
	GetOneByUsername(ctx context.Context, usuario *models.Usuario) *utils.GenericError
	GetOneByID(ctx context.Context, usuario *models.Usuario) *utils.GenericError
}

type usuarioRepo struct {
	dataStore db.DataStore
	logger    hclog.Logger
}

func NewUsuarioRepo(logger hclog.Logger, dataStore db.DataStore) UsuarioRepo {
	return &usuarioRepo{
		dataStore: dataStore,
		logger:    logger.Named("usuario-repo"),
	}
}

// CreateOne stores the usuario. A taken username is reported as a validation error.
func (repo *usuarioRepo) CreateOne(ctx context.Context, usuario *models.Usuario) (int64, *utils.GenericError) {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	usuario.DateJoined = time.Now().UTC()
	res, err := sq.Insert(constants.UsuariosTableName).
		Columns(
			constants.UsuariosUsernameColumn,
			constants.UsuariosEmailColumn,
			constants.UsuariosPasswordColumn,
			constants.UsuariosDateJoinedColumn,
		).
		Values(
			usuario.Username,
			usuario.Email,
			usuario.PasswordHash,
			utils.FormatTime(usuario.DateJoined),
		).
		RunWith(conn).
		ExecContext(ctx)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return -1, utils.ValidationError(map[string][]string{
				"username": {DuplicateUsernameMessage},
			})
		}
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return -1, utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}
	usuario.ID = insertedID

	repo.logger.Debug("created usuario", "id", insertedID)
	return insertedID, nil
}

// GetOneByUsername fills usuario from the row matching usuario.Username
func (repo *usuarioRepo) GetOneByUsername(ctx context.Context, usuario *models.Usuario) *utils.GenericError {
	return repo.getOne(ctx, constants.UsuariosUsernameColumn, usuario.Username, usuario)
}

// GetOneByID fills usuario from the row matching usuario.ID
func (repo *usuarioRepo) GetOneByID(ctx context.Context, usuario *models.Usuario) *utils.GenericError {
	return repo.getOne(ctx, constants.UsuariosIdColumn, usuario.ID, usuario)
}

func (repo *usuarioRepo) getOne(ctx context.Context, column string, value interface{}, usuario *models.Usuario) *utils.GenericError {
	conn, err := repo.dataStore.OpenConnection()
	if err != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	var dateJoined string
	err = sq.Select(
		constants.UsuariosIdColumn,
		constants.UsuariosUsernameColumn,
		constants.UsuariosEmailColumn,
		constants.UsuariosPasswordColumn,
		fmt.Sprintf("cast(\"%s\" as text)", constants.UsuariosDateJoinedColumn),
	).
		From(constants.UsuariosTableName).
		Where(fmt.Sprintf("%s = ?", column), value).
		RunWith(conn).
		QueryRowContext(ctx).
		Scan(
			&usuario.ID,
			&usuario.Username,
			&usuario.Email,
			&usuario.PasswordHash,
			&dateJoined,
		)
	if err != nil {
		if err == sql.ErrNoRows {
			return utils.NotFoundError()
		}
		return utils.HTTPGenericError(http.StatusInternalServerError, err.Error())
	}

	t, errParse := dateparse.ParseIn(dateJoined, time.UTC)
	if errParse != nil {
		return utils.HTTPGenericError(http.StatusInternalServerError, fmt.Sprintf("%s dataString: %s", errParse.Error(), dateJoined))
	}
	usuario.DateJoined = t
	return nil
}
