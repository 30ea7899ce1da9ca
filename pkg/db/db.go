package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
	_ "github.com/mattn/go-sqlite3"
)

type sqlLiteDb struct {
	dbFilePath string
	logger     hclog.Logger
	mu         sync.Mutex
	conn       *sql.DB
}

type DataStore interface {
	OpenConnection() (*sql.DB, error)
	RunMigration(ctx context.Context) error
	Close() error
}

func NewSqliteDbConnection(logger hclog.Logger, dbFilePath string) DataStore {
	return &sqlLiteDb{
		dbFilePath: dbFilePath,
		logger:     logger.Named("sqlite-db"),
	}
}

// OpenConnection opens the database once and returns the shared pool.
// Foreign keys are switched on for every connection so cascades apply.
func (db *sqlLiteDb) OpenConnection() (*sql.DB, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conn != nil {
		return db.conn, nil
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", db.dbFilePath))
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers; a single connection avoids SQLITE_BUSY between them
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", db.dbFilePath, err)
	}

	db.logger.Debug("opened database", "path", db.dbFilePath)
	db.conn = conn
	return db.conn, nil
}

func (db *sqlLiteDb) RunMigration(ctx context.Context) error {
	conn, err := db.OpenConnection()
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, GetSetupSQL()); err != nil {
		return fmt.Errorf("migrate %s: %w", db.dbFilePath, err)
	}

	db.logger.Debug("migrated database", "path", db.dbFilePath)
	return nil
}

func (db *sqlLiteDb) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conn == nil {
		return nil
	}
	err := db.conn.Close()
	db.conn = nil
	return err
}

func GetSetupSQL() string {
	return `
CREATE TABLE IF NOT EXISTS projetos
(
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    nome         TEXT     NOT NULL,
    descricao    TEXT     NOT NULL,
    dtainicio    datetime NOT NULL,
    dtaconclusao datetime
);

CREATE TABLE IF NOT EXISTS tarefas
(
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    titulo       TEXT     NOT NULL,
    descricao    TEXT     NOT NULL DEFAULT '',
    projeto_id   INTEGER  NOT NULL,
    concluida    boolean  NOT NULL DEFAULT 0,
    dtainicio    datetime NOT NULL,
    dtaconclusao datetime,
    prioridade   INTEGER  NOT NULL,
    FOREIGN KEY (projeto_id)
        REFERENCES projetos (id)
        ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS tarefas_projeto_id_idx ON tarefas (projeto_id);

CREATE TABLE IF NOT EXISTS usuarios
(
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    username      TEXT     NOT NULL UNIQUE,
    email         TEXT     NOT NULL DEFAULT '',
    password_hash TEXT     NOT NULL,
    date_joined   datetime NOT NULL
);
`
}
