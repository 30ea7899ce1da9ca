package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	. "github.com/onsi/gomega"
	"projetos/pkg/db"
	projetoRepo "projetos/pkg/repository/projeto"
	tarefaRepo "projetos/pkg/repository/tarefa"
	usuarioRepo "projetos/pkg/repository/usuario"
	"projetos/pkg/service/identity"
	"projetos/pkg/service/projeto"
)

type testEnv struct {
	dir            string
	dataStore      db.DataStore
	projetoService projeto.ProjetoService
	provider       identity.Provider
	logger         hclog.Logger
}

func newTestEnv() *testEnv {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "controllers-test",
		Level: hclog.LevelFromString("ERROR"),
	})

	dir, err := os.MkdirTemp("", "controllers-test")
	Expect(err).To(BeNil())

	dataStore := db.NewSqliteDbConnection(logger, filepath.Join(dir, "projetos.db"))
	Expect(dataStore.RunMigration(context.Background())).To(Succeed())

	return &testEnv{
		dir:       dir,
		dataStore: dataStore,
		projetoService: projeto.NewProjetoService(
			logger,
			projetoRepo.NewProjetoRepo(logger, dataStore),
			tarefaRepo.NewTarefaRepo(logger, dataStore),
		),
		provider: identity.NewIdentityProvider(
			logger,
			usuarioRepo.NewUsuarioRepo(logger, dataStore),
			[]byte("controllers-test-key"),
			identity.TokenLifetimes{Access: time.Minute, Refresh: time.Hour},
		),
		logger: logger,
	}
}

func (env *testEnv) close() {
	_ = env.dataStore.Close()
	_ = os.RemoveAll(env.dir)
}

func serve(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
