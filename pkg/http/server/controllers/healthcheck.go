package controllers

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
	"projetos/pkg/db"
	"projetos/pkg/utils"
)

type HealthCheckController interface {
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

type healthCheckController struct {
	dataStore db.DataStore
	logger    hclog.Logger
}

type healthCheckRes struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func NewHealthCheckController(logger hclog.Logger, dataStore db.DataStore) HealthCheckController {
	return &healthCheckController{
		dataStore: dataStore,
		logger:    logger.Named("healthcheck-controller"),
	}
}

func (controller *healthCheckController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	conn, err := controller.dataStore.OpenConnection()
	if err == nil {
		err = conn.PingContext(r.Context())
	}
	if err != nil {
		controller.logger.Error("database is unreachable", "error", err.Error())
		utils.SendJSON(w, healthCheckRes{Status: "unavailable", Database: err.Error()}, http.StatusServiceUnavailable, nil)
		return
	}

	utils.SendJSON(w, healthCheckRes{Status: "ok", Database: "ok"}, http.StatusOK, nil)
}
