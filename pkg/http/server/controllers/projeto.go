package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"projetos/pkg/models"
	"projetos/pkg/service/projeto"
	"projetos/pkg/utils"
)

type projetoController struct {
	projetoService projeto.ProjetoService
	logger         hclog.Logger
}

type ProjetoHTTPController interface {
	ListProjetos(w http.ResponseWriter, r *http.Request)
	CreateOneProjeto(w http.ResponseWriter, r *http.Request)
	GetOneProjeto(w http.ResponseWriter, r *http.Request)
	GetProjetoTarefas(w http.ResponseWriter, r *http.Request)
	CreateOneTarefa(w http.ResponseWriter, r *http.Request)
}

func NewProjetoController(logger hclog.Logger, projetoService projeto.ProjetoService) ProjetoHTTPController {
	return &projetoController{
		projetoService: projetoService,
		logger:         logger.Named("projeto-controller"),
	}
}

func (controller *projetoController) ListProjetos(w http.ResponseWriter, r *http.Request) {
	projetos, err := controller.projetoService.List(r.Context())
	if err != nil {
		controller.logger.Error("failed to list projetos", "error", err.Error())
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, models.BasicList(projetos), http.StatusOK, nil)
}

func (controller *projetoController) CreateOneProjeto(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ExtractBody(r)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	input := models.ProjetoInput{}
	if err := models.DecodeInput(body, &input); err != nil {
		utils.SendError(w, err)
		return
	}

	projeto, err := controller.projetoService.CreateOne(r.Context(), input)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, projeto.Basic(), http.StatusCreated, nil)
}

func (controller *projetoController) GetOneProjeto(w http.ResponseWriter, r *http.Request) {
	projetoID, convertErr := projetoIDFromPath(r)
	if convertErr != nil {
		utils.SendError(w, convertErr)
		return
	}

	projeto := models.Projeto{ID: projetoID}
	if err := controller.projetoService.GetOneByID(r.Context(), &projeto); err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, projeto.Basic(), http.StatusOK, nil)
}

func (controller *projetoController) GetProjetoTarefas(w http.ResponseWriter, r *http.Request) {
	projetoID, convertErr := projetoIDFromPath(r)
	if convertErr != nil {
		utils.SendError(w, convertErr)
		return
	}

	detail, err := controller.projetoService.GetDetail(r.Context(), projetoID)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, detail, http.StatusOK, nil)
}

func (controller *projetoController) CreateOneTarefa(w http.ResponseWriter, r *http.Request) {
	projetoID, convertErr := projetoIDFromPath(r)
	if convertErr != nil {
		utils.SendError(w, convertErr)
		return
	}

	projeto := models.Projeto{ID: projetoID}
	if err := controller.projetoService.GetOneByID(r.Context(), &projeto); err != nil {
		utils.SendError(w, err)
		return
	}

	body, err := utils.ExtractBody(r)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	input := models.TarefaInput{}
	if err := models.DecodeInput(body, &input); err != nil {
		utils.SendError(w, err)
		return
	}

	tarefa, err := controller.projetoService.CreateTarefa(r.Context(), projetoID, input)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, tarefa, http.StatusCreated, nil)
}

func projetoIDFromPath(r *http.Request) (int64, *utils.GenericError) {
	projetoID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, utils.NotFoundError()
	}
	return projetoID, nil
}
