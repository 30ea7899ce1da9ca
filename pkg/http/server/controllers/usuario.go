package controllers

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
	"projetos/pkg/models"
	"projetos/pkg/service/identity"
	"projetos/pkg/utils"
)

type usuarioController struct {
	provider identity.Provider
	logger   hclog.Logger
}

type UsuarioHTTPController interface {
	Cadastro(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

func NewUsuarioController(logger hclog.Logger, provider identity.Provider) UsuarioHTTPController {
	return &usuarioController{
		provider: provider,
		logger:   logger.Named("usuario-controller"),
	}
}

func (controller *usuarioController) Cadastro(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ExtractBody(r)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	input := models.CadastroInput{}
	if err := models.DecodeInput(body, &input); err != nil {
		utils.SendError(w, err)
		return
	}

	usuario, err := controller.provider.Register(r.Context(), input)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, usuario.Summary(), http.StatusCreated, nil)
}

func (controller *usuarioController) Login(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ExtractBody(r)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	input := models.LoginInput{}
	if err := models.DecodeInput(body, &input); err != nil {
		utils.SendError(w, err)
		return
	}

	pair, err := controller.provider.IssueTokens(r.Context(), input.Username, input.Password)
	if err != nil {
		controller.logger.Debug("login failed", "username", input.Username, "status", err.Type)
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, pair, http.StatusOK, nil)
}

func (controller *usuarioController) Refresh(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ExtractBody(r)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	input := models.RefreshInput{}
	if err := models.DecodeInput(body, &input); err != nil {
		utils.SendError(w, err)
		return
	}

	access, err := controller.provider.Refresh(r.Context(), input.Refresh)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, access, http.StatusOK, nil)
}
