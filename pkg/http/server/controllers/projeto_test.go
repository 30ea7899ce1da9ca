package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"projetos/pkg/http/server/controllers"
	"projetos/pkg/models"
)

var _ = Describe("Projeto Controller", func() {
	var env *testEnv
	var router *mux.Router

	BeforeEach(func() {
		env = newTestEnv()
		controller := controllers.NewProjetoController(env.logger, env.projetoService)
		router = mux.NewRouter()
		router.HandleFunc("/projeto/", controller.ListProjetos).Methods(http.MethodGet)
		router.HandleFunc("/projeto/", controller.CreateOneProjeto).Methods(http.MethodPost)
		router.HandleFunc("/projeto/{id}/", controller.GetOneProjeto).Methods(http.MethodGet)
		router.HandleFunc("/projeto/{id}/tarefas/", controller.GetProjetoTarefas).Methods(http.MethodGet)
		router.HandleFunc("/projeto/{id}/criar-tarefa/", controller.CreateOneTarefa).Methods(http.MethodPost)
	})

	AfterEach(func() {
		env.close()
	})

	createProjeto := func(nome, descricao string) models.ProjetoBasic {
		w := serve(router, http.MethodPost, "/projeto/", fmt.Sprintf(`{"nome":%q,"descricao":%q}`, nome, descricao))
		Expect(w.Code).To(Equal(http.StatusCreated))
		created := models.ProjetoBasic{}
		Expect(json.Unmarshal(w.Body.Bytes(), &created)).To(Succeed())
		return created
	}

	It("Lists no projetos as an empty array", func() {
		w := serve(router, http.MethodGet, "/projeto/", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})

	It("Creates a projeto and returns the basic view", func() {
		w := serve(router, http.MethodPost, "/projeto/", `{"nome":"Site","descricao":"Novo site"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).To(MatchJSON(`{"id":1,"nome":"Site","descricao":"Novo site"}`))

		w = serve(router, http.MethodGet, "/projeto/", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`[{"id":1,"nome":"Site","descricao":"Novo site"}]`))
	})

	It("Cannot create a projeto without nome and descricao", func() {
		w := serve(router, http.MethodPost, "/projeto/", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"nome":["This field is required."],"descricao":["This field is required."]}`))

		w = serve(router, http.MethodGet, "/projeto/", "")
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})

	It("Rejects blank nome and descricao", func() {
		w := serve(router, http.MethodPost, "/projeto/", `{"nome":"   ","descricao":"  "}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"nome":["This field may not be blank."],"descricao":["This field may not be blank."]}`))

		w = serve(router, http.MethodPost, "/projeto/", `{"nome":""}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"nome":["This field may not be blank."],"descricao":["This field is required."]}`))

		w = serve(router, http.MethodGet, "/projeto/", "")
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})

	It("Rejects a body that is not an object", func() {
		w := serve(router, http.MethodPost, "/projeto/", `["Site"]`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"non_field_errors":["Invalid data. Expected a dictionary, but got list."]}`))
	})

	It("Returns one projeto by id", func() {
		created := createProjeto("Site", "Novo site")

		w := serve(router, http.MethodGet, fmt.Sprintf("/projeto/%d/", created.ID), "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"id":1,"nome":"Site","descricao":"Novo site"}`))
	})

	It("Returns 404 for a missing projeto", func() {
		w := serve(router, http.MethodGet, "/projeto/99/", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(MatchJSON(`{"detail":"Not found."}`))

		w = serve(router, http.MethodGet, "/projeto/99/tarefas/", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("Returns the detail view with an empty tarefas array", func() {
		before := time.Now().UTC().Add(-time.Second)
		created := createProjeto("Site", "Novo site")

		w := serve(router, http.MethodGet, fmt.Sprintf("/projeto/%d/tarefas/", created.ID), "")
		Expect(w.Code).To(Equal(http.StatusOK))

		detail := map[string]interface{}{}
		Expect(json.Unmarshal(w.Body.Bytes(), &detail)).To(Succeed())
		Expect(detail["tarefas"]).To(Equal([]interface{}{}))
		Expect(detail["dtaconclusao"]).To(BeNil())

		dtaInicio, err := time.Parse(time.RFC3339Nano, detail["dtainicio"].(string))
		Expect(err).To(BeNil())
		Expect(dtaInicio.Before(before)).To(BeFalse())
	})

	It("Creates tarefas and nests them in the detail view", func() {
		created := createProjeto("Site", "Novo site")

		for i := 0; i < 3; i++ {
			w := serve(router, http.MethodPost, fmt.Sprintf("/projeto/%d/criar-tarefa/", created.ID),
				fmt.Sprintf(`{"titulo":"Tarefa %d","descricao":"d","prioridade":%d}`, i, i))
			Expect(w.Code).To(Equal(http.StatusCreated))

			tarefa := models.Tarefa{}
			Expect(json.Unmarshal(w.Body.Bytes(), &tarefa)).To(Succeed())
			Expect(tarefa.Projeto).To(Equal(created.ID))
			Expect(tarefa.Prioridade).To(Equal(i))
			Expect(tarefa.Concluida).To(BeFalse())
		}

		w := serve(router, http.MethodGet, fmt.Sprintf("/projeto/%d/tarefas/", created.ID), "")
		Expect(w.Code).To(Equal(http.StatusOK))
		detail := models.ProjetoDetail{}
		Expect(json.Unmarshal(w.Body.Bytes(), &detail)).To(Succeed())
		Expect(detail.Tarefas).To(HaveLen(3))
		for i, tarefa := range detail.Tarefas {
			Expect(tarefa.Titulo).To(Equal(fmt.Sprintf("Tarefa %d", i)))
			Expect(tarefa.Projeto).To(Equal(created.ID))
		}
	})

	It("Accepts nome as the tarefa title", func() {
		created := createProjeto("Site", "Novo site")

		w := serve(router, http.MethodPost, fmt.Sprintf("/projeto/%d/criar-tarefa/", created.ID),
			`{"nome":"Revisar","descricao":"layout","prioridade":1}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		tarefa := models.Tarefa{}
		Expect(json.Unmarshal(w.Body.Bytes(), &tarefa)).To(Succeed())
		Expect(tarefa.Titulo).To(Equal("Revisar"))
	})

	It("Checks the projeto before validating the tarefa", func() {
		w := serve(router, http.MethodPost, "/projeto/7/criar-tarefa/", `{}`)
		Expect(w.Code).To(Equal(http.StatusNotFound))

		created := createProjeto("Site", "Novo site")
		w = serve(router, http.MethodPost, fmt.Sprintf("/projeto/%d/criar-tarefa/", created.ID), `{"titulo":"x","prioridade":"alta"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"prioridade":["A valid integer is required."]}`))

		detail, err := env.projetoService.GetDetail(context.Background(), created.ID)
		Expect(err).To(BeNil())
		Expect(detail.Tarefas).To(BeEmpty())
	})
})
