package controllers_test

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"projetos/pkg/http/server/controllers"
	"projetos/pkg/models"
)

var _ = Describe("Usuario Controller", func() {
	var env *testEnv
	var router *mux.Router

	BeforeEach(func() {
		env = newTestEnv()
		controller := controllers.NewUsuarioController(env.logger, env.provider)
		router = mux.NewRouter()
		router.HandleFunc("/usuario/cadastro/", controller.Cadastro).Methods(http.MethodPost)
		router.HandleFunc("/usuario/login/", controller.Login).Methods(http.MethodPost)
		router.HandleFunc("/usuario/login/refresh/", controller.Refresh).Methods(http.MethodPost)
	})

	AfterEach(func() {
		env.close()
	})

	It("Registers a usuario without echoing the password", func() {
		w := serve(router, http.MethodPost, "/usuario/cadastro/", `{"username":"ana","password":"s3cret","email":"ana@example.com"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Body.String()).To(MatchJSON(`{"id":1,"username":"ana","email":"ana@example.com"}`))
	})

	It("Cannot register the same username twice", func() {
		w := serve(router, http.MethodPost, "/usuario/cadastro/", `{"username":"ana","password":"s3cret"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		w = serve(router, http.MethodPost, "/usuario/cadastro/", `{"username":"ana","password":"other"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"username":["A user with that username already exists."]}`))
	})

	It("Requires username and password on registration", func() {
		w := serve(router, http.MethodPost, "/usuario/cadastro/", `{"email":"ana@example.com"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"username":["This field is required."],"password":["This field is required."]}`))
	})

	It("Rejects usernames outside the allowed characters", func() {
		w := serve(router, http.MethodPost, "/usuario/cadastro/", `{"username":"a b","password":"s3cret"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"username":["Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."]}`))

		w = serve(router, http.MethodPost, "/usuario/cadastro/", `{"username":" ","password":""}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"username":["This field may not be blank."],"password":["This field may not be blank."]}`))
	})

	It("Logs in and refreshes the access token", func() {
		serve(router, http.MethodPost, "/usuario/cadastro/", `{"username":"ana","password":"s3cret"}`)

		w := serve(router, http.MethodPost, "/usuario/login/", `{"username":"ana","password":"s3cret"}`)
		Expect(w.Code).To(Equal(http.StatusOK))
		pair := models.TokenPair{}
		Expect(json.Unmarshal(w.Body.Bytes(), &pair)).To(Succeed())
		Expect(pair.Access).NotTo(BeEmpty())
		Expect(pair.Refresh).NotTo(BeEmpty())

		w = serve(router, http.MethodPost, "/usuario/login/refresh/", `{"refresh":"`+pair.Refresh+`"}`)
		Expect(w.Code).To(Equal(http.StatusOK))
		access := map[string]string{}
		Expect(json.Unmarshal(w.Body.Bytes(), &access)).To(Succeed())
		Expect(access).To(HaveKey("access"))
		Expect(access).NotTo(HaveKey("refresh"))
	})

	It("Rejects wrong credentials", func() {
		serve(router, http.MethodPost, "/usuario/cadastro/", `{"username":"ana","password":"s3cret"}`)

		w := serve(router, http.MethodPost, "/usuario/login/", `{"username":"ana","password":"wrong"}`)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(MatchJSON(`{"detail":"No active account found with the given credentials"}`))

		w = serve(router, http.MethodPost, "/usuario/login/", `{"username":"ana"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("Rejects an invalid refresh token", func() {
		w := serve(router, http.MethodPost, "/usuario/login/refresh/", `{"refresh":"garbage"}`)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(MatchJSON(`{"detail":"Token is invalid or expired","code":"token_not_valid"}`))
	})
})
