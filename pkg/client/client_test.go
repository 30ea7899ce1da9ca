package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"projetos/pkg/constants"
	"projetos/pkg/models"
)

func Test_Client_ListProjetos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/projeto/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"nome":"Site","descricao":"d"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL+"/api/", time.Second, nil)
	res, err := c.ListProjetos(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `[{"id":1,"nome":"Site","descricao":"d"}]`, string(res.Body))
}

func Test_Client_SendsStoredToken(t *testing.T) {
	var authorization, contentType, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	fs := afero.NewMemMapFs()
	tokens := NewFileTokenStore(fs, constants.TokenFileName)
	assert.Nil(t, tokens.Save("abc"))

	c := NewClient(server.URL, time.Second, tokens)
	res, err := c.CreateProjeto(context.Background(), models.ProjetoInput{Nome: "Site", Descricao: "d"})
	assert.Nil(t, err)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "Bearer abc", authorization)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"nome":"Site","descricao":"d"}`, body)

	_, err = c.Login(context.Background(), models.LoginInput{Username: "ana", Password: "p"})
	assert.Nil(t, err)
	assert.Equal(t, "", authorization)
}

func Test_Client_NoTokenNoHeader(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second, NewFileTokenStore(afero.NewMemMapFs(), constants.TokenFileName))
	_, err := c.CreateProjeto(context.Background(), models.ProjetoInput{Nome: "Site", Descricao: "d"})
	assert.Nil(t, err)
	assert.Equal(t, "", authorization)
}

func Test_Client_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second, nil)
	_, err := c.GetProjeto(context.Background(), 9)

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.JSONEq(t, `{"detail":"Not found."}`, string(apiErr.Body))
}

func Test_Client_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, time.Second, nil)
	_, err := c.ListProjetos(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func Test_FileTokenStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	tokens := NewFileTokenStore(fs, ".token")

	token, err := tokens.Load()
	assert.Nil(t, err)
	assert.Equal(t, "", token)

	assert.Nil(t, tokens.Save("first"))
	assert.Nil(t, tokens.Save("second"))

	data, err := afero.ReadFile(fs, ".token")
	assert.Nil(t, err)
	assert.Equal(t, "second", string(data))

	assert.Nil(t, afero.WriteFile(fs, ".token", []byte("third\n"), 0600))
	token, err = tokens.Load()
	assert.Nil(t, err)
	assert.Equal(t, "third", token)
}
