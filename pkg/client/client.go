package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"projetos/pkg/constants/headers"
	"projetos/pkg/models"
)

// ErrUnreachable is returned when the request never got a response from the server.
var ErrUnreachable = errors.New("api server is unreachable")

// APIError is a response outside the 2xx range
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, strings.TrimSpace(string(e.Body)))
}

// Response is a 2xx response
type Response struct {
	Status int
	Body   []byte
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenStore) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

func (c *Client) ListProjetos(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/projeto/", nil, false)
}

func (c *Client) GetProjeto(ctx context.Context, id int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/projeto/%d/", id), nil, false)
}

func (c *Client) CreateProjeto(ctx context.Context, input models.ProjetoInput) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/projeto/", input, true)
}

func (c *Client) CreateTarefa(ctx context.Context, projetoID int64, input models.TarefaInput) (*Response, error) {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/projeto/%d/criar-tarefa/", projetoID), input, true)
}

func (c *Client) Register(ctx context.Context, input models.CadastroInput) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/usuario/cadastro/", input, false)
}

func (c *Client) Login(ctx context.Context, input models.LoginInput) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/usuario/login/", input, false)
}

// do sends one request. When authenticated is set and a token is stored it is sent as a bearer token.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}, authenticated bool) (*Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set(headers.ContentTypeHeader, headers.JSONContentType)
	}

	if authenticated && c.tokens != nil {
		token, err := c.tokens.Load()
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set(headers.AuthorizationHeader, headers.BearerPrefix+token)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{Status: res.StatusCode, Body: data}
	}
	return &Response{Status: res.StatusCode, Body: data}, nil
}
