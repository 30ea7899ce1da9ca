package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"projetos/pkg/client"
	"projetos/pkg/models"
)

const UnreachableMessage = `Não foi possível conectar com o servidor. Execute "projetos start" ou ajuste a variável de ambiente API_BASE.`

// Runner executes one cli command against the api and prints the outcome to Out.
// Handled failures are printed and reported as nil.
type Runner struct {
	Out    io.Writer
	Client *client.Client
	Tokens client.TokenStore
}

func (runner *Runner) List(ctx context.Context, asTable bool) error {
	res, err := runner.Client.ListProjetos(ctx)
	if err != nil {
		return runner.handleError(err, "Erro HTTP")
	}

	projetos := []models.ProjetoBasic{}
	if err := json.Unmarshal(res.Body, &projetos); err != nil {
		runner.printPayload(res.Body)
		return nil
	}

	if asTable {
		t := table.NewWriter()
		t.SetOutputMirror(runner.Out)
		t.AppendHeader(table.Row{"ID", "Nome", "Descrição"})
		for _, projeto := range projetos {
			t.AppendRow(table.Row{projeto.ID, projeto.Nome, projeto.Descricao})
		}
		t.Render()
		return nil
	}

	for _, projeto := range projetos {
		fmt.Fprintf(runner.Out, "%d: %s - %s\n", projeto.ID, projeto.Nome, projeto.Descricao)
	}
	return nil
}

func (runner *Runner) Detail(ctx context.Context, id int64) error {
	res, err := runner.Client.GetProjeto(ctx, id)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			fmt.Fprintln(runner.Out, "Projeto não encontrado")
			return nil
		}
		return runner.handleError(err, "Erro HTTP")
	}

	runner.printIndented(res.Body)
	return nil
}

func (runner *Runner) Create(ctx context.Context, nome, descricao string) error {
	res, err := runner.Client.CreateProjeto(ctx, models.ProjetoInput{Nome: nome, Descricao: descricao})
	if err != nil {
		return runner.handleError(err, "Erro ao criar projeto")
	}

	fmt.Fprintln(runner.Out, "Projeto criado:")
	runner.printIndented(res.Body)
	return nil
}

func (runner *Runner) Tarefa(ctx context.Context, projetoID int64, titulo, descricao string, prioridade int) error {
	res, err := runner.Client.CreateTarefa(ctx, projetoID, models.TarefaInput{
		Titulo:     titulo,
		Descricao:  descricao,
		Prioridade: &prioridade,
	})
	if err != nil {
		return runner.handleError(err, "Erro ao criar tarefa")
	}

	fmt.Fprintln(runner.Out, "Tarefa criada:")
	runner.printIndented(res.Body)
	return nil
}

func (runner *Runner) Register(ctx context.Context, username, password, email string) error {
	res, err := runner.Client.Register(ctx, models.CadastroInput{
		Username: username,
		Password: password,
		Email:    email,
	})
	if err != nil {
		return runner.handleError(err, "Erro ao cadastrar usuário")
	}

	fmt.Fprintln(runner.Out, "Usuário cadastrado")
	runner.printPayload(res.Body)
	return nil
}

// Login saves the access token on success. Nothing is written on failure.
func (runner *Runner) Login(ctx context.Context, username, password string) error {
	res, err := runner.Client.Login(ctx, models.LoginInput{Username: username, Password: password})
	if err != nil {
		return runner.handleError(err, "Falha ao autenticar")
	}

	pair := models.TokenPair{}
	if err := json.Unmarshal(res.Body, &pair); err != nil || pair.Access == "" {
		fmt.Fprintln(runner.Out, "Token não recebido")
		runner.printPayload(res.Body)
		return nil
	}

	if err := runner.Tokens.Save(pair.Access); err != nil {
		return err
	}
	fmt.Fprintln(runner.Out, "Token salvo em .token")
	return nil
}

// handleError prints transport and status failures. Anything else is returned.
func (runner *Runner) handleError(err error, prefix string) error {
	if errors.Is(err, client.ErrUnreachable) {
		fmt.Fprintln(runner.Out, UnreachableMessage)
		return nil
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(runner.Out, prefix, apiErr.Status)
		runner.printPayload(apiErr.Body)
		return nil
	}
	return err
}

// printPayload prints a JSON body compactly and anything else as received
func (runner *Runner) printPayload(body []byte) {
	compact := bytes.Buffer{}
	if err := json.Compact(&compact, body); err != nil {
		fmt.Fprintln(runner.Out, strings.TrimRight(string(body), "\n"))
		return
	}
	fmt.Fprintln(runner.Out, compact.String())
}

// printIndented prints a JSON body with two space indentation, keeping key order
func (runner *Runner) printIndented(body []byte) {
	indented := bytes.Buffer{}
	if err := json.Indent(&indented, bytes.TrimSpace(body), "", "  "); err != nil {
		runner.printPayload(body)
		return
	}
	fmt.Fprintln(runner.Out, indented.String())
}
