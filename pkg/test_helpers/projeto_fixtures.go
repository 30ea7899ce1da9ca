package test_helpers

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"projetos/pkg/constants"
	"projetos/pkg/models"
	"projetos/pkg/utils"
)

func CreateFakeProjetoInputs(n int) []models.ProjetoInput {
	inputs := make([]models.ProjetoInput, 0, n)
	for i := 0; i < n; i++ {
		var input models.ProjetoInput
		gofakeit.Struct(&input)
		inputs = append(inputs, input)
	}
	return inputs
}

func CreateFakeTarefaInput() models.TarefaInput {
	var input models.TarefaInput
	gofakeit.Struct(&input)
	prioridade := gofakeit.Number(1, 5)
	input.Prioridade = &prioridade
	return input
}

func CreateFakeCadastroInput() models.CadastroInput {
	var input models.CadastroInput
	gofakeit.Struct(&input)
	return input
}

func InsertFakeProjetos(n int, conn *sql.DB, t *testing.T) []models.Projeto {
	projetos := make([]models.Projeto, 0, n)
	for _, input := range CreateFakeProjetoInputs(n) {
		projeto := models.Projeto{
			Nome:      input.Nome,
			Descricao: input.Descricao,
			DtaInicio: time.Now().UTC(),
		}
		rs, err := conn.Exec(fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)",
			constants.ProjetosTableName,
			constants.ProjetosNomeColumn,
			constants.ProjetosDescricaoColumn,
			constants.ProjetosDtaInicioColumn,
		), projeto.Nome, projeto.Descricao, utils.FormatTime(projeto.DtaInicio))
		if err != nil {
			t.Fatalf("Failed to insert fake projeto: %v", err)
		}
		id, err := rs.LastInsertId()
		if err != nil {
			t.Fatalf("Failed to insert fake projeto: %v", err)
		}
		projeto.ID = id
		projetos = append(projetos, projeto)
	}
	return projetos
}

func InsertFakeTarefas(n int, projetoID int64, conn *sql.DB, t *testing.T) []models.Tarefa {
	tarefas := make([]models.Tarefa, 0, n)
	for i := 0; i < n; i++ {
		input := CreateFakeTarefaInput()
		tarefa := models.Tarefa{
			Titulo:     input.Titulo,
			Descricao:  input.Descricao,
			Projeto:    projetoID,
			DtaInicio:  time.Now().UTC(),
			Prioridade: *input.Prioridade,
		}
		rs, err := conn.Exec(fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?)",
			constants.TarefasTableName,
			constants.TarefasTituloColumn,
			constants.TarefasDescricaoColumn,
			constants.TarefasProjetoIdColumn,
			constants.TarefasDtaInicioColumn,
			constants.TarefasPrioridadeColumn,
		), tarefa.Titulo, tarefa.Descricao, tarefa.Projeto, utils.FormatTime(tarefa.DtaInicio), tarefa.Prioridade)
		if err != nil {
			t.Fatalf("Failed to insert fake tarefa: %v", err)
		}
		id, err := rs.LastInsertId()
		if err != nil {
			t.Fatalf("Failed to insert fake tarefa: %v", err)
		}
		tarefa.ID = id
		tarefas = append(tarefas, tarefa)
	}
	return tarefas
}
