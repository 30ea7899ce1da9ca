package models

import (
	"strings"
	"time"
)

// Tarefa is a task owned by exactly one Projeto.
type Tarefa struct {
	ID           int64      `json:"id"`
	Titulo       string     `json:"titulo"`
	Descricao    string     `json:"descricao"`
	Projeto      int64      `json:"projeto"`
	Concluida    bool       `json:"concluida"`
	DtaInicio    time.Time  `json:"dtainicio"`
	DtaConclusao *time.Time `json:"dtaconclusao"`
	Prioridade   int        `json:"prioridade"`
}

// TarefaInput is the body accepted when creating a task. Older clients send the
// title as "nome"; it is used only when "titulo" is absent.
type TarefaInput struct {
	Titulo     string `json:"titulo" validate:"required,max=255" fake:"{sentence:3}"`
	Nome       string `json:"nome,omitempty" validate:"-" fake:"skip"`
	Descricao  string `json:"descricao" fake:"{sentence:8}"`
	Prioridade *int   `json:"prioridade" validate:"required" fake:"{number:1,5}"`
	Concluida  *bool  `json:"concluida,omitempty" fake:"skip"`
}

// Normalize trims surrounding whitespace and folds the legacy "nome" key into Titulo.
func (input *TarefaInput) Normalize() {
	input.Titulo = strings.TrimSpace(input.Titulo)
	input.Descricao = strings.TrimSpace(input.Descricao)
	if nome := strings.TrimSpace(input.Nome); input.Titulo == "" && nome != "" {
		input.Titulo = nome
	}
	input.Nome = ""
}
