package models

import (
	"strings"
	"time"
)

// Projeto is a tracked project. It owns its Tarefa records.
type Projeto struct {
	ID           int64      `json:"id"`
	Nome         string     `json:"nome"`
	Descricao    string     `json:"descricao"`
	DtaInicio    time.Time  `json:"dtainicio"`
	DtaConclusao *time.Time `json:"dtaconclusao"`
}

// ProjetoInput is the body accepted when creating a project.
type ProjetoInput struct {
	Nome      string `json:"nome" validate:"required,max=255" fake:"{jobtitle}"`
	Descricao string `json:"descricao" validate:"required" fake:"{sentence:6}"`
}

// Normalize trims surrounding whitespace so blank text fails validation.
func (input *ProjetoInput) Normalize() {
	input.Nome = strings.TrimSpace(input.Nome)
	input.Descricao = strings.TrimSpace(input.Descricao)
}
