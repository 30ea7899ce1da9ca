package models

import "time"

// ProjetoBasic is the minimal projection used by list, retrieve and create.
type ProjetoBasic struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

// ProjetoDetail is every projeto field plus the tasks it owns.
type ProjetoDetail struct {
	ID           int64      `json:"id"`
	Nome         string     `json:"nome"`
	Descricao    string     `json:"descricao"`
	DtaInicio    time.Time  `json:"dtainicio"`
	DtaConclusao *time.Time `json:"dtaconclusao"`
	Tarefas      []Tarefa   `json:"tarefas"`
}

func (projeto *Projeto) Basic() ProjetoBasic {
	return ProjetoBasic{
		ID:        projeto.ID,
		Nome:      projeto.Nome,
		Descricao: projeto.Descricao,
	}
}

func (projeto *Projeto) Detail(tarefas []Tarefa) ProjetoDetail {
	if tarefas == nil {
		tarefas = []Tarefa{}
	}
	return ProjetoDetail{
		ID:           projeto.ID,
		Nome:         projeto.Nome,
		Descricao:    projeto.Descricao,
		DtaInicio:    projeto.DtaInicio,
		DtaConclusao: projeto.DtaConclusao,
		Tarefas:      tarefas,
	}
}

// BasicList maps projetos to their basic view. The result is never nil so it
// encodes as [] rather than null.
func BasicList(projetos []Projeto) []ProjetoBasic {
	basics := make([]ProjetoBasic, 0, len(projetos))
	for i := range projetos {
		basics = append(basics, projetos[i].Basic())
	}
	return basics
}
