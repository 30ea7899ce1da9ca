package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var (
	listAsTable     bool
	createNome      string
	createDescricao string
	tarefaNome      string
	tarefaDescricao string
	tarefaPriority  int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projetos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRunner(cmd).List(cmd.Context(), listAsTable)
	},
}

var DetailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Show one projeto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return newRunner(cmd).Detail(cmd.Context(), id)
	},
}

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a projeto",
	Long: `
Create sends the projeto to the API. The token saved by "projetos login" is
attached when present.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRunner(cmd).Create(cmd.Context(), createNome, createDescricao)
	},
}

var TarefaCmd = &cobra.Command{
	Use:   "tarefa <id>",
	Short: "Create a tarefa in a projeto",
	Long: `
Tarefa creates a task under the projeto with the given id. It needs the token
saved by "projetos login".
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return newRunner(cmd).Tarefa(cmd.Context(), id, tarefaNome, tarefaDescricao, tarefaPriority)
	},
}

func init() {
	ListCmd.Flags().BoolVar(&listAsTable, "table", false, "render projetos as a table")

	CreateCmd.Flags().StringVar(&createNome, "nome", "", "projeto name")
	CreateCmd.Flags().StringVar(&createDescricao, "descricao", "", "projeto description")
	_ = CreateCmd.MarkFlagRequired("nome")
	_ = CreateCmd.MarkFlagRequired("descricao")

	TarefaCmd.Flags().StringVar(&tarefaNome, "nome", "", "tarefa title")
	TarefaCmd.Flags().StringVar(&tarefaDescricao, "descricao", "", "tarefa description")
	TarefaCmd.Flags().IntVar(&tarefaPriority, "prioridade", 0, "tarefa priority")
	_ = TarefaCmd.MarkFlagRequired("nome")
	_ = TarefaCmd.MarkFlagRequired("descricao")
}
