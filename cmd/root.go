package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNoCommand is returned when projetos runs without a subcommand
var ErrNoCommand = errors.New("no command given")

var rootCmd = &cobra.Command{
	Use:   "projetos",
	Short: "Projetos tracks projects and their tasks",
	Long: `Projetos serves a small REST API for projects (projeto) and tasks (tarefa)
and ships the command line client that talks to it.

Run "projetos start" to serve the API, then use the client commands:

	projetos register --username ana --password s3cret
	projetos login --username ana --password s3cret
	projetos create --nome Site --descricao "Novo site"
	projetos list

The client reads the API root from API_BASE (default http://localhost:8000/api).
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return ErrNoCommand
	},
}

func init() {
	rootCmd.AddCommand(StartCmd)
	rootCmd.AddCommand(ListCmd)
	rootCmd.AddCommand(DetailCmd)
	rootCmd.AddCommand(CreateCmd)
	rootCmd.AddCommand(TarefaCmd)
	rootCmd.AddCommand(RegisterCmd)
	rootCmd.AddCommand(LoginCmd)
	rootCmd.AddCommand(SecretsCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(VersionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
