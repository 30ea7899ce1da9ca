package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
	"projetos/pkg/config"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "view projetos configurations",
	Long: `
Configurations are read from config.yml in the working directory or next to the
binary. Every key can be overridden with a PROJETOS_ prefixed variable, for
example PROJETOS_PORT=9000.

Usage:

	config show
`,
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configurations as yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewProjetosConfig().GetConfigurations()
		out, err := yaml.Marshal(configs)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(showConfigCmd)
}
