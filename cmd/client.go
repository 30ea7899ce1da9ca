package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"projetos/pkg/cli"
	"projetos/pkg/client"
	"projetos/pkg/config"
	"projetos/pkg/constants"
)

// newRunner builds the cli runner for one command. The token file lives in the working directory.
func newRunner(cmd *cobra.Command) *cli.Runner {
	baseURL := os.Getenv(constants.APIBaseEnv)
	if baseURL == "" {
		baseURL = constants.DefaultAPIBase
	}

	configs := config.NewProjetosConfig().GetConfigurations()
	tokens := client.NewFileTokenStore(afero.NewOsFs(), constants.TokenFileName)

	return &cli.Runner{
		Out:    cmd.OutOrStdout(),
		Client: client.NewClient(baseURL, configs.ClientTimeout(), tokens),
		Tokens: tokens,
	}
}
