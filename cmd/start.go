package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"projetos/pkg/http/server"
)

var StartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the projetos API server",
	Long: `
Start serves the API on the configured port (default 8000) under the configured
prefix (default /api). The database file is created and migrated on first start.

A secret key must be available, either from PROJETOS_SECRET_KEY or from the
secrets file written by "projetos secrets init".
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Start(ctx)
	},
}
