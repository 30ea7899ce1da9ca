package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"projetos/pkg/secrets"
)

var SecretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "create or view the projetos secret key",
	Long: `
The secret key signs the access and refresh tokens issued by the server.
PROJETOS_SECRET_KEY takes precedence over the secrets file.

Usage:

	secrets init

This will prompt for a secret key, suggesting a random one.
`,
}

var initSecretsCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the secret key to the secrets file",
	RunE: func(cmd *cobra.Command, args []string) error {
		suggested, err := randomKey()
		if err != nil {
			return err
		}

		secretKeyPrompt := promptui.Prompt{
			Label:       "Secret Key",
			HideEntered: true,
			Mask:        '*',
			Default:     suggested,
		}
		secretKey, err := secretKeyPrompt.Run()
		if err != nil {
			return err
		}

		projetosSecrets := secrets.NewProjetosSecrets(afero.NewOsFs(), ".")
		if _, err := projetosSecrets.SaveSecrets(&secrets.Secrets{SecretKey: secretKey}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Secrets saved")
		return nil
	},
}

var showSecretsCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the secret key, masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		projetosSecrets := secrets.NewProjetosSecrets(afero.NewOsFs(), ".")
		credentials, err := projetosSecrets.GetSecrets()
		if err != nil {
			if errors.Is(err, secrets.ErrMissingSecretKey) {
				fmt.Fprintln(cmd.OutOrStdout(), err.Error())
				return nil
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "SecretKey:", maskSecret(credentials.SecretKey))
		return nil
	},
}

func randomKey() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", len(secret)-4)
}

func init() {
	SecretsCmd.AddCommand(initSecretsCmd)
	SecretsCmd.AddCommand(showSecretsCmd)
}
