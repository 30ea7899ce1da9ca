package cmd

import (
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	registerUsername string
	registerPassword string
	registerEmail    string
	loginUsername    string
	loginPassword    string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a usuario",
	Long: `
Register creates a usuario. When --password is left out it is prompted for.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := passwordOrPrompt(registerPassword)
		if err != nil {
			return err
		}
		return newRunner(cmd).Register(cmd.Context(), registerUsername, password, registerEmail)
	},
}

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the access token to .token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := passwordOrPrompt(loginPassword)
		if err != nil {
			return err
		}
		return newRunner(cmd).Login(cmd.Context(), loginUsername, password)
	},
}

func passwordOrPrompt(password string) (string, error) {
	if password != "" {
		return password, nil
	}
	passwordPrompt := promptui.Prompt{
		Label:       "Password",
		HideEntered: true,
		Mask:        '*',
	}
	return passwordPrompt.Run()
}

func init() {
	RegisterCmd.Flags().StringVar(&registerUsername, "username", "", "username")
	RegisterCmd.Flags().StringVar(&registerPassword, "password", "", "password, prompted when empty")
	RegisterCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	_ = RegisterCmd.MarkFlagRequired("username")

	LoginCmd.Flags().StringVar(&loginUsername, "username", "", "username")
	LoginCmd.Flags().StringVar(&loginPassword, "password", "", "password, prompted when empty")
	_ = LoginCmd.MarkFlagRequired("username")
}
