package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pss-admin/config"
	"github.com/pss-admin/services"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Variables to hold flag values
var (
	loginHost     string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and save the admin token",
	Long: `Exchanges the admin password for a token and saves it, together with the API
base URL, in the config file so later delete commands are authorized.

Example:
  pss-admin login --host http://eagle5.local:5000/pss-backend/api`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginHost != "" {
			viper.Set("base_url", strings.TrimRight(loginHost, "/"))
		}
		host := viper.GetString("base_url")

		password := loginPassword
		if password == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Authenticating against %s...\n", host)

		resp, err := newClient().Login(cmd.Context(), password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := config.SaveCLIToken(host, resp.Token); err != nil {
			return fmt.Errorf("failed to save configuration file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Token saved, valid until %s.\n", resp.ExpiresAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash to put in ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := services.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(hashPasswordCmd)

	loginCmd.Flags().StringVar(&loginHost, "host", "", "API base URL (e.g. http://localhost:5000/api)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Admin password (prompted when omitted)")
}
