package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/config"
	"github.com/balkashynov/listo/internal/store"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in to the hosted backend",
	Long: `Sign in with email and password and save the session token.

The token authorizes admin operations (categories, branding). Local mode
needs no login.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}
		if cfg.Local {
			fmt.Println("Running in local mode, no login needed.")
			return
		}

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Print("Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				fmt.Printf("Error reading password: %v\n", err)
				return
			}
			password = strings.TrimSpace(line)
		}

		client := store.NewRestClient(cfg.BackendURL, cfg.AnonKey, "")
		token, err := client.SignIn(cmd.Context(), args[0], password)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := config.SaveSession(token); err != nil {
			fmt.Printf("Error saving session: %v\n", err)
			return
		}
		fmt.Println("✅ Signed in")
	},
}

func init() {
	loginCmd.Flags().String("password", "", "Password (prompted when omitted)")
}
