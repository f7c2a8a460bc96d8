package commands

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/config"
	"github.com/balkashynov/listo/internal/jsonlog"
	"github.com/balkashynov/listo/internal/notify"
	"github.com/balkashynov/listo/internal/state"
	"github.com/balkashynov/listo/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Wired once per invocation by initApp
var (
	appConfig *config.Config
	appClient store.Client
	appState  *state.Manager
	appLog    *jsonlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "listo",
	Short: "A to-do list with categories and branding",
	Long: `listo keeps your tasks in categorized lists with late/today/done views.
Tasks live in a hosted backend (or a local database with no account) and
every change applies instantly, reconciling with the backend behind the scenes.`,
}

// initApp wires config -> store client -> state manager and panics on error
func initApp() {
	appLog = jsonlog.New(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		panic(err) // For now, panic on config failure
	}
	appConfig = cfg

	if cfg.Local {
		local, err := store.OpenLocal(cfg.DBPath, cfg.UploadsDir)
		if err != nil {
			panic(err)
		}
		appClient = local
	} else {
		appClient = store.NewRestClient(cfg.BackendURL, cfg.AnonKey, config.LoadSession())
	}

	appState = state.New(appClient, notify.NewReminder(appLog), appLog)
}

// loadAll fires the three initial fetches. They are independent requests
// and may complete in any order; each applies its own state slice.
func loadAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); appState.FetchTasks(ctx) }()
	go func() { defer wg.Done(); appState.FetchCategories(ctx) }()
	go func() { defer wg.Done(); appState.FetchBranding(ctx) }()
	wg.Wait()
}

// withApp wraps a command function to initialize the app and load state first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		loadAll(cmd.Context())
		fn(cmd, args)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("listo %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(brandingCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(versionCmd)
}
