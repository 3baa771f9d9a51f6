package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"catalog-backend/internal/config"
	"catalog-backend/internal/db"
	"catalog-backend/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Operator tooling for the catalog backend.",
	Long:  `Seed, inspect and clean up the catalog collection, and hash the admin passcode.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:                   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short:                 "Generate shell completion scripts",
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

// openTable connects with the server's configuration. Callers run the
// returned release func when done. Tests swap it for a mock collection.
var openTable = connectTable

func connectTable(ctx context.Context) (*store.Table, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connection failed: %w", err)
	}
	release := func() { _ = client.Disconnect(context.Background()) }
	if err := db.EnsureIndexes(connectCtx, cols); err != nil {
		release()
		return nil, nil, fmt.Errorf("index creation failed: %w", err)
	}
	return store.NewTable(cols.Links), release, nil
}

func init() {
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(hashPasscodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
