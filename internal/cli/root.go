package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ecdbg/internal/app"
	"github.com/trebuchet-org/ecdbg/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ecdbg",
		Short: "Elastic chain topology and priority queue debugger",
		Long: `ecdbg reads the bridgehub registry of a settlement layer and the rollups
built on it, reconstructs the registry graph, aggregates native token vault
balances and recomputes priority tree roots from event history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return err
			}

			v := config.SetupViper(workDir, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (defaults to ./"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringSliceP("network", "n", nil, "Only use the named networks (repeatable)")
	rootCmd.PersistentFlags().StringSlice("rpc", nil, "Use these RPC URLs instead of the configured networks")
	rootCmd.PersistentFlags().Uint64("window", 0, "Block range of a single log query")
	rootCmd.PersistentFlags().Uint64("max-depth", 0, "Only scan this many blocks back from head (0 scans everything)")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Timeout for the whole command")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "checks",
		Title: "Check Commands",
	})

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	inspectCmd := NewInspectCmd()
	inspectCmd.GroupID = "main"
	rootCmd.AddCommand(inspectCmd)

	balancesCmd := NewBalancesCmd()
	balancesCmd.GroupID = "checks"
	rootCmd.AddCommand(balancesCmd)

	priorityCmd := NewPriorityCmd()
	priorityCmd.GroupID = "checks"
	rootCmd.AddCommand(priorityCmd)

	reportCmd := NewReportCmd()
	reportCmd.GroupID = "checks"
	rootCmd.AddCommand(reportCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
