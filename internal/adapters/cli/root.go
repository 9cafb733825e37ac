package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "satisplanner",
		Short: "Satisplanner CLI - factory production planning",
		Long: `Satisplanner calculates production plans for factory builds: part flow,
building counts, overclocking, power and cross-factory imports.

Examples:
  satisplanner plan create --name "Steel Campus"
  satisplanner plan factory add --plan <id> --name "Ingot Line"
  satisplanner plan product add --plan <id> --factory <id> --part iron-plate --recipe iron-plate --amount 120
  satisplanner plan calculate --plan <id>
  satisplanner plan show --plan <id> --factory <id>
  satisplanner gamedata info`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in . or ./configs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewGameDataCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
