package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gamedataadapter "github.com/andrescamacho/satisplanner-go/internal/adapters/gamedata"
	"github.com/andrescamacho/satisplanner-go/internal/infrastructure/config"
)

// NewGameDataCommand creates the gamedata command with subcommands
func NewGameDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamedata",
		Short: "Inspect the loaded game data",
	}

	cmd.AddCommand(newGameDataInfoCommand())

	return cmd
}

func newGameDataInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the game data version and catalogue sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			catalogue, err := gamedataadapter.LoadCatalogue(cfg.GameData.Path)
			if err != nil {
				return err
			}

			parts, recipes, powerRecipes, buildings := catalogue.Counts()
			fmt.Printf("Game data file: %s\n", cfg.GameData.Path)
			fmt.Printf("Version:        %s\n", catalogue.Version())
			fmt.Printf("Parts:          %d\n", parts)
			fmt.Printf("Recipes:        %d\n", recipes)
			fmt.Printf("Power recipes:  %d\n", powerRecipes)
			fmt.Printf("Buildings:      %d\n", buildings)
			if cfg.GameData.ExpectedVersion != "" {
				if catalogue.Version() == cfg.GameData.ExpectedVersion {
					fmt.Println("Version matches the configured expectation")
				} else {
					fmt.Printf("WARNING: configured expected version is %s\n", cfg.GameData.ExpectedVersion)
				}
			}
			return nil
		},
	}
}
