package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/satisplanner-go/internal/application/planner/commands"
)

func newProductCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products of a factory",
	}

	cmd.AddCommand(newProductAddCommand())
	cmd.AddCommand(newProductUpdateCommand())

	return cmd
}

func newProductAddCommand() *cobra.Command {
	var (
		planID    string
		factoryID string
		part      string
		recipe    string
		amount    float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to a factory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.AddProductCommand{
				PlanID:    planID,
				FactoryID: factoryID,
				Part:      part,
				Recipe:    recipe,
				Amount:    amount,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.AddProductResponse)
			fmt.Printf("Added product %s at %.3f/min\n", resp.ProductID, resp.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&factoryID, "factory", "", "Factory id [required]")
	cmd.Flags().StringVar(&part, "part", "", "Part id [required]")
	cmd.Flags().StringVar(&recipe, "recipe", "", "Recipe id (empty for a placeholder product)")
	cmd.Flags().Float64Var(&amount, "amount", 1, "Requested amount per minute")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")
	cmd.MarkFlagRequired("part")

	return cmd
}

func newProductUpdateCommand() *cobra.Command {
	var (
		planID    string
		factoryID string
		part      string
		recipe    string
		amount    float64
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change a product's amount and/or recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			update := &commands.UpdateProductCommand{
				PlanID:    planID,
				FactoryID: factoryID,
				Part:      part,
			}
			if cmd.Flags().Changed("amount") {
				update.Amount = &amount
			}
			if cmd.Flags().Changed("recipe") {
				update.Recipe = &recipe
			}

			result, err := a.send(update)
			if err != nil {
				return err
			}
			resp := result.(*commands.UpdateProductResponse)
			fmt.Printf("Product %s now %.3f/min via %s\n", part, resp.Amount, resp.Recipe)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&factoryID, "factory", "", "Factory id [required]")
	cmd.Flags().StringVar(&part, "part", "", "Part id [required]")
	cmd.Flags().StringVar(&recipe, "recipe", "", "New recipe id")
	cmd.Flags().Float64Var(&amount, "amount", 0, "New amount per minute")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")
	cmd.MarkFlagRequired("part")

	return cmd
}

func newProducerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "producer",
		Short: "Manage power producers of a factory",
	}

	cmd.AddCommand(newProducerAddCommand())
	cmd.AddCommand(newProducerUpdateCommand())

	return cmd
}

func newProducerAddCommand() *cobra.Command {
	var (
		planID    string
		factoryID string
		building  string
		recipe    string
		buildings float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a generator batch to a factory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.AddPowerProducerCommand{
				PlanID:         planID,
				FactoryID:      factoryID,
				Building:       building,
				Recipe:         recipe,
				BuildingAmount: buildings,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.AddPowerProducerResponse)
			fmt.Printf("Added power producer %s\n", resp.ProducerID)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&factoryID, "factory", "", "Factory id [required]")
	cmd.Flags().StringVar(&building, "building", "", "Generator building id [required]")
	cmd.Flags().StringVar(&recipe, "recipe", "", "Power recipe id [required]")
	cmd.Flags().Float64Var(&buildings, "buildings", 1, "Requested building count")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")
	cmd.MarkFlagRequired("building")
	cmd.MarkFlagRequired("recipe")

	return cmd
}

func newProducerUpdateCommand() *cobra.Command {
	var (
		planID     string
		factoryID  string
		producerID string
		source     string
		amount     float64
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit one of a producer's requested quantities",
		Long: `Edit one of a power producer's four requested quantities.

The edited quantity becomes the source of truth; the other three are
re-derived from it. Source must be one of: buildings, fuel, power,
ingredient.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.UpdatePowerProducerCommand{
				PlanID:     planID,
				FactoryID:  factoryID,
				ProducerID: producerID,
				Source:     source,
				Amount:     amount,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.UpdatePowerProducerResponse)
			fmt.Printf("Producer now: %.4f buildings, %.1f MW, %.3f fuel/min, %.3f supplemental/min\n",
				resp.BuildingAmount, resp.PowerAmount, resp.FuelAmount, resp.IngredientAmount)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&factoryID, "factory", "", "Factory id [required]")
	cmd.Flags().StringVar(&producerID, "producer", "", "Producer id [required]")
	cmd.Flags().StringVar(&source, "source", "", "Edited quantity: buildings|fuel|power|ingredient [required]")
	cmd.Flags().Float64Var(&amount, "amount", 0, "New value for the edited quantity [required]")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")
	cmd.MarkFlagRequired("producer")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func newInputCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "input",
		Short: "Manage import links between factories",
	}

	var (
		planID    string
		factoryID string
		sourceID  string
		part      string
		amount    float64
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Import a part from another factory of the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.AddInputCommand{
				PlanID:          planID,
				FactoryID:       factoryID,
				SourceFactoryID: sourceID,
				Part:            part,
				Amount:          amount,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.AddInputResponse)
			if resp.Satisfied {
				fmt.Println("Input added; the source covers the request")
			} else {
				fmt.Println("Input added; the source cannot fully cover the request")
			}
			return nil
		},
	}
	add.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	add.Flags().StringVar(&factoryID, "factory", "", "Importing factory id [required]")
	add.Flags().StringVar(&sourceID, "from", "", "Supplying factory id [required]")
	add.Flags().StringVar(&part, "part", "", "Part id [required]")
	add.Flags().Float64Var(&amount, "amount", 0, "Amount per minute [required]")
	add.MarkFlagRequired("plan")
	add.MarkFlagRequired("factory")
	add.MarkFlagRequired("from")
	add.MarkFlagRequired("part")
	add.MarkFlagRequired("amount")

	var (
		rmPlanID    string
		rmFactoryID string
		rmSourceID  string
		rmPart      string
	)

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove an import link",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := a.send(&commands.RemoveInputCommand{
				PlanID:          rmPlanID,
				FactoryID:       rmFactoryID,
				SourceFactoryID: rmSourceID,
				Part:            rmPart,
			}); err != nil {
				return err
			}
			fmt.Println("Input removed")
			return nil
		},
	}
	remove.Flags().StringVar(&rmPlanID, "plan", "", "Plan id [required]")
	remove.Flags().StringVar(&rmFactoryID, "factory", "", "Importing factory id [required]")
	remove.Flags().StringVar(&rmSourceID, "from", "", "Supplying factory id [required]")
	remove.Flags().StringVar(&rmPart, "part", "", "Part id [required]")
	remove.MarkFlagRequired("plan")
	remove.MarkFlagRequired("factory")
	remove.MarkFlagRequired("from")
	remove.MarkFlagRequired("part")

	cmd.AddCommand(add)
	cmd.AddCommand(remove)
	return cmd
}
