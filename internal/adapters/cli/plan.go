package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/satisplanner-go/internal/application/planner/commands"
	"github.com/andrescamacho/satisplanner-go/internal/application/planner/queries"
	"github.com/andrescamacho/satisplanner-go/internal/domain/plan"
)

// NewPlanCommand creates the plan command with subcommands
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create, edit and calculate production plans",
		Long: `Manage stored production plans.

A plan is a named set of factories calculated together. Edits recalculate
the whole plan before saving, so stored numbers are always settled.

Examples:
  satisplanner plan create --name "Steel Campus"
  satisplanner plan list
  satisplanner plan calculate --plan <id>
  satisplanner plan show --plan <id> --factory <id>`,
	}

	cmd.AddCommand(newPlanCreateCommand())
	cmd.AddCommand(newPlanListCommand())
	cmd.AddCommand(newPlanDeleteCommand())
	cmd.AddCommand(newPlanCalculateCommand())
	cmd.AddCommand(newPlanShowCommand())
	cmd.AddCommand(newPlanSummaryCommand())
	cmd.AddCommand(newPlanSnapshotCommand())
	cmd.AddCommand(newPlanCheckSyncCommand())
	cmd.AddCommand(newFactoryCommand())
	cmd.AddCommand(newProductCommand())
	cmd.AddCommand(newProducerCommand())
	cmd.AddCommand(newInputCommand())
	cmd.AddCommand(newGroupCommand())

	return cmd
}

func newPlanCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.CreatePlanCommand{Name: name})
			if err != nil {
				return err
			}
			resp := result.(*commands.CreatePlanResponse)
			fmt.Printf("Created plan %s\n", resp.PlanID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name [required]")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newPlanListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&queries.ListPlansQuery{})
			if err != nil {
				return err
			}
			resp := result.(*queries.ListPlansResponse)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFACTORIES\tDATA VERSION")
			for _, p := range resp.Plans {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Factories, p.DataVersion)
			}
			return w.Flush()
		},
	}
}

func newPlanDeleteCommand() *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := a.send(&commands.DeletePlanCommand{PlanID: planID}); err != nil {
				return err
			}
			fmt.Printf("Deleted plan %s\n", planID)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.MarkFlagRequired("plan")

	return cmd
}

func newPlanCalculateCommand() *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Recompute a whole plan and persist the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.CalculatePlanCommand{PlanID: planID})
			if err != nil {
				return err
			}
			resp := result.(*commands.CalculatePlanResponse)
			fmt.Printf("Calculated %d factories, %d with problems\n",
				resp.Factories, resp.FactoriesWithProblems)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.MarkFlagRequired("plan")

	return cmd
}

func newPlanSummaryCommand() *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the plan-wide rollup",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&queries.PlanSummaryQuery{PlanID: planID})
			if err != nil {
				return err
			}
			resp := result.(*queries.PlanSummaryResponse)

			fmt.Printf("Plan %s (%s)\n", resp.Name, resp.PlanID)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FACTORY\tNAME\tPRODUCTS\tPRODUCERS\tPOWER IN (MW)\tPOWER OUT (MW)\tSTATUS")
			for _, f := range resp.Factories {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\t%.1f\t%s\n",
					f.FactoryID, f.Name, f.Products, f.PowerProducers,
					f.PowerConsumed, f.PowerProduced, factoryStatus(f.HasProblem, f.InSync))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("Total power: %.1f MW consumed, %.1f MW produced\n",
				resp.PowerConsumed, resp.PowerProduced)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.MarkFlagRequired("plan")

	return cmd
}

func newPlanShowCommand() *cobra.Command {
	var planID, factoryID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one factory's calculated ledger, buildings and power",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&queries.GetFactoryQuery{PlanID: planID, FactoryID: factoryID})
			if err != nil {
				return err
			}
			resp := result.(*queries.GetFactoryResponse)
			displayFactory(a, resp.Factory)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&factoryID, "factory", "", "Factory id [required]")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")

	return cmd
}

func newPlanSnapshotCommand() *cobra.Command {
	var planID, factoryID string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record a factory's current state as its sync baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.SnapshotFactoryCommand{PlanID: planID, FactoryID: factoryID})
			if err != nil {
				return err
			}
			resp := result.(*commands.SnapshotFactoryResponse)
			fmt.Printf("Snapshotted %d products and %d power producers\n",
				resp.Products, resp.PowerProducers)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&factoryID, "factory", "", "Factory id [required]")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")

	return cmd
}

func newPlanCheckSyncCommand() *cobra.Command {
	var planID, factoryID string

	cmd := &cobra.Command{
		Use:   "check-sync",
		Short: "Compare a factory against its sync baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.CheckSyncCommand{PlanID: planID, FactoryID: factoryID})
			if err != nil {
				return err
			}
			resp := result.(*commands.CheckSyncResponse)
			switch {
			case resp.InSync == nil:
				fmt.Println("Factory has never been snapshotted")
			case *resp.InSync:
				fmt.Println("Factory is in sync with its snapshot")
			default:
				fmt.Println("Factory has drifted from its snapshot")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&factoryID, "factory", "", "Factory id [required]")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")

	return cmd
}

func newFactoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Manage factories of a plan",
	}

	var planID, name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a factory to a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.AddFactoryCommand{PlanID: planID, Name: name})
			if err != nil {
				return err
			}
			resp := result.(*commands.AddFactoryResponse)
			fmt.Printf("Added factory %s\n", resp.FactoryID)
			return nil
		},
	}
	add.Flags().StringVar(&planID, "plan", "", "Plan id [required]")
	add.Flags().StringVar(&name, "name", "", "Factory name [required]")
	add.MarkFlagRequired("plan")
	add.MarkFlagRequired("name")

	cmd.AddCommand(add)
	return cmd
}

// factoryStatus condenses the problem flag and sync state into one word.
func factoryStatus(hasProblem bool, inSync *bool) string {
	switch {
	case hasProblem:
		return "PROBLEM"
	case inSync == nil:
		return "OK"
	case *inSync:
		return "OK (synced)"
	default:
		return "OK (drifted)"
	}
}

// displayFactory prints the calculated factory tables.
func displayFactory(a *app, f *plan.Factory) {
	fmt.Printf("Factory %s (%s)\n", f.Name, f.ID)
	fmt.Printf("Status: %s\n\n", factoryStatus(f.HasProblem, f.InSync))

	if len(f.Products) > 0 {
		fmt.Println("Products:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  PART\tRECIPE\tAMOUNT/MIN\tBUILDING\tCOUNT\tGROUPS")
		for _, p := range f.Products {
			fmt.Fprintf(w, "  %s\t%s\t%.3f\t%s\t%.4f\t%d\n",
				a.catalogue.PartName(p.ID), p.Recipe, p.Amount,
				p.BuildingRequirement.Name, p.BuildingRequirement.Amount,
				len(p.BuildingGroups))
		}
		w.Flush()
		fmt.Println()
	}

	if len(f.PowerProducers) > 0 {
		fmt.Println("Power producers:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  BUILDING\tRECIPE\tCOUNT\tPOWER (MW)")
		for _, p := range f.PowerProducers {
			fmt.Fprintf(w, "  %s\t%s\t%.4f\t%.1f\n",
				p.Building, p.Recipe, p.BuildingCount, p.PowerProduced)
		}
		w.Flush()
		fmt.Println()
	}

	if len(f.Parts) > 0 {
		ids := make([]string, 0, len(f.Parts))
		for id := range f.Parts {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println("Part ledger:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  PART\tREQUIRED\tSUPPLIED\tREMAINING\tSTATE")
		for _, id := range ids {
			m := f.Parts[id]
			state := "ok"
			if !m.Satisfied {
				state = "SHORT"
			} else if m.IsRaw {
				state = "raw"
			}
			fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\t%s\n",
				a.catalogue.PartName(id), m.AmountRequired, m.AmountSupplied,
				m.AmountRemaining, state)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Printf("Power: %.1f MW consumed, %.1f MW produced (%+.1f MW)\n",
		f.Power.Consumed, f.Power.Produced, f.Power.Difference)
}
