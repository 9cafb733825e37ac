package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/satisplanner-go/internal/application/planner/commands"
)

// groupTarget holds the flags shared by every group subcommand.
type groupTarget struct {
	planID    string
	factoryID string
	itemID    string
}

func (t *groupTarget) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.planID, "plan", "", "Plan id [required]")
	cmd.Flags().StringVar(&t.factoryID, "factory", "", "Factory id [required]")
	cmd.Flags().StringVar(&t.itemID, "item", "", "Product part id or producer id [required]")
	cmd.MarkFlagRequired("plan")
	cmd.MarkFlagRequired("factory")
	cmd.MarkFlagRequired("item")
}

func newGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage building groups of a product or power producer",
		Long: `Manage how an item's buildings are split into physical groups.

Groups carry a whole building count and an overclock percentage. An item
with one group in sync mode follows its calculated requirement; adding
more groups switches the item to manual control.

Examples:
  satisplanner plan group add --plan <id> --factory <id> --item iron-plate
  satisplanner plan group rebalance --plan <id> --factory <id> --item iron-plate
  satisplanner plan group update --plan <id> --factory <id> --item iron-plate \
    --group <gid> --buildings 3 --clock 83.3333`,
	}

	cmd.AddCommand(newGroupAddCommand())
	cmd.AddCommand(newGroupDeleteCommand())
	cmd.AddCommand(newGroupRebalanceCommand())
	cmd.AddCommand(newGroupRemainderToLastCommand())
	cmd.AddCommand(newGroupRemainderToNewCommand())
	cmd.AddCommand(newGroupUpdateCommand())
	cmd.AddCommand(newGroupSetPartCommand())

	return cmd
}

func newGroupAddCommand() *cobra.Command {
	var target groupTarget

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a building group to an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.AddBuildingGroupCommand{
				PlanID:    target.planID,
				FactoryID: target.factoryID,
				ItemID:    target.itemID,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.AddBuildingGroupResponse)
			fmt.Printf("Added group %s\n", resp.GroupID)
			return nil
		},
	}
	target.register(cmd)

	return cmd
}

func newGroupDeleteCommand() *cobra.Command {
	var target groupTarget
	var groupID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a building group (the last group cannot be deleted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.DeleteBuildingGroupCommand{
				PlanID:    target.planID,
				FactoryID: target.factoryID,
				ItemID:    target.itemID,
				GroupID:   groupID,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.DeleteBuildingGroupResponse)
			if resp.HasProblem {
				fmt.Println("Group deleted; remaining groups no longer cover the requirement")
			} else {
				fmt.Println("Group deleted")
			}
			return nil
		},
	}
	target.register(cmd)
	cmd.Flags().StringVar(&groupID, "group", "", "Group id [required]")
	cmd.MarkFlagRequired("group")

	return cmd
}

func newGroupRebalanceCommand() *cobra.Command {
	var target groupTarget

	cmd := &cobra.Command{
		Use:   "rebalance",
		Short: "Split the building requirement evenly across all groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.RebalanceBuildingGroupsCommand{
				PlanID:    target.planID,
				FactoryID: target.factoryID,
				ItemID:    target.itemID,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.RebalanceBuildingGroupsResponse)
			for _, g := range resp.Groups {
				fmt.Printf("Group %s: %.0f buildings @ %.4f%%\n",
					g.ID, g.BuildingCount, g.OverclockPercent)
			}
			return nil
		},
	}
	target.register(cmd)

	return cmd
}

func newGroupRemainderToLastCommand() *cobra.Command {
	var target groupTarget

	cmd := &cobra.Command{
		Use:   "remainder-to-last",
		Short: "Rewrite the last group to absorb the uncovered remainder",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.RemainderToLastGroupCommand{
				PlanID:    target.planID,
				FactoryID: target.factoryID,
				ItemID:    target.itemID,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.RemainderToLastGroupResponse)
			fmt.Printf("Last group: %.0f buildings @ %.4f%%\n",
				resp.Group.BuildingCount, resp.Group.OverclockPercent)
			return nil
		},
	}
	target.register(cmd)

	return cmd
}

func newGroupRemainderToNewCommand() *cobra.Command {
	var target groupTarget

	cmd := &cobra.Command{
		Use:   "remainder-to-new",
		Short: "Cover the uncovered remainder with a freshly appended group",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.RemainderToNewGroupCommand{
				PlanID:    target.planID,
				FactoryID: target.factoryID,
				ItemID:    target.itemID,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.RemainderToNewGroupResponse)
			fmt.Printf("Added group %s\n", resp.GroupID)
			return nil
		},
	}
	target.register(cmd)

	return cmd
}

func newGroupUpdateCommand() *cobra.Command {
	var target groupTarget
	var (
		groupID   string
		buildings float64
		clock     float64
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Set one group's building count and overclock",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.UpdateBuildingGroupCommand{
				PlanID:           target.planID,
				FactoryID:        target.factoryID,
				ItemID:           target.itemID,
				GroupID:          groupID,
				BuildingCount:    buildings,
				OverclockPercent: clock,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.UpdateBuildingGroupResponse)
			fmt.Printf("Group now %.0f buildings @ %.4f%%", resp.BuildingCount, resp.OverclockPercent)
			if resp.HasProblem {
				fmt.Print(" (groups no longer cover the requirement)")
			}
			fmt.Println()
			return nil
		},
	}
	target.register(cmd)
	cmd.Flags().StringVar(&groupID, "group", "", "Group id [required]")
	cmd.Flags().Float64Var(&buildings, "buildings", 0, "Building count [required]")
	cmd.Flags().Float64Var(&clock, "clock", 100, "Overclock percent (1-250)")
	cmd.MarkFlagRequired("group")
	cmd.MarkFlagRequired("buildings")

	return cmd
}

func newGroupSetPartCommand() *cobra.Command {
	var target groupTarget
	var (
		groupID string
		part    string
		amount  float64
	)

	cmd := &cobra.Command{
		Use:   "set-part",
		Short: "Size a group by a per-part amount instead of a building count",
		Long: `Size a group by how much of one part it should handle per minute.

The building count is solved from the item's recipe ratio at the group's
current overclock. With a single group the item's requested amount follows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.send(&commands.UpdateGroupPartCommand{
				PlanID:    target.planID,
				FactoryID: target.factoryID,
				ItemID:    target.itemID,
				GroupID:   groupID,
				Part:      part,
				Amount:    amount,
			})
			if err != nil {
				return err
			}
			resp := result.(*commands.UpdateGroupPartResponse)
			fmt.Printf("Group now %.4f buildings @ %.4f%%\n",
				resp.BuildingCount, resp.OverclockPercent)
			return nil
		},
	}
	target.register(cmd)
	cmd.Flags().StringVar(&groupID, "group", "", "Group id [required]")
	cmd.Flags().StringVar(&part, "part", "", "Part id [required]")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount per minute [required]")
	cmd.MarkFlagRequired("group")
	cmd.MarkFlagRequired("part")
	cmd.MarkFlagRequired("amount")

	return cmd
}
