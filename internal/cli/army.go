package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newArmyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "army",
		Short: "Army management commands",
	}

	cmd.AddCommand(newArmyCreateCmd())
	cmd.AddCommand(newArmyGetCmd())
	cmd.AddCommand(newArmyBindCmd())

	return cmd
}

func newArmyCreateCmd() *cobra.Command {
	var (
		faction    string
		armyType   string
		claimBuild string
		units      []string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Raise a new army at a claimbuild",
		Long: `Raise a new army at a claimbuild.

Units are given as repeated --unit flags in the form "<unit type>:<count>",
for example: --unit "Gondor Soldier:5" --unit "Gondor Archer:3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedUnits, err := parseUnits(units)
			if err != nil {
				return err
			}

			req := map[string]any{
				"name":       args[0],
				"faction":    faction,
				"type":       armyType,
				"claimbuild": claimBuild,
				"units":      parsedUnits,
			}
			var result Army

			if err := client.Post("/api/v1/armies", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&faction, "faction", "", "Faction the army fights for (required)")
	cmd.Flags().StringVar(&armyType, "type", "ARMY", "Army type: ARMY, TRADING_COMPANY, ARMED_TRADERS")
	cmd.Flags().StringVar(&claimBuild, "claimbuild", "", "Claimbuild to raise the army at (required)")
	cmd.Flags().StringArrayVar(&units, "unit", nil, "Unit as '<unit type>:<count>' (repeatable, required)")
	_ = cmd.MarkFlagRequired("faction")
	_ = cmd.MarkFlagRequired("claimbuild")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newArmyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show an army",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Army

			if err := client.Get("/api/v1/armies/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newArmyBindCmd() *cobra.Command {
	var executor, target string

	cmd := &cobra.Command{
		Use:   "bind <name>",
		Short: "Bind an army to a player",
		Long: `Bind an army to a player, granting that player command authority.

Players bind armies to themselves with --executor alone. Faction leaders may
bind armies to another member by also passing --target.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				target = executor
			}

			req := map[string]string{
				"executor_discord_id": executor,
				"target_discord_id":   target,
			}
			var result Army

			if err := client.Post("/api/v1/armies/"+url.PathEscape(args[0])+"/bind", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&executor, "executor", "", "Discord ID of the player issuing the bind (required)")
	cmd.Flags().StringVar(&target, "target", "", "Discord ID of the player to bind to (defaults to executor)")
	_ = cmd.MarkFlagRequired("executor")

	return cmd
}

func parseUnits(specs []string) ([]map[string]any, error) {
	units := make([]map[string]any, 0, len(specs))
	for _, s := range specs {
		idx := strings.LastIndex(s, ":")
		if idx < 1 {
			return nil, fmt.Errorf("invalid unit %q: expected '<unit type>:<count>'", s)
		}
		count, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid unit count in %q: %w", s, err)
		}
		units = append(units, map[string]any{
			"unit_type": s[:idx],
			"count":     count,
		})
	}
	return units, nil
}
