package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newFactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faction",
		Short: "Faction reference commands",
	}

	cmd.AddCommand(newFactionListCmd())
	cmd.AddCommand(newFactionGetCmd())
	cmd.AddCommand(newFactionArmiesCmd())

	return cmd
}

func newFactionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all factions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Faction

			if err := client.Get("/api/v1/factions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFactionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a faction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Faction

			if err := client.Get("/api/v1/factions/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFactionArmiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "armies <name>",
		Short: "List a faction's armies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Army

			if err := client.Get("/api/v1/factions/"+url.PathEscape(args[0])+"/armies", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
