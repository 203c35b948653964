package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerSetFactionCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newRPCharCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var ign, discordID, faction string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"ign":        ign,
				"discord_id": discordID,
				"faction":    faction,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&ign, "ign", "", "Minecraft in-game name (required)")
	cmd.Flags().StringVar(&discordID, "discord-id", "", "Discord ID (required)")
	cmd.Flags().StringVar(&faction, "faction", "", "Faction to join (required)")
	_ = cmd.MarkFlagRequired("ign")
	_ = cmd.MarkFlagRequired("discord-id")
	_ = cmd.MarkFlagRequired("faction")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <discord-id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerSetFactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-faction <discord-id> <faction>",
		Short: "Move a player to another faction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"faction": args[1]}
			var result Player

			if err := client.Patch("/api/v1/players/"+url.PathEscape(args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <discord-id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + url.PathEscape(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("player %s deleted", args[0]))
			return nil
		},
	}
}

func newRPCharCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rpchar",
		Short: "Roleplay character commands",
	}

	cmd.AddCommand(newRPCharCreateCmd())
	cmd.AddCommand(newRPCharRenameCmd())
	cmd.AddCommand(newRPCharDeleteCmd())

	return cmd
}

func newRPCharCreateCmd() *cobra.Command {
	var name, title, gear string
	var pvp bool

	cmd := &cobra.Command{
		Use:   "create <discord-id>",
		Short: "Create a roleplay character for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":  name,
				"title": title,
				"gear":  gear,
				"pvp":   pvp,
			}
			var result Player

			if err := client.Post("/api/v1/players/"+url.PathEscape(args[0])+"/rpchar", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Character name (required)")
	cmd.Flags().StringVar(&title, "title", "", "Character title")
	cmd.Flags().StringVar(&gear, "gear", "", "Character gear")
	cmd.Flags().BoolVar(&pvp, "pvp", false, "Whether the character takes part in PvP")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRPCharRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <discord-id> <new-name>",
		Short: "Rename a player's roleplay character",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[1]}
			var result Player

			if err := client.Patch("/api/v1/players/"+url.PathEscape(args[0])+"/rpchar", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRPCharDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <discord-id>",
		Short: "Delete a player's roleplay character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + url.PathEscape(args[0]) + "/rpchar"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("character for player %s deleted", args[0]))
			return nil
		},
	}
}
