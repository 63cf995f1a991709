package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/skillmart/skillmart/internal/parser"
	"github.com/skillmart/skillmart/internal/permissions"
	"github.com/skillmart/skillmart/internal/state"
	"github.com/skillmart/skillmart/internal/ui"
)

func useCommand() *cli.Command {
	return &cli.Command{
		Name:      "use",
		Usage:     "Activate an installed skill for tool-permission enforcement",
		UsageText: "skillmart use <skill-name>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New("use requires exactly 1 argument: <skill-name>")
			}
			name := args.Get(0)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			descriptor := filepath.Join(cfg.Skills.Dir, name, parser.SkillFileName)
			result := parser.ParseFile(descriptor)
			if !result.OK() {
				switch result.Status {
				case parser.StatusNotFound:
					return fmt.Errorf("skill %q is not installed", name)
				default:
					return fmt.Errorf("skill %q has an invalid descriptor (%s): %s",
						name, result.Status, result.Reason)
				}
			}

			store := state.NewStore(cfg.Skills.StateFile)
			if err := store.SetActive(result.Skill.Name, result.Skill.AllowedTools); err != nil {
				return err
			}

			msg := fmt.Sprintf("Activated skill %q", result.Skill.Name)
			if result.Skill.AllowedTools != "" {
				msg += fmt.Sprintf(" (allowed tools: %s)", result.Skill.AllowedTools)
			}
			fmt.Println(ui.StatusSuccess(msg))
			return nil
		},
	}
}

func currentCommand() *cli.Command {
	return &cli.Command{
		Name:  "current",
		Usage: "Show the currently active skill",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "check",
				Usage: "Check whether a tool is permitted under the active skill",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store := state.NewStore(cfg.Skills.StateFile)
			active, ok := store.Active()

			if tool := cmd.String("check"); tool != "" {
				// No active skill means nothing is being gated.
				if ok && !permissions.ForActive(active).Allows(tool) {
					return fmt.Errorf("tool %q is not allowed by active skill %q", tool, active.Name)
				}
				fmt.Println(ui.StatusSuccess(fmt.Sprintf("Tool %q is allowed", tool)))
				return nil
			}

			if !ok {
				fmt.Println("No active skill.")
				return nil
			}

			fmt.Printf("Active skill: %s\n", ui.Bold(active.Name))
			if active.AllowedTools != "" {
				fmt.Printf("Allowed tools: %s\n", active.AllowedTools)
			}
			return nil
		},
	}
}

func deactivateCommand() *cli.Command {
	return &cli.Command{
		Name:  "deactivate",
		Usage: "Clear the active skill",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store := state.NewStore(cfg.Skills.StateFile)
			if err := store.ClearActive(); err != nil {
				return err
			}

			fmt.Println(ui.StatusSuccess("Cleared active skill"))
			return nil
		},
	}
}
