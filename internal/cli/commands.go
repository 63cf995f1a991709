// Package cli provides command definitions for skillmart.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/skillmart/skillmart/internal/config"
	"github.com/skillmart/skillmart/internal/marketplace"
	"github.com/skillmart/skillmart/internal/model"
	"github.com/skillmart/skillmart/internal/parser"
	"github.com/skillmart/skillmart/internal/state"
	"github.com/skillmart/skillmart/internal/ui"
	"github.com/skillmart/skillmart/internal/ui/tui"
)

// newInstaller builds an installer from the loaded configuration.
func newInstaller(cmd *cli.Command) (*marketplace.Installer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	sources, err := marketplace.LoadSources(cfg.Marketplace.SourcesFile)
	if err != nil {
		return nil, err
	}
	return marketplace.NewInstaller(cfg.Skills.Dir, &marketplace.GitFetcher{}, sources), nil
}

func installCommand() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Install a skill from a marketplace repository",
		UsageText: "skillmart install <owner/skill-name | repository-url>",
		Description: `Install a skill via sparse checkout of its marketplace repository.

   Examples:
     skillmart install anthropics/pdf-tools
     skillmart install https://github.com/someone/my-skill`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New("install requires exactly 1 argument: <skill-reference>")
			}

			inst, err := newInstaller(cmd)
			if err != nil {
				return err
			}

			name, err := inst.Install(ctx, args.Get(0))
			if err != nil {
				return err
			}

			fmt.Println(ui.StatusSuccess(fmt.Sprintf("Successfully installed skill %q", name)))
			return nil
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove an installed skill",
		UsageText: "skillmart remove <skill-name | owner/skill-name>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New("remove requires exactly 1 argument: <skill-reference>")
			}

			inst, err := newInstaller(cmd)
			if err != nil {
				return err
			}

			name, err := inst.Remove(args.Get(0))
			if err != nil {
				return err
			}

			fmt.Println(ui.StatusSuccess(fmt.Sprintf("Successfully removed skill %q", name)))
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List installed skills",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Browse skills interactively and switch the active one",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			skills, err := parser.ListSkills(cfg.Skills.Dir)
			if err != nil {
				return err
			}

			store := state.NewStore(cfg.Skills.StateFile)
			if cmd.Bool("interactive") {
				return runInteractiveList(skills, store)
			}

			if len(skills) == 0 {
				fmt.Println("No skills installed.")
				return nil
			}

			activeName := ""
			if active, ok := store.Active(); ok {
				activeName = active.Name
			}

			fmt.Println(ui.Header(fmt.Sprintf("Installed skills (%d):", len(skills))))
			for _, skill := range skills {
				marker := " "
				if skill.Name == activeName {
					marker = ui.ActiveMarker()
				}
				fmt.Printf("%s %s  %s\n", marker, ui.Bold(skill.Name), ui.Dim(skill.Description))
			}
			return nil
		},
	}
}

// runInteractiveList opens the TUI browser and applies the chosen action.
func runInteractiveList(skills []model.Skill, store *state.Store) error {
	activeName := ""
	if active, ok := store.Active(); ok {
		activeName = active.Name
	}

	finished, err := tui.Run(tui.NewSkillListModel(skills, activeName))
	if err != nil {
		return fmt.Errorf("interactive list failed: %w", err)
	}

	listModel, ok := finished.(tui.SkillListModel)
	if !ok {
		return nil
	}

	switch result := listModel.Result(); result.Action {
	case tui.SkillActionActivate:
		if err := store.SetActive(result.Skill.Name, result.Skill.AllowedTools); err != nil {
			return err
		}
		fmt.Println(ui.StatusSuccess(fmt.Sprintf("Activated skill %q", result.Skill.Name)))
	case tui.SkillActionClear:
		if err := store.ClearActive(); err != nil {
			return err
		}
		fmt.Println(ui.StatusSuccess("Cleared active skill"))
	case tui.SkillActionNone:
	}
	return nil
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the marketplace for skills",
		UsageText: "skillmart search <query>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New("search requires exactly 1 argument: <query>")
			}

			inst, err := newInstaller(cmd)
			if err != nil {
				return err
			}

			for _, result := range inst.Search(args.Get(0)) {
				fmt.Println(result.Message)
			}
			return nil
		},
	}
}

func availableCommand() *cli.Command {
	return &cli.Command{
		Name:  "available",
		Usage: "List skills available from marketplace sources",
		Action: func(_ context.Context, cmd *cli.Command) error {
			inst, err := newInstaller(cmd)
			if err != nil {
				return err
			}

			for _, result := range inst.ListAvailable() {
				fmt.Println(result.Message)
			}
			return nil
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Display current configuration",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fmt.Println("Configuration:")
			fmt.Printf("  Skills directory: %s\n", cfg.Skills.Dir)
			fmt.Printf("  State file: %s\n", cfg.Skills.StateFile)
			fmt.Printf("  Sources file: %s\n", cfg.Marketplace.SourcesFile)
			fmt.Printf("  Config file: %s", config.FilePath())
			if !config.Exists() {
				fmt.Print(" (not present, using defaults)")
			}
			fmt.Println()
			return nil
		},
	}
}
