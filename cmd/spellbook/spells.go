package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/engine"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

type spellsOptions struct {
	character   string
	classes     []string
	browse      bool
	name        string
	levels      []int
	classFilter []string
	sort        string
	descending  bool
}

func newSpellsCmd(opts *rootOptions) *cobra.Command {
	so := &spellsOptions{}

	cmd := &cobra.Command{
		Use:   "spells",
		Short: "List the spells a character can learn",
		Long: `List the spells the given classes can learn, ordered by level then title.
Use --character to load classes from a saved character, or --class name:level.
With --browse the whole catalog is listed up to half the total character level.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, true)
			if err != nil {
				return err
			}
			defer a.Close()

			session, err := sessionFromFlags(ctx, a, so.character, so.classes)
			if err != nil {
				return err
			}

			if so.browse {
				if err := session.SetMode(engine.ModeBrowse); err != nil {
					return err
				}
			}
			session.SetNameFilter(so.name)
			session.SetLevelFilter(so.levels...)

			filterIDs := make([]dnd5e.ClassID, 0, len(so.classFilter))
			for _, name := range so.classFilter {
				info, ok := dnd5e.ClassByName(name)
				if !ok {
					return errors.InvalidArgumentf("unknown class %q", name)
				}
				filterIDs = append(filterIDs, info.ID)
			}
			session.SetClassFilter(filterIDs...)

			if so.sort != "" {
				if _, err := session.ToggleSort(engine.SortKey(strings.ToLower(so.sort))); err != nil {
					return err
				}
				if so.descending {
					if _, err := session.ToggleSort(engine.SortKey(strings.ToLower(so.sort))); err != nil {
						return err
					}
				}
			}

			out, err := session.Spells(ctx)
			if err != nil {
				return err
			}

			views := toSpellViews(out.Spells)
			return render(cmd.OutOrStdout(), opts.output, views, func(w io.Writer) error {
				if len(views) == 0 {
					_, err := fmt.Fprintln(w, "No spells match.")
					return err
				}
				if err := writeSpellTable(w, views); err != nil {
					return err
				}
				_, err := fmt.Fprintf(w, "\n%d spells, levels %s\n", len(views), joinLevels(out.Levels))
				return err
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&so.character, "character", "", "Saved character whose classes to use")
	flags.StringArrayVar(&so.classes, "class", nil, "Class and level as name:level (repeatable)")
	flags.BoolVar(&so.browse, "browse", false, "List the whole catalog instead of eligible spells")
	flags.StringVar(&so.name, "name", "", "Case-insensitive title filter")
	flags.IntSliceVar(&so.levels, "level", nil, "Spell levels to show, 0 for cantrips (repeatable)")
	flags.StringArrayVar(&so.classFilter, "filter-class", nil, "Only spells tagged with this class (repeatable)")
	flags.StringVar(&so.sort, "sort", "", "Sort by title or level")
	flags.BoolVar(&so.descending, "desc", false, "Sort descending")

	cmd.AddCommand(
		newSpellShowCmd(opts),
		newSpellsAddCmd(opts),
		newSpellsRemoveCmd(opts),
	)
	return cmd
}

func joinLevels(levels []int) string {
	if len(levels) == 0 {
		return "none"
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = levelLabel(l)
	}
	return strings.Join(parts, ", ")
}

type spellDetailView struct {
	spellView     `yaml:",inline"`
	CastingTime   string   `json:"castingTime,omitempty" yaml:"castingTime,omitempty"`
	Range         string   `json:"range,omitempty" yaml:"range,omitempty"`
	Components    []string `json:"components,omitempty" yaml:"components,omitempty"`
	Duration      string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Descriptions  []string `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	AtHigherLevel string   `json:"atHigherLevels,omitempty" yaml:"atHigherLevels,omitempty"`
}

func newSpellShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title>",
		Short: "Show the parsed details of a spell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, true)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.orchestrator.NewSession().SpellDetails(ctx, args[0])
			if err != nil {
				return err
			}

			d := out.Details
			view := spellDetailView{
				spellView:     toSpellViews([]*dnd5e.Spell{out.Spell})[0],
				CastingTime:   d.CastingTime,
				Range:         d.Range,
				Components:    d.Components,
				Duration:      d.Duration,
				Description:   d.Description,
				Descriptions:  d.Descriptions,
				AtHigherLevel: d.HigherLevel,
			}
			return render(cmd.OutOrStdout(), opts.output, view, func(w io.Writer) error {
				fmt.Fprintf(w, "%s (%s)\n", view.Title, levelLabel(view.Level))
				fmt.Fprintf(w, "Casting Time: %s\n", orNA(view.CastingTime))
				fmt.Fprintf(w, "Range: %s\n", orNA(view.Range))
				fmt.Fprintf(w, "Components: %s\n", orNA(strings.Join(view.Components, ", ")))
				fmt.Fprintf(w, "Duration: %s\n", orNA(view.Duration))
				fmt.Fprintf(w, "Classes: %s\n", orNA(strings.Join(view.Classes, ", ")))
				fmt.Fprintf(w, "Damage: %s %s\n", orNA(view.Damage), view.DamageType)
				if view.Description != "" {
					fmt.Fprintf(w, "\n%s\n", view.Description)
				}
				if view.AtHigherLevel != "" {
					fmt.Fprintf(w, "\nAt Higher Levels: %s\n", view.AtHigherLevel)
				}
				return nil
			})
		},
	}
}

func newSpellsAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <character> <title>...",
		Short: "Add eligible spells to a saved character",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, true)
			if err != nil {
				return err
			}
			defer a.Close()

			session, err := a.orchestrator.OpenSession(ctx, args[0])
			if err != nil {
				return err
			}
			titles := uniqueTitles(args[1:])
			for _, title := range titles {
				session.ToggleSpellSelection(title)
			}

			added, err := session.AddSelectedSpells(ctx)
			if err != nil {
				return err
			}
			if _, err := session.Save(ctx); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %d of %d spells to %s\n", added, len(titles), args[0])
			return err
		},
	}
}

func newSpellsRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <character> <title>...",
		Short: "Remove added spells from a saved character",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			session, err := a.orchestrator.OpenSession(ctx, args[0])
			if err != nil {
				return err
			}
			for _, title := range uniqueTitles(args[1:]) {
				session.ToggleAddedSelection(title)
			}
			removed := session.RemoveSelectedAddedSpells()
			if _, err := session.Save(ctx); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d spells from %s\n", removed, args[0])
			return err
		},
	}
}

// uniqueTitles drops repeated titles so each is selected once
func uniqueTitles(titles []string) []string {
	seen := make(map[string]bool, len(titles))
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		if seen[title] {
			continue
		}
		seen[title] = true
		out = append(out, title)
	}
	return out
}
