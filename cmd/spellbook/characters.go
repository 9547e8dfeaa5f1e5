package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/spellbook"
)

func newCharactersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "characters",
		Aliases: []string{"character", "char"},
		Short:   "Manage saved characters",
	}
	cmd.AddCommand(
		newCharactersListCmd(opts),
		newCharactersShowCmd(opts),
		newCharactersSaveCmd(opts),
		newCharactersDeleteCmd(opts),
		newCharactersCheckCmd(opts),
	)
	return cmd
}

type characterListView struct {
	Name       string    `json:"name" yaml:"name"`
	Classes    string    `json:"classes" yaml:"classes"`
	TotalLevel int       `json:"totalLevel" yaml:"totalLevel"`
	SpellCount int       `json:"spells" yaml:"spells"`
	SavedAt    time.Time `json:"savedAt,omitempty" yaml:"savedAt,omitempty"`
}

func newCharactersListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			summaries, err := a.orchestrator.ListCharacters(ctx)
			if err != nil {
				return err
			}

			views := make([]characterListView, 0, len(summaries))
			for _, s := range summaries {
				views = append(views, characterListView(s))
			}

			return render(cmd.OutOrStdout(), opts.output, views, func(w io.Writer) error {
				if len(views) == 0 {
					_, err := fmt.Fprintln(w, "No saved characters.")
					return err
				}
				tw := newTable(w)
				fmt.Fprintln(tw, "NAME\tCLASSES\tSPELLS\tSAVED")
				for _, v := range views {
					saved := "-"
					if !v.SavedAt.IsZero() {
						saved = v.SavedAt.Local().Format(time.DateTime)
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", v.Name, v.Classes, v.SpellCount, saved)
				}
				return tw.Flush()
			})
		},
	}
}

type classStatsView struct {
	Class       string `json:"class" yaml:"class"`
	Level       int    `json:"level" yaml:"level"`
	Ability     string `json:"ability,omitempty" yaml:"ability,omitempty"`
	SaveDC      *int   `json:"saveDc,omitempty" yaml:"saveDc,omitempty"`
	AttackBonus *int   `json:"attackBonus,omitempty" yaml:"attackBonus,omitempty"`
}

type characterView struct {
	Name             string              `json:"name" yaml:"name"`
	TotalLevel       int                 `json:"totalLevel" yaml:"totalLevel"`
	ProficiencyBonus int                 `json:"proficiencyBonus" yaml:"proficiencyBonus"`
	AbilityScores    dnd5e.AbilityScores `json:"abilityScores" yaml:"abilityScores"`
	Classes          []classStatsView    `json:"classes" yaml:"classes"`
	Spells           []spellView         `json:"spells" yaml:"spells"`
	Slots            []slotRowView       `json:"slots" yaml:"slots"`
}

func buildCharacterView(ctx context.Context, session *spellbook.Session) (*characterView, error) {
	stats, err := session.Stats(ctx)
	if err != nil {
		return nil, err
	}

	c := session.Character()
	view := &characterView{
		Name:             c.Name,
		TotalLevel:       stats.TotalLevel,
		ProficiencyBonus: stats.ProficiencyBonus,
		AbilityScores:    c.AbilityScores,
		Spells:           toSpellViews(c.AddedSpells),
		Slots:            toSlotRowViews(session.SlotRows()),
	}
	for _, cs := range stats.Classes {
		view.Classes = append(view.Classes, classStatsView{
			Class:       cs.ClassID.String(),
			Level:       cs.Level,
			Ability:     string(cs.Ability),
			SaveDC:      cs.SaveDC,
			AttackBonus: cs.AttackBonus,
		})
	}
	return view, nil
}

func writeCharacter(w io.Writer, v *characterView) error {
	fmt.Fprintf(w, "%s\n", v.Name)
	fmt.Fprintf(w, "Total level %d, proficiency bonus +%d\n", v.TotalLevel, v.ProficiencyBonus)
	fmt.Fprintf(w, "INT %d  WIS %d  CHA %d\n\n",
		v.AbilityScores.Intelligence, v.AbilityScores.Wisdom, v.AbilityScores.Charisma)

	tw := newTable(w)
	fmt.Fprintln(tw, "CLASS\tLEVEL\tABILITY\tSAVE DC\tATTACK")
	for _, c := range v.Classes {
		dc, attack := "N/A", "N/A"
		if c.SaveDC != nil {
			dc = fmt.Sprintf("%d", *c.SaveDC)
		}
		if c.AttackBonus != nil {
			attack = fmt.Sprintf("%+d", *c.AttackBonus)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", c.Class, c.Level, orNA(c.Ability), dc, attack)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(v.Spells) == 0 {
		fmt.Fprintln(w, "No added spells.")
	} else if err := writeSpellTable(w, v.Spells); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return writeSlotRows(w, v.Slots)
}

func newCharactersShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a character with casting stats, added spells and slots",
		Args:  cobra.ExactArgs(1),
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

			view, err := buildCharacterView(ctx, session)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, view, func(w io.Writer) error {
				return writeCharacter(w, view)
			})
		},
	}
}

type saveOptions struct {
	classes      []string
	intelligence string
	wisdom       string
	charisma     string
}

func newCharactersSaveCmd(opts *rootOptions) *cobra.Command {
	so := &saveOptions{}

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Create a character or update a saved one",
		Long: `Save creates the named character, or updates it when it already exists.
Classes are given as name:level, e.g. --class wizard:5 --class cleric:1. Passing
any --class replaces the class list; levels outside 1..20 are clamped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			name := args[0]
			session, err := a.orchestrator.OpenSession(ctx, name)
			if errors.IsNotFound(err) {
				session = a.orchestrator.NewSession()
				session.SetName(name)
			} else if err != nil {
				return err
			}

			if len(so.classes) > 0 {
				if err := applyClasses(session, so.classes); err != nil {
					return err
				}
			}

			for _, score := range []struct {
				flag    string
				ability dnd5e.Ability
				value   string
			}{
				{flag: "int", ability: dnd5e.AbilityIntelligence, value: so.intelligence},
				{flag: "wis", ability: dnd5e.AbilityWisdom, value: so.wisdom},
				{flag: "cha", ability: dnd5e.AbilityCharisma, value: so.charisma},
			} {
				if !cmd.Flags().Changed(score.flag) {
					continue
				}
				if _, err := session.SetAbilityScore(score.ability, score.value); err != nil {
					return err
				}
			}

			out, err := session.Save(ctx)
			if err != nil {
				return err
			}

			verb := "Updated"
			if out.Created {
				verb = "Created"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", verb, name, session.Character().Summary())
			return err
		},
	}

	cmd.Flags().StringArrayVar(&so.classes, "class", nil, "Class and level as name:level (repeatable)")
	cmd.Flags().StringVar(&so.intelligence, "int", "", "Intelligence score (1-30, empty resets to 10)")
	cmd.Flags().StringVar(&so.wisdom, "wis", "", "Wisdom score (1-30, empty resets to 10)")
	cmd.Flags().StringVar(&so.charisma, "cha", "", "Charisma score (1-30, empty resets to 10)")
	return cmd
}

// parseClassArg reads "wizard:5". A missing or unparseable level is 1.
func parseClassArg(arg string) (dnd5e.ClassAssignment, error) {
	name, level, _ := strings.Cut(arg, ":")
	info, ok := dnd5e.ClassByName(name)
	if !ok {
		return dnd5e.ClassAssignment{}, errors.InvalidArgumentf("unknown class %q, expected one of: %s",
			name, strings.Join(dnd5e.ClassNames(), ", "))
	}
	return dnd5e.ClassAssignment{ClassID: info.ID, Level: dnd5e.ParseLevel(level)}, nil
}

func parseClassArgs(args []string) ([]dnd5e.ClassAssignment, error) {
	out := make([]dnd5e.ClassAssignment, 0, len(args))
	for _, arg := range args {
		a, err := parseClassArg(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// applyClasses replaces the session classes and sets each level
func applyClasses(session *spellbook.Session, args []string) error {
	assignments, err := parseClassArgs(args)
	if err != nil {
		return err
	}

	ids := make([]dnd5e.ClassID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ClassID)
	}
	if err := session.SetClasses(ids); err != nil {
		return err
	}
	for _, a := range assignments {
		if _, err := session.SetClassLevel(a.ClassID, fmt.Sprintf("%d", a.Level)); err != nil {
			return err
		}
	}
	return nil
}

func newCharactersDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a character and its spell slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.orchestrator.DeleteCharacter(ctx, args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return err
		},
	}
}

// sessionFromFlags opens a saved character or builds an unsaved one from
// --class flags. Explicit classes replace the saved ones.
func sessionFromFlags(ctx context.Context, a *app, name string, classes []string) (*spellbook.Session, error) {
	var session *spellbook.Session
	if name != "" {
		var err error
		session, err = a.orchestrator.OpenSession(ctx, name)
		if err != nil {
			return nil, err
		}
	} else {
		session = a.orchestrator.NewSession()
	}

	if len(classes) > 0 {
		if err := applyClasses(session, classes); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func newCharactersCheckCmd(opts *rootOptions) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find stored character data that reads silently skip",
		Long: `Check looks for a malformed character list, unnamed or duplicate records,
unreadable slot pools and a leftover single-character record from older saves.
With --fix the problems are repaired in one batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := opts.openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.orchestrator.CheckStorage(ctx, fix)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) error {
				if len(out.Issues) == 0 {
					_, err := fmt.Fprintf(w, "Checked %d keys, no problems found.\n", out.Checked)
					return err
				}
				tw := newTable(w)
				fmt.Fprintln(tw, "KEY\tPROBLEM")
				for _, issue := range out.Issues {
					fmt.Fprintf(tw, "%s\t%s\n", issue.Key, issue.Problem)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				if out.Fixed {
					_, err := fmt.Fprintf(w, "\nRepaired %d problems.\n", len(out.Issues))
					return err
				}
				_, err := fmt.Fprintln(w, "\nRun with --fix to repair.")
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair the problems found")
	return cmd
}
