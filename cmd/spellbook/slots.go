package main

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/spellbook"
)

func newSlotsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Track expended spell slots of a saved character",
	}
	cmd.AddCommand(
		newSlotsShowCmd(opts),
		newSlotsToggleCmd(opts, false),
		newSlotsToggleCmd(opts, true),
		newSlotsResetCmd(opts),
	)
	return cmd
}

// withSlots opens the named character, applies mutate and saves when
// mutate reports a change. The resulting rows are rendered.
func withSlots(
	cmd *cobra.Command,
	opts *rootOptions,
	name string,
	mutate func(*spellbook.Session) (bool, error),
) error {
	ctx := cmd.Context()
	a, err := opts.openApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	session, err := a.orchestrator.OpenSession(ctx, name)
	if err != nil {
		return err
	}

	changed, err := mutate(session)
	if err != nil {
		return err
	}
	if changed {
		if _, err := session.Save(ctx); err != nil {
			return err
		}
	}

	rows := toSlotRowViews(session.SlotRows())
	return render(cmd.OutOrStdout(), opts.output, rows, func(w io.Writer) error {
		return writeSlotRows(w, rows)
	})
}

func newSlotsShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show spell slot rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSlots(cmd, opts, args[0], func(*spellbook.Session) (bool, error) {
				return false, nil
			})
		},
	}
}

func newSlotsToggleCmd(opts *rootOptions, pact bool) *cobra.Command {
	use, short := "toggle <name> <level> <index>", "Flip a standard slot between available and expended"
	if pact {
		use, short = "toggle-pact <name> <slot-level> <index>", "Flip a warlock pact slot between available and expended"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.
Index counts from 1 within the level's row.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parsePositive("level", args[1])
			if err != nil {
				return err
			}
			index, err := parsePositive("index", args[2])
			if err != nil {
				return err
			}

			return withSlots(cmd, opts, args[0], func(session *spellbook.Session) (bool, error) {
				toggle := session.ToggleSlot
				if pact {
					toggle = session.TogglePactSlot
				}
				if _, err := toggle(level, index-1); err != nil {
					return false, err
				}
				return true, nil
			})
		},
	}
}

func newSlotsResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <name>",
		Short: "Mark every slot available after a long rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSlots(cmd, opts, args[0], func(session *spellbook.Session) (bool, error) {
				session.ResetSlots()
				return true, nil
			})
		},
	}
}

func parsePositive(field, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, errors.InvalidArgumentf("%s must be a positive number, got %q", field, arg).
			WithMeta("field", field)
	}
	return n, nil
}
