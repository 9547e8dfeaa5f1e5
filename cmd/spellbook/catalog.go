package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/catalog"
	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and maintain the spell catalog dataset",
	}
	cmd.AddCommand(
		newCatalogStatsCmd(opts),
		newCatalogEnrichCmd(opts),
	)
	return cmd
}

type catalogStatsView struct {
	Path    string      `json:"path" yaml:"path"`
	Spells  int         `json:"spells" yaml:"spells"`
	ByLevel map[int]int `json:"byLevel" yaml:"byLevel"`
}

func newCatalogStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count catalog spells by level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.LoadFile(cmd.Context(), opts.cfg.CatalogPath)
			if err != nil {
				return err
			}

			view := catalogStatsView{Path: opts.cfg.CatalogPath, Spells: cat.Len(), ByLevel: map[int]int{}}
			for _, spell := range cat.Spells() {
				view.ByLevel[spell.Level]++
			}

			return render(cmd.OutOrStdout(), opts.output, view, func(w io.Writer) error {
				fmt.Fprintf(w, "%s: %d spells\n", view.Path, view.Spells)
				tw := newTable(w)
				fmt.Fprintln(tw, "LEVEL\tSPELLS")
				for _, level := range catalogLevels(view.ByLevel) {
					fmt.Fprintf(tw, "%s\t%d\n", levelLabel(level), view.ByLevel[level])
				}
				return tw.Flush()
			})
		},
	}
}

func catalogLevels(byLevel map[int]int) []int {
	levels := make([]int, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	// unknown levels sort last
	slices.SortFunc(levels, func(a, b int) int {
		switch {
		case a == b:
			return 0
		case a == dnd5e.LevelUnknown:
			return 1
		case b == dnd5e.LevelUnknown:
			return -1
		default:
			return a - b
		}
	})
	return levels
}

type enrichOptions struct {
	out string
}

func newCatalogEnrichCmd(opts *rootOptions) *cobra.Command {
	eo := &enrichOptions{}

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Tag damage and saving throw spells in the catalog dataset",
		Long: `Enrich reads the catalog dataset, adds "damage" and "needs_save" tags and a
"damage | ..." content line where the text mentions dice damage, and writes
the result. Without --out the catalog file is rewritten in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			in := opts.cfg.CatalogPath
			out := eo.out
			if out == "" {
				out = in
			}

			entries, err := readEntries(in)
			if err != nil {
				return err
			}

			result := catalog.Enrich(entries)
			if err := writeEntries(out, entries); err != nil {
				return err
			}

			slog.InfoContext(ctx, "enriched spell catalog",
				"catalog_path", in,
				"out_path", out,
				"spells", result.Spells)

			return render(cmd.OutOrStdout(), opts.output, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Enriched %d spells: %d deal damage, %d need a save, %d damage lines. Wrote %s\n",
					result.Spells, result.DamageTagged, result.SaveTagged, result.DamageLines, out)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&eo.out, "out", "", "Where to write the enriched dataset")
	return cmd
}

func readEntries(path string) ([]catalog.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open catalog file %s", path)
	}
	defer func() {
		_ = f.Close()
	}()
	return catalog.DecodeEntries(f)
}

// writeEntries replaces path through a temp file in the same directory
func writeEntries(path string, entries []catalog.Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*.json")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", path)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := catalog.EncodeEntries(tmp, entries); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
