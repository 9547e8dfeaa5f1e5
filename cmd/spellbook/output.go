package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/slotpool"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("output", format, []string{outputText, outputJSON, outputYAML}, vb)
	return vb.Build()
}

// render writes v as JSON or YAML, or calls text for the default format
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// spellView is the machine readable form of a listed spell
type spellView struct {
	Title         string   `json:"title" yaml:"title"`
	Level         int      `json:"level" yaml:"level"`
	Classes       []string `json:"classes" yaml:"classes"`
	Damage        string   `json:"damage,omitempty" yaml:"damage,omitempty"`
	DamageType    string   `json:"damageType,omitempty" yaml:"damageType,omitempty"`
	NeedsSave     bool     `json:"needsSave" yaml:"needsSave"`
	Concentration bool     `json:"concentration" yaml:"concentration"`
	Ritual        bool     `json:"ritual" yaml:"ritual"`
}

func toSpellViews(spells []*dnd5e.Spell) []spellView {
	out := make([]spellView, 0, len(spells))
	for _, s := range spells {
		out = append(out, spellView{
			Title:         s.Title,
			Level:         s.Level,
			Classes:       s.Classes,
			Damage:        s.Damage,
			DamageType:    s.DamageType,
			NeedsSave:     s.NeedsSave,
			Concentration: s.Concentration,
			Ritual:        s.Ritual,
		})
	}
	return out
}

func writeSpellTable(w io.Writer, spells []spellView) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "TITLE\tLEVEL\tDAMAGE\tTYPE\tSAVE\tCONC\tRITUAL")
	for _, s := range spells {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Title,
			levelLabel(s.Level),
			orNA(s.Damage),
			orNA(s.DamageType),
			yesNo(s.NeedsSave),
			yesNo(s.Concentration),
			yesNo(s.Ritual))
	}
	return tw.Flush()
}

// slotRowView is the machine readable form of a slot row
type slotRowView struct {
	Kind     string `json:"kind" yaml:"kind"`
	Label    string `json:"label" yaml:"label"`
	Level    int    `json:"level" yaml:"level"`
	Total    int    `json:"total" yaml:"total"`
	Expended []bool `json:"expended" yaml:"expended"`
}

func toSlotRowViews(rows []slotpool.Row) []slotRowView {
	out := make([]slotRowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, slotRowView{
			Kind:     string(r.Kind),
			Label:    r.Label,
			Level:    r.Level,
			Total:    r.Total,
			Expended: r.Expended,
		})
	}
	return out
}

func writeSlotRows(w io.Writer, rows []slotRowView) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No spell slots.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "POOL\tLEVEL\tSLOTS\tUSED")
	for _, r := range rows {
		used := 0
		for _, e := range r.Expended {
			if e {
				used++
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d/%d\n", r.Label, r.Level, checkboxes(r.Expended), used, len(r.Expended))
	}
	return tw.Flush()
}

func checkboxes(expended []bool) string {
	var b strings.Builder
	for _, e := range expended {
		if e {
			b.WriteString("[x]")
		} else {
			b.WriteString("[ ]")
		}
	}
	return b.String()
}

func levelLabel(level int) string {
	switch {
	case level == 0:
		return "Cantrip"
	case level == dnd5e.LevelUnknown:
		return "?"
	default:
		return fmt.Sprintf("%d", level)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
