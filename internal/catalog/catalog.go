// Package catalog loads the static spell dataset and projects its
// tag-encoded metadata into typed dnd5e.Spell values.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

var (
	levelTagPattern   = regexp.MustCompile(`(?i)^(\d+)(st|nd|rd|th) level$`)
	damageDicePattern = regexp.MustCompile(`\d+d\d+`)
)

// Entry is one record of the catalog dataset as stored on disk
type Entry struct {
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Contents []string `json:"contents"`
}

// Catalog is an immutable, ordered set of spells
type Catalog struct {
	spells  []*dnd5e.Spell
	byTitle map[string]*dnd5e.Spell
}

// New projects dataset entries into a catalog. Entries without a title are
// skipped; a repeated title keeps its first entry.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		spells:  make([]*dnd5e.Spell, 0, len(entries)),
		byTitle: make(map[string]*dnd5e.Spell, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		if _, exists := c.byTitle[e.Title]; exists {
			continue
		}
		spell := Project(e)
		c.spells = append(c.spells, spell)
		c.byTitle[spell.Title] = spell
	}
	return c
}

// Load decodes a JSON array of entries from r
func Load(ctx context.Context, r io.Reader) (*Catalog, error) {
	entries, err := DecodeEntries(r)
	if err != nil {
		return nil, err
	}

	c := New(entries)
	slog.DebugContext(ctx, "loaded spell catalog",
		"entries", len(entries),
		"spells", c.Len())
	return c, nil
}

// LoadFile loads the catalog from a JSON file
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
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

	return Load(ctx, f)
}

// DecodeEntries reads the raw dataset without projecting it
func DecodeEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode spell catalog")
	}
	return entries, nil
}

// EncodeEntries writes the dataset as indented JSON
func EncodeEntries(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return errors.Wrap(err, "failed to encode spell catalog")
	}
	return nil
}

// Spells returns the catalog in dataset order
func (c *Catalog) Spells() []*dnd5e.Spell {
	out := make([]*dnd5e.Spell, len(c.spells))
	copy(out, c.spells)
	return out
}

// Len returns the number of spells
func (c *Catalog) Len() int {
	return len(c.spells)
}

// Get looks a spell up by exact title
func (c *Catalog) Get(title string) (*dnd5e.Spell, bool) {
	s, ok := c.byTitle[title]
	return s, ok
}

// Project derives the typed fields of a spell from a dataset entry
func Project(e Entry) *dnd5e.Spell {
	spell := &dnd5e.Spell{
		Title:    e.Title,
		Tags:     append([]string(nil), e.Tags...),
		Contents: append([]string(nil), e.Contents...),
		Level:    ParseLevel(e.Tags),
	}

	for _, tag := range e.Tags {
		switch {
		case tag == dnd5e.TagConcentration:
			spell.Concentration = true
		case tag == dnd5e.TagRitual:
			spell.Ritual = true
		case tag == dnd5e.TagNeedsSave:
			spell.NeedsSave = true
		default:
			if info, ok := dnd5e.ClassByName(tag); ok && info.Name == tag {
				spell.Classes = append(spell.Classes, tag)
			}
		}
	}

	spell.Damage = DamageDice(e.Contents)
	spell.DamageType = DamageType(e.Contents)
	return spell
}

// ParseLevel returns the spell level encoded in tags: the first tag like
// "3rd level" gives 3, otherwise a "Cantrips" tag gives 0, otherwise
// dnd5e.LevelUnknown.
func ParseLevel(tags []string) int {
	for _, tag := range tags {
		m := levelTagPattern.FindStringSubmatch(tag)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return dnd5e.LevelUnknown
		}
		return n
	}
	for _, tag := range tags {
		if tag == dnd5e.TagCantrips {
			return 0
		}
	}
	return dnd5e.LevelUnknown
}

// DamageDice returns the first dice expression found in the contents
func DamageDice(contents []string) string {
	for _, line := range contents {
		if m := damageDicePattern.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// DamageType returns the first damage type named by the first content
// line that names any, or "" when none does
func DamageType(contents []string) string {
	for _, line := range contents {
		for _, t := range dnd5e.DamageTypes {
			if strings.Contains(line, t) {
				return t
			}
		}
	}
	return ""
}
