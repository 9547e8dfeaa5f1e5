package catalog

import (
	"strings"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

const blockSeparator = "|"

// ParseDetails extracts the structured view of a spell from its content
// blocks. Blocks are "kind | field | value" strings. Property blocks fill
// the casting time, range, components and duration. Text blocks form the
// description. Everything after the first section block is upcast text,
// and a description block there provides the higher level note.
// Malformed blocks are skipped.
func ParseDetails(contents []string) dnd5e.SpellDetails {
	var details dnd5e.SpellDetails

	sectionIndex := -1
	for i, block := range contents {
		if blockKind(block) == dnd5e.BlockSection {
			sectionIndex = i
			break
		}
	}

	var texts []string
	for i, block := range contents {
		segments := splitBlock(block)
		afterSection := sectionIndex != -1 && i > sectionIndex

		switch blockKind(block) {
		case dnd5e.BlockProperty:
			parseProperty(&details, segments)
		case dnd5e.BlockText:
			if len(segments) < 2 {
				continue
			}
			texts = append(texts, segments[1])
			if afterSection {
				details.Descriptions = append(details.Descriptions, segments[1])
			}
		case dnd5e.BlockDescription:
			if afterSection {
				if len(segments) >= 3 {
					details.HigherLevel = segments[2]
				}
				continue
			}
			if len(segments) >= 2 {
				details.Descriptions = append(details.Descriptions, strings.Join(segments[1:], "\n\n"))
			}
		}
	}

	details.Description = strings.Join(texts, "\n\n")
	return details
}

func parseProperty(details *dnd5e.SpellDetails, segments []string) {
	if len(segments) < 3 {
		return
	}
	value := segments[2]
	switch segments[1] {
	case "Casting Time":
		details.CastingTime = value
	case "Range":
		details.Range = value
	case "Components":
		for _, c := range strings.Split(value, ",") {
			if c = strings.TrimSpace(c); c != "" {
				details.Components = append(details.Components, c)
			}
		}
	case "Duration":
		details.Duration = value
	}
}

func blockKind(block string) string {
	kind, _, _ := strings.Cut(block, blockSeparator)
	return strings.ToLower(strings.TrimSpace(kind))
}

func splitBlock(block string) []string {
	parts := strings.Split(block, blockSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
