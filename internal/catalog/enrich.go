package catalog

import (
	"regexp"
	"slices"
	"strings"

	"github.com/KirkDiggler/spellbook/internal/entities/dnd5e"
)

var (
	// Captures the dice, an optional flat bonus and the words up to "damage"
	damagePhrasePattern = regexp.MustCompile(`(?i)(\d+d\d+(?:\s*\+\s*\d+)?\s*[^.,;]*?damage\b)`)
	damageDealtPattern  = regexp.MustCompile(`(?i)\b\d+d\d+(?:\s*\+\s*\d+)?(?:\s+\w+)?\s*damage\b`)
)

const (
	textPrefix        = "text |"
	descriptionPrefix = "description |"
	bulletPrefix      = "bullet |"
	damagePrefix      = "damage | "
)

// EnrichResult reports what Enrich changed across a dataset
type EnrichResult struct {
	Spells       int `json:"spells" yaml:"spells"`
	DamageTagged int `json:"damageTagged" yaml:"damageTagged"`
	SaveTagged   int `json:"saveTagged" yaml:"saveTagged"`
	DamageLines  int `json:"damageLines" yaml:"damageLines"`
}

// Enrich annotates dataset entries in place. Entries whose text mentions
// dice damage get a "damage" tag and a "damage | <phrase>" content block
// after their last text or bullet block. Entries mentioning a saving throw
// get a "needs_save" tag. Running it twice gives the same result.
func Enrich(entries []Entry) EnrichResult {
	result := EnrichResult{Spells: len(entries)}
	for i := range entries {
		dealsDamage, needsSave, phrase := enrichEntry(&entries[i])
		if dealsDamage {
			result.DamageTagged++
		}
		if needsSave {
			result.SaveTagged++
		}
		if phrase != "" {
			result.DamageLines++
		}
	}
	return result
}

func enrichEntry(e *Entry) (dealsDamage, needsSave bool, phrase string) {
	if e.Tags == nil {
		e.Tags = []string{}
	}

	contents := make([]string, 0, len(e.Contents)+1)
	for _, line := range e.Contents {
		if !strings.HasPrefix(line, damagePrefix) {
			contents = append(contents, line)
		}
	}

	for _, text := range analyzableText(e.Contents) {
		if damageDealtPattern.MatchString(text) {
			dealsDamage = true
		}
		if phrase == "" {
			if p := damagePhrase(text); p != "" {
				phrase = p
				dealsDamage = true
			}
		}
		if strings.Contains(strings.ToLower(text), "saving throw") {
			needsSave = true
		}
	}

	if dealsDamage && !slices.Contains(e.Tags, dnd5e.TagDamage) {
		e.Tags = append(e.Tags, dnd5e.TagDamage)
	}
	if needsSave && !slices.Contains(e.Tags, dnd5e.TagNeedsSave) {
		e.Tags = append(e.Tags, dnd5e.TagNeedsSave)
	}

	if phrase != "" {
		line := damagePrefix + phrase
		insertAt := len(contents)
		for i := len(contents) - 1; i >= 0; i-- {
			if strings.HasPrefix(contents[i], textPrefix) || strings.HasPrefix(contents[i], bulletPrefix) {
				insertAt = i + 1
				break
			}
		}
		if !slices.Contains(contents, line) {
			contents = append(contents, "")
			copy(contents[insertAt+1:], contents[insertAt:])
			contents[insertAt] = line
		}
	}

	e.Contents = contents
	return dealsDamage, needsSave, phrase
}

// analyzableText returns the bodies of text and description blocks
func analyzableText(contents []string) []string {
	var out []string
	for _, line := range contents {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, textPrefix):
			out = append(out, strings.TrimSpace(line[len(textPrefix):]))
		case strings.HasPrefix(lower, descriptionPrefix):
			out = append(out, strings.TrimSpace(line[len(descriptionPrefix):]))
		}
	}
	return out
}

// damagePhrase extracts e.g. "8d6 fire damage". "half as much damage"
// phrases are skipped unless they carry their own dice.
func damagePhrase(text string) string {
	m := damagePhrasePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	candidate := strings.TrimSpace(m[1])
	if strings.HasPrefix(strings.ToLower(candidate), "half as much") && !damageDealtPattern.MatchString(candidate) {
		return ""
	}

	candidate, _, _ = strings.Cut(candidate, ",")
	candidate, _, _ = strings.Cut(candidate, " on a")
	candidate = strings.TrimSpace(candidate)
	if strings.HasPrefix(strings.ToLower(candidate), "extra ") {
		candidate = candidate[len("extra "):]
	}
	return candidate
}
