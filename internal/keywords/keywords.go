// Package keywords turns free-text preference fields into normalized keyword
// sets used by the matcher.
package keywords

import "strings"

// Table holds the stop-word set and the multi-word phrase dictionary. Both are
// injected so tests can substitute fixtures; DefaultTable carries the
// canonical lists the scoring contract depends on.
type Table struct {
	StopWords map[string]struct{}
	Phrases   []string
}

// DefaultTable is the canonical extraction table. The stop-word list covers
// articles, pronouns, auxiliary verbs and filler words that show up in
// preference prose; the phrase list is a closed dictionary of role/skill
// phrases recognized as single keywords.
var DefaultTable = Table{
	StopWords: makeSet(
		"the", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "as", "is", "are", "was", "were", "be", "been",
		"being", "am", "do", "does", "did", "have", "has", "had", "will",
		"would", "can", "could", "should", "shall", "may", "might", "must",
		"you", "your", "yours", "we", "our", "ours", "they", "their", "them",
		"he", "she", "it", "its", "my", "mine", "me", "this", "that", "these",
		"those", "from", "into", "about", "any", "all", "some", "not", "no",
		"experience", "years", "looking", "prefer", "preferred", "ideally",
		"want", "wanted", "seeking", "role", "roles", "position", "positions",
		"job", "jobs", "work", "working", "etc", "plus", "open",
	),
	Phrases: []string{
		"software engineer",
		"software developer",
		"full stack",
		"front end",
		"back end",
		"site reliability",
		"tech lead",
		"team lead",
		"machine learning",
		"data scientist",
		"data engineer",
		"data analyst",
		"product manager",
		"project manager",
		"devops engineer",
		"web developer",
		"mobile developer",
		"engineering manager",
		"quality assurance",
		"ux designer",
		"ui designer",
	},
}

func makeSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// delimiterReplacer maps the delimiter characters used in preference prose to
// spaces before tokenizing.
var delimiterReplacer = strings.NewReplacer(
	",", " ", ";", " ", "/", " ", "-", " ", "(", " ", ")", " ",
)

// Extract returns the keyword set for text: single tokens of length >= 2 that
// are not stop words, plus any dictionary phrase contained in the lowered
// original text. The result is deterministic: tokens in first-seen order, then
// phrases in dictionary order, duplicates removed.
func (t Table) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)

	var result []string
	seen := map[string]struct{}{}

	for _, token := range strings.Fields(delimiterReplacer.Replace(lower)) {
		if len(token) < 2 {
			continue
		}
		if _, stop := t.StopWords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		result = append(result, token)
	}

	// Phrases are matched against the original lowered text, not the
	// delimiter-stripped tokens, so "full-stack" still hits "full stack"
	// only when the source text spells it with a space.
	for _, phrase := range t.Phrases {
		if !strings.Contains(lower, phrase) {
			continue
		}
		if _, dup := seen[phrase]; dup {
			continue
		}
		seen[phrase] = struct{}{}
		result = append(result, phrase)
	}

	return result
}

// Extract extracts keywords using the canonical table.
func Extract(text string) []string {
	return DefaultTable.Extract(text)
}
