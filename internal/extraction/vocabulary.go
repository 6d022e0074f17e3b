package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Language tags used by the default vocabulary.
const (
	LangEnglish = "en"
	LangRussian = "ru"
)

// Vocabulary holds the data tables the heuristics match against.
type Vocabulary struct {
	// Verbs maps a language tag to imperative verbs that open an action item.
	Verbs map[string][]string
	// Names lists the people the assignee guesser knows about.
	Names []string
}

// DefaultVocabulary returns the built-in English and Russian tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Verbs: map[string][]string{
			LangEnglish: {"do", "fix", "create", "update", "prepare", "write"},
			LangRussian: {"сделать", "исправить", "создать", "подготовить", "написать"},
		},
		Names: []string{"Aisulu", "Samat", "Айсулу", "Самат"},
	}
}

// Merge returns a copy of v with other's verbs appended per language and
// other's names appended to the list. Duplicates are dropped.
func (v Vocabulary) Merge(other Vocabulary) Vocabulary {
	out := Vocabulary{Verbs: make(map[string][]string, len(v.Verbs)+len(other.Verbs))}
	for _, src := range []map[string][]string{v.Verbs, other.Verbs} {
		for lang, verbs := range src {
			out.Verbs[lang] = appendUnique(out.Verbs[lang], verbs...)
		}
	}
	out.Names = appendUnique(append([]string(nil), v.Names...), other.Names...)
	return out
}

// Languages returns the language tags in sorted order.
func (v Vocabulary) Languages() []string {
	langs := make([]string, 0, len(v.Verbs))
	for lang := range v.Verbs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Go's \b is ASCII-only, so word boundaries are spelled out with Unicode classes
// to keep Cyrillic entries matching.
const (
	wordChar      = `\p{L}\p{N}_`
	boundaryAfter = `(?:[^` + wordChar + `]|$)`
	boundaryStart = `(?:^|[^` + wordChar + `])`
)

// verbPattern compiles the verb table into one anchored case-insensitive regexp.
// It returns nil when the table is empty.
func (v Vocabulary) verbPattern() (*regexp.Regexp, error) {
	var alts []string
	for _, lang := range v.Languages() {
		alts = appendUnique(alts, quoteAll(v.Verbs[lang])...)
	}
	if len(alts) == 0 {
		return nil, nil
	}
	re, err := regexp.Compile(`(?i)^(?:` + strings.Join(alts, "|") + `)` + boundaryAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to compile verb table: %w", err)
	}
	return re, nil
}

// namePattern compiles the name list; submatch 1 is the matched name.
func (v Vocabulary) namePattern() (*regexp.Regexp, error) {
	alts := quoteAll(v.Names)
	if len(alts) == 0 {
		return nil, nil
	}
	re, err := regexp.Compile(`(?i)` + boundaryStart + `(` + strings.Join(alts, "|") + `)` + boundaryAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to compile name table: %w", err)
	}
	return re, nil
}

func quoteAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out = append(out, regexp.QuoteMeta(w))
	}
	return out
}

func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst)+len(items))
	for _, d := range dst {
		seen[d] = true
	}
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		dst = append(dst, it)
	}
	return dst
}
