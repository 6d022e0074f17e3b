package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"transcript-tasks/pkg/datemath"
)

var (
	lineSplitter = regexp.MustCompile(`[\n\r]+`)
	bulletPrefix = regexp.MustCompile(`^(?:-|\*|\p{Nd}+\.)[\s\p{Z}]+`)
)

// Extractor classifies transcript lines and builds Task records from them.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	verbs    *regexp.Regexp
	names    *regexp.Regexp
	resolver *datemath.Resolver
}

// New compiles vocab and returns an Extractor that resolves due dates with resolver.
func New(vocab Vocabulary, resolver *datemath.Resolver) (*Extractor, error) {
	if resolver == nil {
		return nil, fmt.Errorf("date resolver is required")
	}
	verbs, err := vocab.verbPattern()
	if err != nil {
		return nil, err
	}
	names, err := vocab.namePattern()
	if err != nil {
		return nil, err
	}
	return &Extractor{verbs: verbs, names: names, resolver: resolver}, nil
}

// Extract runs ExtractAt with today's date as the reference.
func (e *Extractor) Extract(text string) []Task {
	return e.ExtractAt(text, e.resolver.Today())
}

// ExtractAt returns the tasks found in text in order of appearance, resolving
// relative dates against ref. Non-empty text always yields at least one task;
// empty text yields none.
func (e *Extractor) ExtractAt(text string, ref time.Time) []Task {
	tasks := make([]Task, 0)
	for _, line := range splitLines(text) {
		if !e.IsActionable(line) {
			continue
		}
		t := Task{
			Summary:     truncate(bulletPrefix.ReplaceAllString(line, ""), MaxSummaryLength),
			Description: line,
		}
		if due, ok := e.resolver.Resolve(line, ref); ok {
			t.DueDate = due
		}
		tasks = append(tasks, t)
	}

	if len(tasks) == 0 && text != "" {
		tasks = append(tasks, Task{
			Summary:     truncate(text, MaxSummaryLength),
			Description: text,
		})
	}
	return tasks
}

// IsActionable reports whether a single trimmed line opens with a bullet,
// an ordinal like "2.", or a known imperative verb.
func (e *Extractor) IsActionable(line string) bool {
	if bulletPrefix.MatchString(line) {
		return true
	}
	return e.verbs != nil && e.verbs.MatchString(line)
}

// splitLines splits on runs of line breaks and drops blank lines.
func splitLines(text string) []string {
	parts := lineSplitter.Split(text, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

// truncate keeps at most n characters (runes, not bytes).
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
