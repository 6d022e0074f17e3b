package extraction

// GuessAssignee returns the first known name in text, spelled as it appears
// there. It is a hint only.
func (e *Extractor) GuessAssignee(text string) (string, bool) {
	if e.names == nil {
		return "", false
	}
	m := e.names.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
