package noise

import "unicode/utf8"

// Remove keeps, in order, every token longer than one character that is
// not a member of any of the given sets. Duplicates are preserved.
func Remove(tokens []string, sets ...Set) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if inAny(tok, sets) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func inAny(tok string, sets []Set) bool {
	for _, s := range sets {
		if s.Contains(tok) {
			return true
		}
	}
	return false
}
