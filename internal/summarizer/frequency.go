package summarizer

import "sort"

// FrequencySummarizer labels a group of notes with the keywords that occur
// in the most member keyword lists.
type FrequencySummarizer struct{}

// NewFrequencySummarizer creates a frequency-based group labeler.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{}
}

// Label returns up to maxTerms keywords ranked by how many lists contain
// them, then by total occurrences, then lexicographically.
func (s *FrequencySummarizer) Label(keywordLists [][]string, maxTerms int) []string {
	if maxTerms <= 0 {
		maxTerms = 3
	}
	docFreq := map[string]int{}
	total := map[string]int{}
	for _, kws := range keywordLists {
		seen := make(map[string]struct{}, len(kws))
		for _, kw := range kws {
			total[kw]++
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			docFreq[kw]++
		}
	}
	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		a, b := terms[i], terms[j]
		if docFreq[a] != docFreq[b] {
			return docFreq[a] > docFreq[b]
		}
		if total[a] != total[b] {
			return total[a] > total[b]
		}
		return a < b
	})
	if maxTerms > len(terms) {
		maxTerms = len(terms)
	}
	return terms[:maxTerms]
}
