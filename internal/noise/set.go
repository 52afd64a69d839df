// Package noise decides which tokens carry no ranking signal: a fixed
// single-character rule plus a corpus-adaptive noise-word set that is
// learned from inverse document frequency and persisted between runs.
package noise

import "sort"

// Set is an immutable set of noise words. The zero value is empty.
type Set struct {
	members map[string]struct{}
}

// NewSet builds a Set from words.
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{members: m}
}

// Contains reports whether word is a member.
func (s Set) Contains(word string) bool {
	_, ok := s.members[word]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.members) }

// Empty reports whether the set has no members.
func (s Set) Empty() bool { return len(s.members) == 0 }

// Words returns the members in sorted order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.members))
	for w := range s.members {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Union returns a new Set holding the members of s and o.
func (s Set) Union(o Set) Set {
	m := make(map[string]struct{}, len(s.members)+len(o.members))
	for w := range s.members {
		m[w] = struct{}{}
	}
	for w := range o.members {
		m[w] = struct{}{}
	}
	return Set{members: m}
}

// Equal reports whether both sets hold exactly the same words.
func (s Set) Equal(o Set) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for w := range s.members {
		if _, ok := o.members[w]; !ok {
			return false
		}
	}
	return true
}
