package noise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var zero Set
	assert.True(t, zero.Empty())
	assert.False(t, zero.Contains("x"))
	assert.Empty(t, zero.Words())

	s := NewSet("b", "a", "b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.Equal(t, []string{"a", "b"}, s.Words())

	u := s.Union(NewSet("c"))
	assert.Equal(t, []string{"a", "b", "c"}, u.Words())
	assert.Equal(t, 2, s.Len(), "union must not mutate the receiver")

	assert.True(t, s.Equal(NewSet("a", "b")))
	assert.False(t, s.Equal(NewSet("a")))
	assert.False(t, s.Equal(NewSet("a", "c")))
	assert.True(t, zero.Equal(NewSet()))
}

func TestRemove(t *testing.T) {
	noise := NewSet("喜欢", "the")

	tests := []struct {
		name   string
		tokens []string
		sets   []Set
		want   []string
	}{
		{name: "empty", tokens: nil, sets: []Set{noise}, want: []string{}},
		{name: "single characters dropped", tokens: []string{"我", "a", "编程"}, want: []string{"编程"}},
		{name: "members dropped", tokens: []string{"喜欢", "编程", "the", "notes"}, sets: []Set{noise}, want: []string{"编程", "notes"}},
		{name: "duplicates and order kept", tokens: []string{"数学", "编程", "数学"}, sets: []Set{noise}, want: []string{"数学", "编程", "数学"}},
		{name: "several sets", tokens: []string{"编程", "数学", "音乐"}, sets: []Set{NewSet("编程"), NewSet("音乐")}, want: []string{"数学"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remove(tt.tokens, tt.sets...))
		})
	}
}

func TestRemove_NeverEmitsShortOrNoiseTokens(t *testing.T) {
	sets := []Set{NewSet("ab", "喜欢"), NewSet("xyz")}
	inputs := [][]string{
		{"a", "ab", "abc", "喜", "喜欢", "喜欢你", "", "xyz", "xy"},
		strings.Fields("我 喜欢 编程 和 数学 ab cd e"),
	}
	for _, in := range inputs {
		for _, tok := range Remove(in, sets...) {
			assert.Greater(t, len([]rune(tok)), 1, tok)
			for _, s := range sets {
				assert.False(t, s.Contains(tok), tok)
			}
		}
	}
}

func TestReadStopwords(t *testing.T) {
	s, err := ReadStopwords(strings.NewReader("的\n\n// comment\n  The \n了\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "了", "的"}, s.Words())
}

func TestLoadStopwords_MissingFileIsEmpty(t *testing.T) {
	s, err := LoadStopwords(t.TempDir() + "/nope.txt")
	require.NoError(t, err)
	assert.True(t, s.Empty())

	s, err = LoadStopwords("")
	require.NoError(t, err)
	assert.True(t, s.Empty())
}
