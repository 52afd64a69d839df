package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencySummarizer_Label(t *testing.T) {
	s := NewFrequencySummarizer()
	lists := [][]string{
		{"编程", "数学"},
		{"编程", "算法"},
		{"数学", "编程"},
		{"算法"},
	}
	assert.Equal(t, []string{"编程", "数学"}, s.Label(lists, 2))
	assert.Equal(t, []string{"编程", "数学", "算法"}, s.Label(lists, 0))
	assert.Equal(t, []string{"编程", "数学", "算法"}, s.Label(lists, 10))
}

func TestFrequencySummarizer_TieBreaks(t *testing.T) {
	s := NewFrequencySummarizer()
	assert.Equal(t, []string{"b", "a", "c"}, s.Label([][]string{{"a", "b", "b"}, {"c"}}, 3))
	assert.Empty(t, s.Label(nil, 3))
	assert.Empty(t, s.Label([][]string{{}, {}}, 3))
}
