package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_Segment(t *testing.T) {
	f := NewFields()
	assert.Equal(t, "fields", f.Name())
	assert.Equal(t, []string{"我", "喜欢", "编程"}, f.Segment("我 喜欢\t编程\n"))
	assert.Empty(t, f.Segment(""))
	assert.Empty(t, f.Segment("   "))
}

func TestDictionary_Segment(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the embedded dictionary")
	}
	d, err := NewDictionary()
	require.NoError(t, err)
	assert.Equal(t, "gse", d.Name())

	tokens := d.Segment("我喜欢编程 和数学")
	require.NotEmpty(t, tokens)
	for _, tok := range tokens {
		assert.NotEqual(t, "", strings.TrimSpace(tok), "whitespace token leaked")
	}
	assert.Equal(t, "我喜欢编程和数学", strings.Join(tokens, ""))
	assert.Empty(t, d.Segment(""))
}
