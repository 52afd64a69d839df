package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	got := Split("a.txt", "第一条笔记\n第二行\n\n  \n第二条笔记\r\n\r\n\n")
	require.Len(t, got, 2)
	assert.Equal(t, "第一条笔记\n第二行", got[0].Text)
	assert.Equal(t, "第二条笔记", got[1].Text)
	assert.Equal(t, "a.txt", got[0].Source)
	assert.NotEqual(t, got[0].ID, got[1].ID)

	again := Split("a.txt", "第一条笔记\n第二行")
	assert.Equal(t, got[0].ID, again[0].ID, "ids are stable per source and position")

	assert.Empty(t, Split("empty.txt", " \n\n "))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("编程\n\n数学"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("音乐"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.md"), []byte("ignored"), 0o644))

	got, err := Load([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)
	assert.Equal(t, []string{"编程", "数学", "音乐"}, Texts(got))

	_, err = Load([]string{filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)

	got, err = Load([]string{filepath.Join(dir, "c.md")})
	require.NoError(t, err)
	assert.Empty(t, got)
}
