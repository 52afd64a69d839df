package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekw/internal/domain"
)

func TestStorage_InitValidates(t *testing.T) {
	s := NewStorage()
	assert.Error(t, s.Init(0))
	assert.NoError(t, s.Init(2))
}

func TestStorage_UpsertAndSearch(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Init(2))

	notes := []domain.Note{{ID: "a", Text: "编程"}, {ID: "b", Text: "音乐"}, {ID: "c", Text: "空"}}
	vectors := [][]float64{{1, 0}, {0, 1}, {0, 0}}
	require.NoError(t, s.Upsert(notes, vectors))
	assert.Equal(t, 3, s.Len())

	res, err := s.Search([]float64{0.9, 0.1}, 5)
	require.NoError(t, err)
	require.Len(t, res, 2, "zero vectors never match")
	assert.Equal(t, "a", res[0].Note.ID)
	assert.Greater(t, res[0].Score, res[1].Score)

	res, err = s.Search([]float64{1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.InDelta(t, 1.0, res[0].Score, 1e-9)
}

func TestStorage_UpsertReplacesByID(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Init(2))
	require.NoError(t, s.Upsert([]domain.Note{{ID: "a", Text: "old"}}, [][]float64{{1, 0}}))
	require.NoError(t, s.Upsert([]domain.Note{{ID: "a", Text: "new"}}, [][]float64{{0, 1}}))
	assert.Equal(t, 1, s.Len())

	res, err := s.Search([]float64{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "new", res[0].Note.Text)
}

func TestStorage_Errors(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Init(2))
	assert.Error(t, s.Upsert([]domain.Note{{ID: "a"}}, nil))
	assert.Error(t, s.Upsert([]domain.Note{{ID: "a"}}, [][]float64{{1}}))
	_, err := s.Search([]float64{1}, 1)
	assert.Error(t, err)
}

func TestStorage_Clear(t *testing.T) {
	s := NewStorage()
	require.NoError(t, s.Init(1))
	require.NoError(t, s.Upsert([]domain.Note{{ID: "a"}}, [][]float64{{1}}))
	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
	res, err := s.Search([]float64{1}, 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}
