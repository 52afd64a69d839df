package keywords

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekw/internal/noise"
	"notekw/internal/normalize"
	"notekw/internal/segment"
)

func newTestExtractor(t *testing.T, stop noise.Set) *Extractor {
	t.Helper()
	e, err := NewExtractor(normalize.New(segment.NewFields(), normalize.Options{Lowercase: true}), stop)
	require.NoError(t, err)
	return e
}

func newTestLearner(t *testing.T) *noise.Learner {
	t.Helper()
	tok := normalize.New(segment.NewFields(), normalize.Options{Lowercase: true})
	l, err := noise.NewLearner(noise.Config{}, tok, noise.NewFileCache(filepath.Join(t.TempDir(), "noise.json")))
	require.NoError(t, err)
	return l
}

var notes = []string{
	"我 喜欢 编程 和 数学 ， 编程 很 有趣",
	"我 喜欢 音乐 和 电影",
	"今天 学习 数学 和 物理",
}

func TestExtract_SingleDocumentRanksByFrequency(t *testing.T) {
	e := newTestExtractor(t, noise.Set{})
	got := e.Extract([]string{"编程 编程 数学"}, noise.Set{}, 2)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"编程", "数学"}, Terms(got[0]))
	assert.Greater(t, got[0][0].Score, got[0][1].Score)
}

func TestExtract_TopNBounds(t *testing.T) {
	e := newTestExtractor(t, noise.Set{})

	for _, n := range []int{0, -3} {
		got := e.Extract(notes, noise.Set{}, n)
		require.Len(t, got, len(notes))
		for _, kws := range got {
			assert.NotNil(t, kws)
			assert.Empty(t, kws)
		}
	}

	got := e.Extract([]string{"编程 数学"}, noise.Set{}, 10)
	assert.Len(t, got[0], 2, "never padded")

	for _, kws := range e.Extract(notes, noise.Set{}, 2) {
		assert.LessOrEqual(t, len(kws), 2)
	}
}

func TestExtract_EmptyDocuments(t *testing.T) {
	e := newTestExtractor(t, noise.Set{})
	got := e.Extract([]string{"", "！！！", "我 和", "编程 数学"}, noise.Set{}, 3)
	require.Len(t, got, 4)
	assert.Empty(t, got[0])
	assert.Empty(t, got[1])
	assert.Empty(t, got[2], "single-character tokens never survive")
	assert.ElementsMatch(t, []string{"编程", "数学"}, Terms(got[3]))

	assert.Empty(t, e.Extract(nil, noise.Set{}, 3))
}

func TestExtract_FiltersNoiseAndStopwords(t *testing.T) {
	e := newTestExtractor(t, noise.NewSet("有趣"))
	got := e.Extract(notes, noise.NewSet("喜欢"), 10)
	for _, kws := range got {
		for _, kw := range kws {
			assert.NotEqual(t, "喜欢", kw.Term)
			assert.NotEqual(t, "有趣", kw.Term)
			assert.Greater(t, len([]rune(kw.Term)), 1)
		}
	}
	assert.Equal(t, "编程", got[0][0].Term)
}

func TestExtract_IsDeterministic(t *testing.T) {
	e := newTestExtractor(t, noise.Set{})
	set := noise.NewSet("喜欢")
	first := e.Extract(notes, set, 3)
	for i := 0; i < 200; i++ {
		require.Equal(t, first, e.Extract(notes, set, 3))
	}
}

func TestExtract_TieBreakIsAlphabetical(t *testing.T) {
	e := newTestExtractor(t, noise.Set{})
	got := e.Extract([]string{"zeta alpha mid"}, noise.Set{}, 2)
	assert.Equal(t, []string{"alpha", "mid"}, Terms(got[0]))
}

func TestPipeline_ColdStartBootstrapsFromBatch(t *testing.T) {
	corpus := []string{"我 喜欢 编程 和 数学", "我 喜欢 音乐 和 电影"}

	auto := newTestLearner(t)
	require.True(t, auto.Empty())
	e := newTestExtractor(t, noise.Set{})
	got, err := e.Pipeline(corpus, auto, 4)
	require.NoError(t, err)
	assert.False(t, auto.Empty())
	assert.True(t, auto.IsNoise("喜欢"))

	manual := newTestLearner(t)
	require.NoError(t, manual.Fit(corpus))
	assert.Equal(t, e.Extract(corpus, manual.Noise(), 4), got)

	assert.ElementsMatch(t, []string{"编程", "数学"}, Terms(got[0]))
	assert.ElementsMatch(t, []string{"电影", "音乐"}, Terms(got[1]))
}

func TestPipeline_SeededLearnerIsNotRefit(t *testing.T) {
	l := newTestLearner(t)
	require.NoError(t, l.Fit([]string{"猫咪 可爱", "猫咪 睡觉"}))

	e := newTestExtractor(t, noise.Set{})
	got, err := e.Pipeline([]string{"我 喜欢 猫咪 和 编程"}, l, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"猫咪"}, l.Noise().Words())
	assert.ElementsMatch(t, []string{"喜欢", "编程"}, Terms(got[0]))
}

type brokenLearner struct{}

func (brokenLearner) Empty() bool { return true }

func (brokenLearner) Fit([]string) error { return errors.New("persist failed") }

func (brokenLearner) Noise() noise.Set { return noise.Set{} }

func TestPipeline_FitErrorPropagates(t *testing.T) {
	e := newTestExtractor(t, noise.Set{})
	_, err := e.Pipeline(notes, brokenLearner{}, 4)
	assert.Error(t, err)

	_, err = e.Pipeline(notes, nil, 4)
	assert.Error(t, err)
}

func TestNewExtractor_NilTokenizer(t *testing.T) {
	_, err := NewExtractor(nil, noise.Set{})
	assert.Error(t, err)
}

func TestTermLists(t *testing.T) {
	lists := [][]Keyword{{{Term: "a", Score: 1}, {Term: "b", Score: 0.5}}, {}}
	assert.Equal(t, [][]string{{"a", "b"}, {}}, TermLists(lists))
}
