package rank

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/lexicon"
	"github.com/amnamine/djiblistore/scorer"
	"github.com/amnamine/djiblistore/scorer/mock"
)

func testCatalog() []core.Product {
	return []core.Product{
		{
			Id:         core.IDFromContent("ztebladea35"),
			Brand:      "ZTE",
			Model:      "Blade A35",
			Name:       "ZTE Blade A35",
			Category:   core.CategorySmartphone,
			Price:      "12500 DA",
			SearchText: "ZTE Blade A35 Smartphone Blade A35 12500 DA",
		},
		{
			Id:         core.IDFromContent("kitmanpro"),
			Brand:      "Kitman",
			Model:      "Pro",
			Name:       "Kitman Pro",
			Category:   core.CategoryAudio,
			Price:      "3200 DA",
			SearchText: "Kitman Pro Accessoire_Audio Pro 3200 DA",
		},
		{
			Id:         core.IDFromContent("tplinkarcher"),
			Brand:      "TP-Link",
			Model:      "Archer C6",
			Name:       "TP-Link Archer C6",
			Category:   core.CategoryRouterModem,
			Price:      "8900 DA",
			SearchText: "TP-Link Archer C6 Routeur_Modem Archer C6 8900 DA",
		},
	}
}

func newTestRanker(t *testing.T, sc scorer.Scorer, opts ...Option) *Ranker {
	t.Helper()
	ranker, err := NewRanker(testCatalog(), sc, lexicon.NewNormalizer(lexicon.DefaultSynonyms()), opts...)
	require.NoError(t, err)
	return ranker
}

func TestNewRankerValidation(t *testing.T) {
	normalizer := lexicon.NewNormalizer(lexicon.DefaultSynonyms())

	_, err := NewRanker(testCatalog(), nil, normalizer)
	assert.ErrorIs(t, err, ErrScorerRequired)

	_, err = NewRanker(testCatalog(), mock.NewTrained(), nil)
	assert.ErrorIs(t, err, ErrNormalizerRequired)

	_, err = NewRanker(testCatalog(), mock.NewTrained(), normalizer, WithThreshold(1.5))
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = NewRanker(testCatalog(), mock.NewTrained(), normalizer, WithTopK(0))
	assert.ErrorIs(t, err, ErrInvalidTopK)
}

func TestRankSlangQuery(t *testing.T) {
	ranker := newTestRanker(t, mock.NewTrained())

	// "telephone" expands to smartphone through the lexicon, so the ZTE
	// entry matches even though the query never says "smartphone".
	results, err := ranker.Rank(context.Background(), "telephone zte")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ZTE Blade A35", results[0].Product.Name)
	assert.Greater(t, results[0].Score, DefaultThreshold)
}

func TestRankEmptyQuery(t *testing.T) {
	ranker := newTestRanker(t, mock.NewTrained())
	results, err := ranker.Rank(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRankEmptyCatalog(t *testing.T) {
	ranker, err := NewRanker(nil, mock.NewTrained(), lexicon.NewNormalizer(lexicon.DefaultSynonyms()))
	require.NoError(t, err)

	results, err := ranker.Rank(context.Background(), "telephone")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRankUntrainedScorer(t *testing.T) {
	ranker := newTestRanker(t, mock.New())
	_, err := ranker.Rank(context.Background(), "telephone zte")
	assert.ErrorIs(t, err, core.ErrModelNotReady)
}

func TestRankSortedAndCapped(t *testing.T) {
	sc := mock.NewTrained()
	sc.ScoreFunc = func(_ context.Context, text string) (float64, error) {
		// Spread the three products across distinct passing scores.
		switch {
		case strings.Contains(text, "ZTE"):
			return 0.9, nil
		case strings.Contains(text, "Kitman"):
			return 0.7, nil
		default:
			return 0.5, nil
		}
	}

	ranker := newTestRanker(t, sc, WithTopK(2))
	results, err := ranker.Rank(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "ZTE Blade A35", results[0].Product.Name)
	assert.Equal(t, "Kitman Pro", results[1].Product.Name)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestRankThresholdFilter(t *testing.T) {
	sc := mock.NewTrained()
	sc.ScoreFunc = func(_ context.Context, text string) (float64, error) {
		if strings.Contains(text, "ZTE") {
			return 0.36, nil
		}
		return 0.35, nil
	}

	ranker := newTestRanker(t, sc)
	results, err := ranker.Rank(context.Background(), "telephone")
	require.NoError(t, err)

	// Exactly at the threshold does not pass.
	require.Len(t, results, 1)
	assert.Equal(t, "ZTE Blade A35", results[0].Product.Name)
}

func TestRankScoringFailureDegrades(t *testing.T) {
	sc := mock.NewTrained()
	sc.ScoreFunc = func(context.Context, string) (float64, error) {
		return 0, errors.New("scorer exploded")
	}

	ranker := newTestRanker(t, sc)
	results, err := ranker.Rank(context.Background(), "telephone zte")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRankDeadline(t *testing.T) {
	sc := mock.NewTrained()
	sc.ScoreFunc = func(ctx context.Context, _ string) (float64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	ranker := newTestRanker(t, sc)
	_, err := ranker.Rank(ctx, "telephone zte")
	assert.ErrorIs(t, err, core.ErrScoringTimeout)
}

type recordingMonitor struct {
	started    string
	normalized string
	scored     int
	finished   int
}

func (m *recordingMonitor) Start(query string)                      { m.started = query }
func (m *recordingMonitor) AfterNormalization(normalized string)    { m.normalized = normalized }
func (m *recordingMonitor) Scored(_ *core.Product, _ float64)       { m.scored++ }
func (m *recordingMonitor) BelowThreshold(_ *core.Product, _ float64) {}
func (m *recordingMonitor) Finish(results []core.RankedResult)      { m.finished = len(results) }

func TestRankWithMonitor(t *testing.T) {
	ranker := newTestRanker(t, mock.NewTrained())
	monitor := &recordingMonitor{}

	results, err := ranker.RankWithMonitor(context.Background(), "Telephone ZTE", monitor)
	require.NoError(t, err)

	assert.Equal(t, "Telephone ZTE", monitor.started)
	assert.Equal(t, "telephone smartphone zte", monitor.normalized)
	assert.Equal(t, len(testCatalog()), monitor.scored)
	assert.Equal(t, len(results), monitor.finished)
}

func TestRankStableOrderOnTies(t *testing.T) {
	sc := mock.NewTrained()
	sc.ScoreFunc = func(context.Context, string) (float64, error) {
		return 0.8, nil
	}

	ranker := newTestRanker(t, sc)
	first, err := ranker.Rank(context.Background(), "anything")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := ranker.Rank(context.Background(), "anything")
		require.NoError(t, err)
		require.Equal(t, len(first), len(again), fmt.Sprintf("run %d", i))
		for j := range first {
			assert.Equal(t, first[j].Product.Id, again[j].Product.Id)
		}
	}
}
