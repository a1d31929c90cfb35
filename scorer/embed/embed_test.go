package embed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/scorer"
)

// fakeEmbedder maps texts onto a fixed vocabulary axis so that similarity
// is predictable: texts sharing words get parallel vectors.
type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vocab := []string{"telephone", "smartphone", "zte", "ecouteurs", "kitman"}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, len(vocab))
		lower := strings.ToLower(text)
		for j, word := range vocab {
			if strings.Contains(lower, word) {
				vec[j] = 1
			}
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vecs, err := f.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func readyScorer(t *testing.T, fake *fakeEmbedder) *Scorer {
	t.Helper()
	s := newScorer(fake, "test-model")
	require.NoError(t, s.Fit(context.Background(), []scorer.Example{{Text: "probe", Label: 1}}))
	return s
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already suffixed", "http://localhost:11434/v1", "http://localhost:11434/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, NewConfig(WithHost("")).Validate())
	assert.Error(t, NewConfig(WithModel("")).Validate())
}

func TestScoreSimilarity(t *testing.T) {
	ctx := context.Background()
	s := readyScorer(t, &fakeEmbedder{})

	hit, err := s.Score(ctx, scorer.Feature("telephone zte", "zte smartphone telephone"))
	require.NoError(t, err)
	miss, err := s.Score(ctx, scorer.Feature("telephone zte", "ecouteurs kitman"))
	require.NoError(t, err)

	assert.Greater(t, hit, miss)
	assert.GreaterOrEqual(t, miss, 0.0)
	assert.LessOrEqual(t, hit, 1.0)
}

func TestScoreBeforeFit(t *testing.T) {
	s := newScorer(&fakeEmbedder{}, "test-model")
	_, err := s.Score(context.Background(), "telephone | zte")
	assert.ErrorIs(t, err, core.ErrModelNotReady)
}

func TestFitProbesService(t *testing.T) {
	fake := &fakeEmbedder{err: errors.New("connection refused")}
	s := newScorer(fake, "test-model")
	err := s.Fit(context.Background(), []scorer.Example{{Text: "probe", Label: 1}})
	require.Error(t, err)

	_, err = s.Score(context.Background(), "telephone | zte")
	assert.ErrorIs(t, err, core.ErrModelNotReady)
}

func TestFitEmpty(t *testing.T) {
	s := newScorer(&fakeEmbedder{}, "test-model")
	assert.ErrorIs(t, s.Fit(context.Background(), nil), scorer.ErrNoExamples)
}

func TestScoreServiceFailure(t *testing.T) {
	fake := &fakeEmbedder{}
	s := readyScorer(t, fake)
	fake.err = errors.New("service down")

	_, err := s.Score(context.Background(), "telephone | zte")
	assert.Error(t, err)
}

func TestStateRoundTrip(t *testing.T) {
	s := readyScorer(t, &fakeEmbedder{})
	state, err := s.MarshalBinary()
	require.NoError(t, err)
	assert.Empty(t, state)

	restored := newScorer(&fakeEmbedder{}, "test-model")
	require.NoError(t, restored.UnmarshalBinary(state))
	_, err = restored.Score(context.Background(), "telephone | zte")
	assert.NoError(t, err)
}
