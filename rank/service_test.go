package rank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amnamine/djiblistore/catalog"
	"github.com/amnamine/djiblistore/scorer/mock"
)

func TestServiceSearch(t *testing.T) {
	ranker := newTestRanker(t, mock.NewTrained())

	images := catalog.BuildImageIndex([]catalog.RawEntry{
		{Title: "ZTE", Description: "Blade A35", Price: "12500 DA", Image: "blade-a35.png"},
	})

	service, err := NewService(ranker, images)
	require.NoError(t, err)

	hits, err := service.Search(context.Background(), "telephone zte")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	hit := hits[0]
	assert.Equal(t, "ZTE Blade A35", hit.Name)
	assert.Equal(t, "12500 DA", hit.Price)
	assert.Equal(t, "smartphone", hit.Category)
	assert.Equal(t, "Blade A35", hit.Description)
	assert.Equal(t, "blade-a35.png", hit.Image)
	assert.Greater(t, hit.Score, DefaultThreshold)
}

func TestServiceSearchWithoutImages(t *testing.T) {
	ranker := newTestRanker(t, mock.NewTrained())
	service, err := NewService(ranker, nil)
	require.NoError(t, err)

	hits, err := service.Search(context.Background(), "telephone zte")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Empty(t, hits[0].Image)
}

func TestServiceSearchEmptyQuery(t *testing.T) {
	ranker := newTestRanker(t, mock.NewTrained())
	service, err := NewService(ranker, nil)
	require.NoError(t, err)

	hits, err := service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestNewServiceValidation(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)
}
