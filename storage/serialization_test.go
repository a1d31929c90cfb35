package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amnamine/djiblistore/core"
)

func TestProductRoundTrip(t *testing.T) {
	product := &core.Product{
		Id:         core.IDFromContent("samsunggalaxya16"),
		Brand:      "Samsung",
		Model:      "Galaxy A16",
		Name:       "Samsung Galaxy A16",
		Category:   core.CategorySmartphone,
		Price:      "32000 DA",
		Image:      "galaxy-a16.png",
		SearchText: "Samsung Galaxy A16 Smartphone Galaxy A16 32000 DA",
	}

	got, err := UnmarshalProduct(MarshalProduct(product))
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductUnmarshalTruncated(t *testing.T) {
	data := MarshalProduct(&core.Product{
		Id:    9,
		Brand: "ZTE",
		Model: "Blade A35",
		Name:  "ZTE Blade A35",
	})

	_, err := UnmarshalProduct(data[:len(data)/2])
	assert.Error(t, err)
}

func TestManifestRoundTrip(t *testing.T) {
	manifest := &core.BundleManifest{
		ScorerKind:   "linear",
		ProductCount: 42,
		StateSize:    1 << 16,
		TrainedAt:    time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	got, err := UnmarshalManifest(MarshalManifest(manifest))
	require.NoError(t, err)
	assert.Equal(t, manifest, got)
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDFromContent("iphone13")
	got, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
