package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/lexicon"
)

func TestFeature(t *testing.T) {
	got := Feature("telephone smartphone zte", "ZTE Blade Smartphone ZTE Blade 12500 DA")
	assert.Equal(t, "telephone smartphone zte | ZTE Blade Smartphone ZTE Blade 12500 DA", got)
}

func TestBuildExamples(t *testing.T) {
	normalizer := lexicon.NewNormalizer(lexicon.DefaultSynonyms())
	rows := []core.TrainingExample{
		{
			ProductId:   7,
			ProductName: "ZTE Blade A35",
			Category:    core.CategorySmartphone,
			Description: "ZTE Blade A35",
			Price:       "12500 DA",
			Query:       "Jawl ZTE!",
			Label:       1,
		},
	}

	examples := BuildExamples(normalizer, rows)
	require.Len(t, examples, 1)
	assert.Equal(t, 1, examples[0].Label)

	// Slang expands through the shared normalizer, same as live queries.
	assert.Equal(t,
		"jawl smartphone zte | ZTE Blade A35 Smartphone ZTE Blade A35 12500 DA",
		examples[0].Text)
}
