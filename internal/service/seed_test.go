package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDeck(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	deck, err := sampleDeck(createdAt)
	require.NoError(t, err)

	assert.Equal(t, SampleDeckID, deck.ID)
	assert.Equal(t, "Biology 101", deck.Title)
	assert.Equal(t, "Introduction to basic biology concepts", deck.Description)
	assert.Equal(t, createdAt, deck.CreatedAt)
	assert.Nil(t, deck.LastStudied)

	require.Len(t, deck.Cards, 3)
	for i, want := range []string{"card-1", "card-2", "card-3"} {
		assert.Equal(t, want, deck.Cards[i].ID)
		assert.NotEmpty(t, deck.Cards[i].Front)
		assert.NotEmpty(t, deck.Cards[i].Back)
	}
	assert.Equal(t, "What is DNA?", deck.Cards[2].Front)
	assert.NotContains(t, deck.Cards[0].Back, "\n", "folded scalars are joined into one line")
}
