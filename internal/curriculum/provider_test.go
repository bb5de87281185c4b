package curriculum_test

import (
	"context"
	"testing"

	"github.com/sproutly/sproutly/internal/curriculum"
	"github.com/sproutly/sproutly/internal/mastery"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsFor_Deterministic(t *testing.T) {
	p := curriculum.New()
	ctx := context.Background()

	first, err := p.CardsFor(ctx, models.SubjectMath, "math-1")
	require.NoError(t, err)
	second, err := p.CardsFor(ctx, models.SubjectMath, "math-1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "curriculum content must be stable")
	assert.Len(t, first, 5)
}

func TestCardsFor_AllCardsHaveItemIDs(t *testing.T) {
	p := curriculum.New()
	ctx := context.Background()

	for _, subject := range []string{models.SubjectMath, models.SubjectLetters} {
		for _, level := range p.Levels(subject) {
			cards, err := p.CardsFor(ctx, subject, level)
			require.NoError(t, err)
			require.NotEmpty(t, cards, "level %s", level)

			seen := map[string]bool{}
			for _, card := range cards {
				id, err := mastery.DeriveItemID(card)
				require.NoError(t, err, "card %s", card.ID)
				assert.False(t, seen[id], "duplicate item id %s in level %s", id, level)
				seen[id] = true
			}
		}
	}
}

func TestCardsFor_LetterLevelsCoverAlphabet(t *testing.T) {
	p := curriculum.New()
	ctx := context.Background()

	var letters []string
	for _, level := range p.Levels(models.SubjectLetters) {
		cards, err := p.CardsFor(ctx, models.SubjectLetters, level)
		require.NoError(t, err)
		for _, card := range cards {
			assert.NotEmpty(t, card.Word, "letter %s needs an anchor word", card.Letter)
			letters = append(letters, card.Letter)
		}
	}
	assert.Len(t, letters, 26)
}

func TestCardsFor_UnknownLevelIsEmptyNotError(t *testing.T) {
	p := curriculum.New()

	cards, err := p.CardsFor(context.Background(), models.SubjectMath, "math-99")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
