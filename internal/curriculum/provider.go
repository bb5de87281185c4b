package curriculum

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository"
)

// Provider is the built-in curriculum: deterministic card sets per
// (subject, level). Content is generated, not stored, so the same call always
// yields the same cards and the scheduler's item ids stay stable.
type Provider struct{}

// New creates the built-in curriculum provider.
func New() *Provider {
	return &Provider{}
}

var _ repository.CurriculumProvider = (*Provider)(nil)

var countingObjects = []string{"apple", "star", "ball", "fish", "duck", "block", "flower", "shell", "leaf", "button"}

var letterWords = map[string]string{
	"A": "Apple", "B": "Ball", "C": "Cat", "D": "Dog", "E": "Egg",
	"F": "Fish", "G": "Goat", "H": "Hat", "I": "Igloo", "J": "Jam",
	"K": "Kite", "L": "Lion", "M": "Moon", "N": "Nest", "O": "Owl",
	"P": "Pig", "Q": "Queen", "R": "Rain", "S": "Sun", "T": "Tree",
	"U": "Umbrella", "V": "Van", "W": "Whale", "X": "Xylophone",
	"Y": "Yarn", "Z": "Zebra",
}

// comparison pairs per level, small numbers only.
var comparisonPairs = [][2]int{{1, 3}, {4, 2}, {5, 5}, {2, 6}, {7, 4}, {8, 9}, {10, 6}, {3, 3}}

// CardsFor returns the card list for a subject and level. Unknown levels get
// an empty list, never an error the lesson path would have to special-case.
func (p *Provider) CardsFor(ctx context.Context, subject, levelID string) ([]models.LessonCard, error) {
	log := logger.FromContext(ctx).WithPrefix("curriculum")

	var cards []models.LessonCard
	switch {
	case subject == models.SubjectMath && levelID == "math-1":
		cards = countingCards(levelID, 1, 5)
	case subject == models.SubjectMath && levelID == "math-2":
		cards = countingCards(levelID, 6, 10)
	case subject == models.SubjectMath && levelID == "math-3":
		cards = comparisonCards(levelID)
	case subject == models.SubjectLetters && levelID == "letters-1":
		cards = letterCards(levelID, 'A', 'M')
	case subject == models.SubjectLetters && levelID == "letters-2":
		cards = letterCards(levelID, 'N', 'Z')
	default:
		log.Warn("no curriculum for subject=%s level=%s", subject, levelID)
		return []models.LessonCard{}, nil
	}

	log.Debug("curriculum: subject=%s level=%s cards=%d", subject, levelID, len(cards))
	return cards, nil
}

// Levels lists the known level ids for a subject, in teaching order.
func (p *Provider) Levels(subject string) []string {
	switch subject {
	case models.SubjectMath:
		return []string{"math-1", "math-2", "math-3"}
	case models.SubjectLetters:
		return []string{"letters-1", "letters-2"}
	default:
		return nil
	}
}

func countingCards(levelID string, from, to int) []models.LessonCard {
	var cards []models.LessonCard
	for n := from; n <= to; n++ {
		object := countingObjects[(n-1)%len(countingObjects)]
		cards = append(cards, models.LessonCard{
			ID:           fmt.Sprintf("%s-count-%d", levelID, n),
			Subject:      models.SubjectMath,
			LevelID:      levelID,
			ActivityType: models.ActivityCounting,
			Number:       n,
			ObjectName:   object,
			Options:      numberOptions(n),
		})
	}
	return cards
}

func comparisonCards(levelID string) []models.LessonCard {
	var cards []models.LessonCard
	for i, pair := range comparisonPairs {
		cards = append(cards, models.LessonCard{
			ID:           fmt.Sprintf("%s-cmp-%d", levelID, i+1),
			Subject:      models.SubjectMath,
			LevelID:      levelID,
			ActivityType: models.ActivityComparison,
			CompareLeft:  pair[0],
			CompareRight: pair[1],
			Options:      []string{"more", "fewer", "same"},
		})
	}
	return cards
}

func letterCards(levelID string, from, to rune) []models.LessonCard {
	var cards []models.LessonCard
	for ch := from; ch <= to; ch++ {
		letter := string(ch)
		cards = append(cards, models.LessonCard{
			ID:           fmt.Sprintf("%s-letter-%s", levelID, letter),
			Subject:      models.SubjectLetters,
			LevelID:      levelID,
			ActivityType: models.ActivityLetter,
			Letter:       letter,
			Word:         letterWords[letter],
		})
	}
	return cards
}

// numberOptions builds answer choices around n, always including n itself.
func numberOptions(n int) []string {
	opts := []int{n - 1, n, n + 1}
	if n == 1 {
		opts = []int{1, 2, 3}
	}
	out := make([]string, len(opts))
	for i, v := range opts {
		out[i] = strconv.Itoa(v)
	}
	return out
}
