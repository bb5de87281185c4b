package mastery

import (
	"fmt"
	"strings"

	"github.com/sproutly/sproutly/internal/models"
)

// ErrUnknownActivity is returned when a card's activity type has no item id
// rule. Such cards are skipped during review matching, never fatal.
var ErrUnknownActivity = fmt.Errorf("unknown activity type")

// DeriveItemID computes the stable identifier for a card's pedagogical
// content. It depends only on content-defining fields, so the same fact keeps
// its review history across curriculum re-shuffles. Both the answer-recording
// path and the lesson-matching path must go through this function.
func DeriveItemID(card models.LessonCard) (string, error) {
	switch card.ActivityType {
	case models.ActivityCounting:
		return fmt.Sprintf("num_%d_%s", card.Number, strings.ToLower(card.ObjectName)), nil
	case models.ActivityLetter:
		return fmt.Sprintf("letter_%s_%s", card.Letter, strings.ToLower(card.Word)), nil
	case models.ActivityComparison:
		return fmt.Sprintf("cmp_%d_%d", card.CompareLeft, card.CompareRight), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownActivity, card.ActivityType)
	}
}
