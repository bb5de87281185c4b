package lesson

import (
	"sort"
	"time"

	"github.com/sproutly/sproutly/internal/mastery"
	"github.com/sproutly/sproutly/internal/models"
)

// reviewRatio is the target share of a lesson given to review cards.
// A fixed business rule, like the scheduling constants.
const reviewRatio = 0.2

// Compose blends a level's cards with due review items into one ordered
// lesson. Due records are matched back to cards by item id; records whose
// item no longer exists in the curriculum are dropped. At most
// max(1, floor(len(cards)*0.2)) review cards are taken, struggling items
// first, then most overdue. Review cards are then interleaved at roughly
// even positions among the new cards.
func Compose(subjectCards []models.LessonCard, dueRecords []models.MasteryRecord) []models.LessonCard {
	if len(subjectCards) == 0 {
		return []models.LessonCard{}
	}

	matched := matchDueCards(subjectCards, dueRecords)
	if len(matched) == 0 {
		return subjectCards
	}

	budget := int(float64(len(subjectCards)) * reviewRatio)
	if budget < 1 {
		budget = 1
	}

	sortByPriority(matched)
	if len(matched) > budget {
		matched = matched[:budget]
	}

	reviewIDs := make(map[string]bool, len(matched))
	for _, m := range matched {
		reviewIDs[m.itemID] = true
	}

	var newCards []models.LessonCard
	for _, card := range subjectCards {
		id, err := mastery.DeriveItemID(card)
		if err != nil || !reviewIDs[id] {
			newCards = append(newCards, card)
		}
	}

	return interleave(newCards, matched)
}

// reviewCard is a due record matched to its current-curriculum card.
type reviewCard struct {
	itemID string
	card   models.LessonCard
	record models.MasteryRecord
}

func matchDueCards(cards []models.LessonCard, dueRecords []models.MasteryRecord) []reviewCard {
	byItem := make(map[string]models.LessonCard, len(cards))
	for _, card := range cards {
		id, err := mastery.DeriveItemID(card)
		if err != nil {
			// No item id rule for this card, it cannot carry review history.
			continue
		}
		byItem[id] = card
	}

	var matched []reviewCard
	seen := make(map[string]bool)
	for _, rec := range dueRecords {
		card, ok := byItem[rec.ItemID]
		if !ok || seen[rec.ItemID] {
			continue
		}
		seen[rec.ItemID] = true
		matched = append(matched, reviewCard{itemID: rec.ItemID, card: card, record: rec})
	}
	return matched
}

// sortByPriority orders review candidates: struggling items first, ties by
// next review date ascending. A record with no scheduled date sorts last
// among its tier.
func sortByPriority(matched []reviewCard) {
	sort.SliceStable(matched, func(i, j int) bool {
		si, sj := matched[i].record.IsStruggling(), matched[j].record.IsStruggling()
		if si != sj {
			return si
		}
		return nextReviewOrInf(matched[i].record).Before(nextReviewOrInf(matched[j].record))
	})
}

var farFuture = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

func nextReviewOrInf(r models.MasteryRecord) time.Time {
	if r.NextReviewAt == nil {
		return farFuture
	}
	return *r.NextReviewAt
}

// interleave inserts review cards into the new-card sequence at evenly spaced
// positions. Positions are computed from the original lengths while the list
// grows, so later insertions land on already-shifted indices and the spacing
// comes out approximately, not perfectly, even. That drift is intentional
// behavior, not an artifact to correct.
func interleave(newCards []models.LessonCard, reviews []reviewCard) []models.LessonCard {
	n, k := len(newCards), len(reviews)
	spacing := (n + k) / (k + 1)

	result := make([]models.LessonCard, len(newCards), n+k)
	copy(result, newCards)
	for i, rv := range reviews {
		pos := (i + 1) * spacing
		if pos > len(result) {
			pos = len(result)
		}
		result = append(result, models.LessonCard{})
		copy(result[pos+1:], result[pos:])
		result[pos] = rv.card
	}
	return result
}
