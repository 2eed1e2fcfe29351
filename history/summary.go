package history

import (
	"slices"
	"strings"

	"github.com/sky-flux/leitner"
)

// CardSummary aggregates the practice records of one card.
type CardSummary struct {
	Card        leitner.Flashcard `json:"card"` // as recorded by the latest record.
	Attempts    int               `json:"attempts"`
	Correct     int               `json:"correct"`
	Lapses      int               `json:"lapses"` // Wrong answers.
	FirstDay    int               `json:"first_day"`
	LastDay     int               `json:"last_day"`
	FinalBucket int               `json:"final_bucket"` // NewBucket of the latest record.
}

// Accuracy returns the percentage of correct answers, or 0 without attempts.
func (s CardSummary) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts) * 100
}

// Summarize builds one summary per card, sorted by front, then back.
func Summarize(records []leitner.PracticeRecord) []CardSummary {
	groups := GroupByCard(records)
	out := make([]CardSummary, 0, len(groups))
	for _, group := range groups {
		out = append(out, summarize(group))
	}
	slices.SortFunc(out, func(a, b CardSummary) int {
		if c := strings.Compare(a.Card.Front, b.Card.Front); c != 0 {
			return c
		}
		return strings.Compare(a.Card.Back, b.Card.Back)
	})
	return out
}

// Struggling returns the summaries whose accuracy is below threshold percent
// and that have at least minAttempts attempts, keeping their order.
func Struggling(summaries []CardSummary, threshold float64, minAttempts int) []CardSummary {
	var out []CardSummary
	for _, s := range summaries {
		if s.Attempts >= minAttempts && s.Accuracy() < threshold {
			out = append(out, s)
		}
	}
	return out
}

// summarize expects group sorted by day and non-empty.
func summarize(group []leitner.PracticeRecord) CardSummary {
	last := group[len(group)-1]
	s := CardSummary{
		Card:        last.Card,
		Attempts:    len(group),
		FirstDay:    group[0].Day,
		LastDay:     last.Day,
		FinalBucket: last.NewBucket,
	}
	for _, rec := range group {
		switch {
		case rec.Difficulty.IsCorrect():
			s.Correct++
		case rec.Difficulty == leitner.Wrong:
			s.Lapses++
		}
	}
	return s
}
