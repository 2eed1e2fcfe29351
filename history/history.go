package history

import (
	"cmp"
	"slices"

	"github.com/sky-flux/leitner"
)

// GroupByCard groups records by card key and sorts each group by day.
// Records of the same day keep their log order.
func GroupByCard(records []leitner.PracticeRecord) map[leitner.CardKey][]leitner.PracticeRecord {
	if len(records) == 0 {
		return nil
	}

	groups := make(map[leitner.CardKey][]leitner.PracticeRecord)
	for _, rec := range records {
		k := rec.Card.Key()
		groups[k] = append(groups[k], rec)
	}
	for _, group := range groups {
		slices.SortStableFunc(group, byDay)
	}
	return groups
}

// ReviewsPerBucket counts records by the bucket the card was in when it was
// answered.
func ReviewsPerBucket(records []leitner.PracticeRecord) map[int]int {
	out := make(map[int]int)
	for _, rec := range records {
		out[rec.PreviousBucket]++
	}
	return out
}

// ActiveDays counts the distinct days with at least one record.
func ActiveDays(records []leitner.PracticeRecord) int {
	days := make(map[int]struct{})
	for _, rec := range records {
		days[rec.Day] = struct{}{}
	}
	return len(days)
}

// Streak returns the number of consecutive practice days ending at today.
// When nothing was practiced today the streak may still end yesterday.
func Streak(records []leitner.PracticeRecord, today int) int {
	days := make(map[int]struct{}, len(records))
	for _, rec := range records {
		days[rec.Day] = struct{}{}
	}

	day := today
	if _, ok := days[day]; !ok {
		day--
	}
	n := 0
	for ; day >= 0; day-- {
		if _, ok := days[day]; !ok {
			break
		}
		n++
	}
	return n
}

func byDay(a, b leitner.PracticeRecord) int {
	return cmp.Compare(a.Day, b.Day)
}
